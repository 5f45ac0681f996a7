package memstore

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// OfferStore lưu container offer trong bộ nhớ.
type OfferStore struct {
	mu         sync.Mutex
	containers []offermodels.OfferContainer
}

// NewOfferStore tạo mới OfferStore
func NewOfferStore() *OfferStore {
	return &OfferStore{}
}

// Containers trả về bản sao toàn bộ container (dùng để kiểm tra trong test).
func (s *OfferStore) Containers() []offermodels.OfferContainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]offermodels.OfferContainer, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, copyContainer(c))
	}
	return out
}

// Put thêm nguyên một container (dữ liệu có sẵn).
func (s *OfferStore) Put(c offermodels.OfferContainer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.containers = append(s.containers, copyContainer(c))
}

func (s *OfferStore) AppendItem(_ context.Context, shopID, userID basemodels.ObjectRef, item offermodels.OfferItem, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.containers {
		if s.containers[i].ShopID == shopID {
			s.containers[i].Offers = append(s.containers[i].Offers, item)
			return nil
		}
	}
	s.containers = append(s.containers, offermodels.OfferContainer{
		ID:        primitive.NewObjectID(),
		ShopID:    shopID,
		UserID:    userID,
		Offers:    []offermodels.OfferItem{item},
		Status:    basemodels.StatusPending,
		CreatedAt: now,
	})
	return nil
}

func (s *OfferStore) locate(offerID string) (int, int) {
	for i := range s.containers {
		for j := range s.containers[i].Offers {
			if s.containers[i].Offers[j].OfferID == offerID {
				return i, j
			}
		}
	}
	return -1, -1
}

func (s *OfferStore) SetItemStatus(_ context.Context, offerID, status string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, j := s.locate(offerID)
	if i < 0 {
		return false, nil
	}
	item := &s.containers[i].Offers[j]
	item.Status = status
	t := now
	switch status {
	case basemodels.StatusApproved:
		item.ApprovedAt, item.RejectedAt = &t, nil
		s.containers[i].Status = basemodels.StatusApproved
	case basemodels.StatusRejected:
		item.RejectedAt, item.ApprovedAt = &t, nil
	}
	return true, nil
}

func (s *OfferStore) PullItem(_ context.Context, offerID string) (*offermodels.OfferItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, j := s.locate(offerID)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	item := s.containers[i].Offers[j]
	offers := s.containers[i].Offers
	s.containers[i].Offers = append(offers[:j:j], offers[j+1:]...)
	return &item, nil
}

func (s *OfferStore) FindWithPendingItems(_ context.Context) ([]offermodels.OfferContainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []offermodels.OfferContainer{}
	for _, c := range s.containers {
		if len(c.ItemsWithStatus(basemodels.StatusPending)) > 0 {
			result = append(result, copyContainer(c))
		}
	}
	return result, nil
}

func (s *OfferStore) FindByShopID(_ context.Context, shopID primitive.ObjectID) ([]offermodels.OfferContainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := basemodels.RefFromID(shopID)
	result := []offermodels.OfferContainer{}
	for _, c := range s.containers {
		if c.ShopID == ref {
			result = append(result, copyContainer(c))
		}
	}
	return result, nil
}

func (s *OfferStore) DeleteByShopID(_ context.Context, shopID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := basemodels.RefFromID(shopID)
	kept := s.containers[:0]
	var deleted int64
	for _, c := range s.containers {
		if c.ShopID == ref {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	s.containers = kept
	return deleted, nil
}

func copyContainer(c offermodels.OfferContainer) offermodels.OfferContainer {
	out := c
	out.Offers = append([]offermodels.OfferItem{}, c.Offers...)
	return out
}
