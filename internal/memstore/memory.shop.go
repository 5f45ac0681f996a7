package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// ShopStore lưu shop trong bộ nhớ, giữ thứ tự chèn.
type ShopStore struct {
	mu    sync.Mutex
	shops []dirmodels.Shop
}

// NewShopStore tạo mới ShopStore
func NewShopStore() *ShopStore {
	return &ShopStore{}
}

// Len trả về số shop đang lưu.
func (s *ShopStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shops)
}

func (s *ShopStore) index(id primitive.ObjectID) int {
	for i := range s.shops {
		if s.shops[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ShopStore) Insert(_ context.Context, shop *dirmodels.Shop) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := copyShop(*shop)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	s.shops = append(s.shops, doc)
	return doc.ID, nil
}

func (s *ShopStore) FindByID(_ context.Context, id primitive.ObjectID) (*dirmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	shop := copyShop(s.shops[i])
	return &shop, nil
}

func (s *ShopStore) FindByStatus(_ context.Context, status string) ([]dirmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []dirmodels.Shop{}
	for _, shop := range s.shops {
		if shop.Status == status {
			result = append(result, copyShop(shop))
		}
	}
	return result, nil
}

func (s *ShopStore) ApplyUpdate(_ context.Context, id primitive.ObjectID, u dirmodels.ShopUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return common.ErrNotFound
	}
	shop := &s.shops[i]
	setString(&shop.ShopName, u.ShopName)
	setString(&shop.Description, u.Description)
	setString(&shop.Address, u.Address)
	setString(&shop.PhoneNumber, u.PhoneNumber)
	setString(&shop.Email, u.Email)
	setString(&shop.Landmark, u.Landmark)
	if u.Keywords != nil {
		shop.Keywords = append([]string{}, u.Keywords...)
	}
	if u.CityID != nil {
		shop.CityID = *u.CityID
	}
	if u.MainImage != nil {
		v := *u.MainImage
		shop.MainImage = &v
	}
	if len(u.AppendMedia) > 0 {
		shop.Media = append(shop.Media, u.AppendMedia...)
	}
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		shop.UpdatedAt = &t
	}
	return nil
}

// TransitionStatus chuyển trạng thái khi shop đang pending, chưa có trạng thái, hoặc đã ở trạng thái đích.
func (s *ShopStore) TransitionStatus(_ context.Context, id primitive.ObjectID, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	switch s.shops[i].Status {
	case "", basemodels.StatusPending, target:
		s.shops[i].Status = target
		return true, nil
	}
	return false, nil
}

func (s *ShopStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return 0, nil
	}
	s.shops = append(s.shops[:i], s.shops[i+1:]...)
	return 1, nil
}

func (s *ShopStore) PullMedia(_ context.Context, id primitive.ObjectID, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	kept := make([]dirmodels.ShopMedia, 0, len(s.shops[i].Media))
	for _, m := range s.shops[i].Media {
		if m.Path != path {
			kept = append(kept, m)
		}
	}
	removed := len(kept) != len(s.shops[i].Media)
	s.shops[i].Media = kept
	return removed, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func copyShop(s dirmodels.Shop) dirmodels.Shop {
	out := s
	out.Category = append([]string(nil), s.Category...)
	out.Keywords = append([]string(nil), s.Keywords...)
	out.Media = append([]dirmodels.ShopMedia(nil), s.Media...)
	if s.MainImage != nil {
		v := *s.MainImage
		out.MainImage = &v
	}
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
