package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	reviewmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/models"
)

// ReviewStore lưu review trong bộ nhớ.
type ReviewStore struct {
	mu      sync.Mutex
	reviews []reviewmodels.Review
}

// NewReviewStore tạo mới ReviewStore
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// Add thêm review, sinh _id nếu chưa có.
func (s *ReviewStore) Add(r reviewmodels.Review) reviewmodels.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	s.reviews = append(s.reviews, r)
	return r
}

func (s *ReviewStore) FindByShopID(_ context.Context, shopID primitive.ObjectID) ([]reviewmodels.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := basemodels.RefFromID(shopID)
	result := []reviewmodels.Review{}
	for _, r := range s.reviews {
		if r.ShopID == ref {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *ReviewStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *ReviewStore) DeleteByShopID(_ context.Context, shopID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := basemodels.RefFromID(shopID)
	kept := s.reviews[:0]
	var deleted int64
	for _, r := range s.reviews {
		if r.ShopID == ref {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.reviews = kept
	return deleted, nil
}
