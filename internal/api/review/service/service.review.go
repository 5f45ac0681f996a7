// Package reviewsvc đọc và xóa đánh giá của shop.
package reviewsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	reviewmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// ReviewRepository là các thao tác lưu trữ review.
type ReviewRepository interface {
	FindByShopID(ctx context.Context, shopID primitive.ObjectID) ([]reviewmodels.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error)
}

// ReviewService là service quản lý review
type ReviewService struct {
	reviews ReviewRepository
	metrics *metrics.Metrics
}

// NewReviewService tạo mới ReviewService
func NewReviewService(reviews ReviewRepository, m *metrics.Metrics) *ReviewService {
	return &ReviewService{reviews: reviews, metrics: m}
}

// ListReviews trả về review của một shop.
func (s *ReviewService) ListReviews(ctx context.Context, shopID string) ([]reviewmodels.Review, error) {
	oid, err := lookupsvc.ParseID(shopID)
	if err != nil {
		return nil, err
	}
	return s.reviews.FindByShopID(ctx, oid)
}

// DeleteReview xóa một review.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	oid, err := lookupsvc.ParseID(reviewID)
	if err != nil {
		return err
	}
	deleted, err := s.reviews.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.NotFoundf("Không tìm thấy review %s", reviewID)
	}
	s.metrics.RecordModeration("review", "delete")
	return nil
}

// DeleteByShopID xóa review của shop (dùng khi xóa shop).
func (s *ReviewService) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.reviews.DeleteByShopID(ctx, shopID)
}
