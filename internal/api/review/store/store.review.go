// Package reviewstore lưu review trên collection reviews.
package reviewstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	reviewmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// ReviewStore lưu review
type ReviewStore struct {
	*basesvc.BaseServiceMongoImpl[reviewmodels.Review]
}

// NewReviewStore tạo mới ReviewStore
func NewReviewStore(reg *registry.Registry[*mongo.Collection]) (*ReviewStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[reviewmodels.Review](reg, database.CollectionReviews)
	if err != nil {
		return nil, err
	}
	return &ReviewStore{BaseServiceMongoImpl: base}, nil
}

// FindByShopID liệt kê review của shop (shop_id lưu dạng chuỗi hoặc ObjectID)
func (s *ReviewStore) FindByShopID(ctx context.Context, shopID primitive.ObjectID) ([]reviewmodels.Review, error) {
	return s.Find(ctx, bson.M{"shop_id": basemodels.RefFilter(shopID)}, nil)
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *ReviewStore) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"shop_id": basemodels.RefFilter(shopID)})
}
