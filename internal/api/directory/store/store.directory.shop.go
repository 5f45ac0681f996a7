package dirstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// ShopStore lưu shop trên collection shop
type ShopStore struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.Shop]
}

// NewShopStore tạo mới ShopStore
func NewShopStore(reg *registry.Registry[*mongo.Collection]) (*ShopStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[dirmodels.Shop](reg, database.CollectionShop)
	if err != nil {
		return nil, err
	}
	return &ShopStore{BaseServiceMongoImpl: base}, nil
}

// Insert thêm shop mới
func (s *ShopStore) Insert(ctx context.Context, shop *dirmodels.Shop) (primitive.ObjectID, error) {
	return s.InsertOne(ctx, *shop)
}

// FindByID tìm shop theo _id
func (s *ShopStore) FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.Shop, error) {
	return s.FindOneById(ctx, id)
}

// FindByStatus liệt kê shop theo trạng thái duyệt
func (s *ShopStore) FindByStatus(ctx context.Context, status string) ([]dirmodels.Shop, error) {
	return s.Find(ctx, bson.M{"status": status}, nil)
}

// ApplyUpdate ghi cập nhật từng phần trong một lệnh update
func (s *ShopStore) ApplyUpdate(ctx context.Context, id primitive.ObjectID, u dirmodels.ShopUpdate) error {
	update := ShopUpdateDocument(u)
	if update.IsEmpty() {
		exists, err := s.DocumentExists(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrNotFound
		}
		return nil
	}
	result, err := s.UpdateOne(ctx, bson.M{"_id": id}, update, nil)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// TransitionStatus chuyển status bằng update có điều kiện
func (s *ShopStore) TransitionStatus(ctx context.Context, id primitive.ObjectID, target string) (bool, error) {
	result, err := s.UpdateOne(ctx, StatusTransitionFilter(id, target), bson.M{"$set": bson.M{"status": target}}, nil)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete xóa shop theo _id
func (s *ShopStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// PullMedia rút ảnh gallery theo path
func (s *ShopStore) PullMedia(ctx context.Context, id primitive.ObjectID, path string) (bool, error) {
	update := &basesvc.UpdateData{Pull: bson.M{"media": bson.M{"path": path}}}
	result, err := s.UpdateOne(ctx, bson.M{"_id": id}, update, nil)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
