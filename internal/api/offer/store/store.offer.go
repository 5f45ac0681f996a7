// Package offerstore lưu container offer trên collection offers.
package offerstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// OfferStore lưu container offer
type OfferStore struct {
	*basesvc.BaseServiceMongoImpl[offermodels.OfferContainer]
}

// NewOfferStore tạo mới OfferStore
func NewOfferStore(reg *registry.Registry[*mongo.Collection]) (*OfferStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[offermodels.OfferContainer](reg, database.CollectionOffers)
	if err != nil {
		return nil, err
	}
	return &OfferStore{BaseServiceMongoImpl: base}, nil
}

// AppendItemUpdate dựng update upsert: $push item, các trường của container chỉ ghi khi tạo mới.
func AppendItemUpdate(shopID, userID basemodels.ObjectRef, item offermodels.OfferItem, now time.Time) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Push: bson.M{"offers": item},
		SetOnInsert: bson.M{
			"shop_id":    shopID,
			"user_id":    userID,
			"status":     basemodels.StatusPending,
			"created_at": now,
		},
	}
}

// ItemStatusUpdate dựng update đổi trạng thái item "item" (array filter) và xóa mốc thời gian ngược lại.
// Duyệt thì nâng luôn status container.
func ItemStatusUpdate(status string, now time.Time) bson.M {
	set := bson.M{"offers.$[item].status": status}
	unset := bson.M{}
	switch status {
	case basemodels.StatusApproved:
		set["offers.$[item].approved_at"] = now
		set["status"] = basemodels.StatusApproved
		unset["offers.$[item].rejected_at"] = ""
	case basemodels.StatusRejected:
		set["offers.$[item].rejected_at"] = now
		unset["offers.$[item].approved_at"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// containerOrder sắp container theo thứ tự tạo (_id tăng dần).
var containerOrder = bson.D{{Key: "_id", Value: 1}}

// AppendItem thêm offer vào container cũ nhất của shop bằng một lệnh upsert
func (s *OfferStore) AppendItem(ctx context.Context, shopID, userID basemodels.ObjectRef, item offermodels.OfferItem, now time.Time) error {
	update := AppendItemUpdate(shopID, userID, item, now)
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetSort(containerOrder).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1})
	err := s.Collection().FindOneAndUpdate(ctx, bson.M{"shop_id": shopID.Matches()}, update, opts).Err()
	return common.ConvertMongoError(err)
}

// SetItemStatus đổi trạng thái một offer
func (s *OfferStore) SetItemStatus(ctx context.Context, offerID, status string, now time.Time) (bool, error) {
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"item.offer_id": offerID}},
	})
	result, err := s.UpdateOne(ctx, bson.M{"offers.offer_id": offerID}, ItemStatusUpdate(status, now), opts)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PullItem rút offer khỏi container, trả về item theo bản trước khi rút
func (s *OfferStore) PullItem(ctx context.Context, offerID string) (*offermodels.OfferItem, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.M{"offers": bson.M{"$elemMatch": bson.M{"offer_id": offerID}}})

	var before offermodels.OfferContainer
	err := s.Collection().FindOneAndUpdate(ctx,
		bson.M{"offers.offer_id": offerID},
		bson.M{"$pull": bson.M{"offers": bson.M{"offer_id": offerID}}},
		opts).Decode(&before)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	item, ok := before.Item(offerID)
	if !ok {
		return nil, common.ErrNotFound
	}
	return item, nil
}

// FindWithPendingItems liệt kê container có ít nhất một offer pending
func (s *OfferStore) FindWithPendingItems(ctx context.Context) ([]offermodels.OfferContainer, error) {
	return s.Find(ctx, bson.M{"offers.status": basemodels.StatusPending}, nil)
}

// FindByShopID liệt kê mọi container của shop theo thứ tự tạo (dữ liệu cũ có thể có nhiều container)
func (s *OfferStore) FindByShopID(ctx context.Context, shopID primitive.ObjectID) ([]offermodels.OfferContainer, error) {
	return s.Find(ctx, bson.M{"shop_id": basemodels.RefFilter(shopID)}, options.Find().SetSort(containerOrder))
}

// DeleteByShopID xóa container của shop
func (s *OfferStore) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"shop_id": basemodels.RefFilter(shopID)})
}
