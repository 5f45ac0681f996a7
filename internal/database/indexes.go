package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec mô tả một index cần có trên collection.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
}

// DirectoryIndexes trả về các index phục vụ truy vấn danh bạ, duyệt và xóa dây chuyền.
func DirectoryIndexes() []IndexSpec {
	return []IndexSpec{
		{Collection: CollectionShop, Name: "shop_status", Keys: bson.D{{Key: "status", Value: 1}}},
		{Collection: CollectionCity, Name: "city_name", Keys: bson.D{{Key: "city_name", Value: 1}}},
		{Collection: CollectionCategory, Name: "category_name", Keys: bson.D{{Key: "name", Value: 1}}},
		{Collection: CollectionUser, Name: "user_email", Keys: bson.D{{Key: "email", Value: 1}}},
		{Collection: CollectionUser, Name: "user_phonenumber", Keys: bson.D{{Key: "phonenumber", Value: 1}}},
		// offers: tìm container theo shop và tìm item theo offer_id (multikey)
		{Collection: CollectionOffers, Name: "offers_shop_id", Keys: bson.D{{Key: "shop_id", Value: 1}}},
		{Collection: CollectionOffers, Name: "offers_item_offer_id", Keys: bson.D{{Key: "offers.offer_id", Value: 1}}},
		{Collection: CollectionOffers, Name: "offers_item_status", Keys: bson.D{{Key: "offers.status", Value: 1}}},
		{Collection: CollectionJobs, Name: "jobs_created_at", Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Collection: CollectionJobs, Name: "jobs_shop_id", Keys: bson.D{{Key: "shop_id", Value: 1}}},
		{Collection: CollectionReviews, Name: "reviews_shop_id", Keys: bson.D{{Key: "shop_id", Value: 1}}},
	}
}

// CreateIndexes tạo các index còn thiếu. Index đã tồn tại (cùng tên hoặc cùng keys) được bỏ qua.
func CreateIndexes(ctx context.Context, db *mongo.Database, specs []IndexSpec) error {
	for _, idx := range specs {
		_, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetName(idx.Name),
		})
		if err != nil && !isIndexExistsError(err) {
			return fmt.Errorf("create index %s on %s: %w", idx.Name, idx.Collection, err)
		}
	}
	return nil
}

// isIndexExistsError nhận diện lỗi index đã tồn tại (IndexOptionsConflict / IndexKeySpecsConflict)
func isIndexExistsError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.Code == 85 || cmdErr.Code == 86) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "IndexOptionsConflict")
}
