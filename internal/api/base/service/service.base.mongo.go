// package basesvc cung cấp các thao tác MongoDB dùng chung cho các store theo collection
package basesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         bson.M `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert bson.M `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi upsert tạo mới
	Unset       bson.M `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        bson.M `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	Pull        bson.M `bson:"$pull,omitempty"`        // Các phần tử cần rút khỏi array
}

// IsEmpty cho biết update không có operator nào
func (u *UpdateData) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.SetOnInsert) == 0 && len(u.Unset) == 0 && len(u.Push) == 0 && len(u.Pull) == 0
}

// BaseServiceMongoImpl triển khai các thao tác cơ bản trên một collection
// Type Parameters:
//   - T: Kiểu dữ liệu của model
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// NewBaseServiceFromRegistry lấy collection theo tên từ registry
func NewBaseServiceFromRegistry[T any](reg *registry.Registry[*mongo.Collection], name string) (*BaseServiceMongoImpl[T], error) {
	coll, err := reg.Require(name)
	if err != nil {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, err)
	}
	return NewBaseServiceMongo[T](coll), nil
}

// Collection trả về collection MongoDB
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne tạo mới một bản ghi, trả về _id được sinh
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, data)
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, common.NewError(common.ErrCodeDatabaseQuery, "InsertedID không phải ObjectID", common.StatusInternalServerError, nil)
	}
	return id, nil
}

// FindOne tìm một bản ghi, trả về common.ErrNotFound nếu không có
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (*T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	var result T
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &result, nil
}

// FindOneById tìm bản ghi theo _id
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// Find tìm danh sách bản ghi, luôn trả về slice khác nil
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// UpdateOne cập nhật một bản ghi, trả về kết quả (MatchedCount/ModifiedCount/UpsertedID)
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (*mongo.UpdateResult, error) {
	if u, ok := update.(*UpdateData); ok && u.IsEmpty() {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}
	if opts == nil {
		opts = options.Update()
	}
	result, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return result, nil
}

// DeleteOne xóa một bản ghi, trả về số bản ghi đã xóa (0 hoặc 1)
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteMany xóa nhiều bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		return 0, common.NewError(common.ErrCodeValidationInput, "DeleteMany cần filter", common.StatusBadRequest, nil)
	}
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// CountDocuments đếm số bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra có bản ghi khớp filter hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
