package dirstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// CityStore đọc collection city
type CityStore struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.City]
}

// NewCityStore tạo mới CityStore
func NewCityStore(reg *registry.Registry[*mongo.Collection]) (*CityStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[dirmodels.City](reg, database.CollectionCity)
	if err != nil {
		return nil, err
	}
	return &CityStore{BaseServiceMongoImpl: base}, nil
}

func (s *CityStore) FindByExactName(ctx context.Context, name string) (*dirmodels.City, error) {
	return s.FindOne(ctx, ExactNameFilter("city_name", name), nil)
}

func (s *CityStore) FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.City, error) {
	return s.FindOneById(ctx, id)
}

func (s *CityStore) SearchByName(ctx context.Context, fragment string, limit int64) ([]dirmodels.City, error) {
	return s.Find(ctx, ContainsFilter("city_name", fragment), options.Find().SetLimit(limit))
}

// CategoryStore đọc collection category
type CategoryStore struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.Category]
}

// NewCategoryStore tạo mới CategoryStore
func NewCategoryStore(reg *registry.Registry[*mongo.Collection]) (*CategoryStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[dirmodels.Category](reg, database.CollectionCategory)
	if err != nil {
		return nil, err
	}
	return &CategoryStore{BaseServiceMongoImpl: base}, nil
}

func (s *CategoryStore) FindByExactName(ctx context.Context, name string) (*dirmodels.Category, error) {
	return s.FindOne(ctx, ExactNameFilter("name", name), nil)
}

func (s *CategoryStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]dirmodels.Category, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (s *CategoryStore) SearchByName(ctx context.Context, fragment string, limit int64) ([]dirmodels.Category, error) {
	return s.Find(ctx, ContainsFilter("name", fragment), options.Find().SetLimit(limit))
}

// UserStore đọc collection user
type UserStore struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.User]
}

// NewUserStore tạo mới UserStore
func NewUserStore(reg *registry.Registry[*mongo.Collection]) (*UserStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[dirmodels.User](reg, database.CollectionUser)
	if err != nil {
		return nil, err
	}
	return &UserStore{BaseServiceMongoImpl: base}, nil
}

// FindByEmail so khớp chính xác email
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*dirmodels.User, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}

// FindByPhone so khớp chính xác số điện thoại
func (s *UserStore) FindByPhone(ctx context.Context, phone string) (*dirmodels.User, error) {
	return s.FindOne(ctx, bson.M{"phonenumber": phone}, nil)
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.User, error) {
	return s.FindOneById(ctx, id)
}
