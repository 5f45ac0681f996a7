// Package jobstore lưu job trên collection jobs.
package jobstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	jobmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// JobStore lưu job
type JobStore struct {
	*basesvc.BaseServiceMongoImpl[jobmodels.Job]
}

// NewJobStore tạo mới JobStore
func NewJobStore(reg *registry.Registry[*mongo.Collection]) (*JobStore, error) {
	base, err := basesvc.NewBaseServiceFromRegistry[jobmodels.Job](reg, database.CollectionJobs)
	if err != nil {
		return nil, err
	}
	return &JobStore{BaseServiceMongoImpl: base}, nil
}

// JobUpdateDocument dựng $set từ JobUpdate. city_id và city_name chỉ được ghi cùng nhau.
func JobUpdateDocument(u jobmodels.JobUpdate) *basesvc.UpdateData {
	set := bson.M{"updated_at": u.UpdatedAt}
	fields := map[string]*string{
		"job_title":       u.JobTitle,
		"job_description": u.JobDescription,
		"address":         u.Address,
		"work_start_time": u.WorkStartTime,
		"work_end_time":   u.WorkEndTime,
		"gender":          u.Gender,
		"experience":      u.Experience,
	}
	for key, v := range fields {
		if v != nil {
			set[key] = *v
		}
	}
	if u.Salary != nil {
		set["salary"] = *u.Salary
	}
	if u.CityID != nil && u.CityName != nil {
		set["city_id"] = *u.CityID
		set["city_name"] = *u.CityName
	}
	return &basesvc.UpdateData{Set: set}
}

func (s *JobStore) Insert(ctx context.Context, job *jobmodels.Job) (primitive.ObjectID, error) {
	return s.InsertOne(ctx, *job)
}

func (s *JobStore) FindByID(ctx context.Context, id primitive.ObjectID) (*jobmodels.Job, error) {
	return s.FindOneById(ctx, id)
}

// ApplyUpdate ghi cập nhật từng phần và updated_at
func (s *JobStore) ApplyUpdate(ctx context.Context, id primitive.ObjectID, u jobmodels.JobUpdate) error {
	result, err := s.UpdateOne(ctx, bson.M{"_id": id}, JobUpdateDocument(u), nil)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// FindAll liệt kê job mới nhất trước
func (s *JobStore) FindAll(ctx context.Context) ([]jobmodels.Job, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (s *JobStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteByShopID xóa job gắn với shop
func (s *JobStore) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"shop_id": basemodels.RefFilter(shopID)})
}
