package memstore

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	jobmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// JobStore lưu job trong bộ nhớ.
type JobStore struct {
	mu   sync.Mutex
	jobs []jobmodels.Job
}

// NewJobStore tạo mới JobStore
func NewJobStore() *JobStore {
	return &JobStore{}
}

func (s *JobStore) index(id primitive.ObjectID) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *JobStore) Insert(_ context.Context, job *jobmodels.Job) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := *job
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	s.jobs = append(s.jobs, doc)
	return doc.ID, nil
}

func (s *JobStore) FindByID(_ context.Context, id primitive.ObjectID) (*jobmodels.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	job := s.jobs[i]
	return &job, nil
}

func (s *JobStore) ApplyUpdate(_ context.Context, id primitive.ObjectID, u jobmodels.JobUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return common.ErrNotFound
	}
	job := &s.jobs[i]
	setString(&job.JobTitle, u.JobTitle)
	setString(&job.JobDescription, u.JobDescription)
	setString(&job.Address, u.Address)
	setString(&job.WorkStartTime, u.WorkStartTime)
	setString(&job.WorkEndTime, u.WorkEndTime)
	setString(&job.Gender, u.Gender)
	setString(&job.Experience, u.Experience)
	if u.Salary != nil {
		job.Salary = *u.Salary
	}
	if u.CityID != nil && u.CityName != nil {
		job.CityID = *u.CityID
		job.CityName = *u.CityName
	}
	job.UpdatedAt = u.UpdatedAt
	return nil
}

// FindAll trả về job mới nhất trước.
func (s *JobStore) FindAll(_ context.Context) ([]jobmodels.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := append([]jobmodels.Job{}, s.jobs...)
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result, nil
}

func (s *JobStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return 0, nil
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	return 1, nil
}

func (s *JobStore) DeleteByShopID(_ context.Context, shopID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := basemodels.RefFromID(shopID)
	kept := s.jobs[:0]
	var deleted int64
	for _, j := range s.jobs {
		if j.ShopID == ref {
			deleted++
			continue
		}
		kept = append(kept, j)
	}
	s.jobs = kept
	return deleted, nil
}
