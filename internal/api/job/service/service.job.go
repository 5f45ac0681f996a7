// Package jobsvc quản lý tin tuyển dụng theo thành phố và người đăng.
package jobsvc

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/dto"
	jobmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
)

// JobRepository là các thao tác lưu trữ job.
type JobRepository interface {
	Insert(ctx context.Context, job *jobmodels.Job) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*jobmodels.Job, error)
	// ApplyUpdate ghi các trường khác nil và updated_at; common.ErrNotFound nếu không có job.
	ApplyUpdate(ctx context.Context, id primitive.ObjectID, update jobmodels.JobUpdate) error
	// FindAll trả về job mới nhất trước.
	FindAll(ctx context.Context) ([]jobmodels.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error)
}

// JobService là service quản lý job
type JobService struct {
	jobs    JobRepository
	lookup  *lookupsvc.LookupService
	metrics *metrics.Metrics
}

// NewJobService tạo mới JobService
func NewJobService(jobs JobRepository, lookup *lookupsvc.LookupService, m *metrics.Metrics) *JobService {
	return &JobService{jobs: jobs, lookup: lookup, metrics: m}
}

// AddJob đăng tin mới. Tên thành phố được chép vào tin tại thời điểm tạo.
func (s *JobService) AddJob(ctx context.Context, input dto.JobCreateInput) (*jobmodels.Job, error) {
	owner, err := s.lookup.ResolveOwner(ctx, input.OwnerIdentifier)
	if err != nil {
		return nil, err
	}
	city, err := s.lookup.CityByID(ctx, input.CityID)
	if err != nil {
		return nil, err
	}
	salary, err := strconv.ParseInt(strings.TrimSpace(input.Salary), 10, 64)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Lương phải là số nguyên", common.StatusBadRequest,
			map[string]string{"salary": input.Salary})
	}

	var shopRef basemodels.ObjectRef
	if strings.TrimSpace(input.ShopID) != "" {
		shop, err := s.lookup.FindShop(ctx, input.ShopID)
		if err != nil {
			return nil, err
		}
		shopRef = basemodels.RefFromID(shop.ID)
	}

	now := time.Now().UTC()
	job := &jobmodels.Job{
		UserID:         owner.ID,
		ShopID:         shopRef,
		JobTitle:       input.JobTitle,
		JobDescription: input.JobDescription,
		Address:        input.Address,
		Salary:         salary,
		WorkStartTime:  input.WorkStartTime,
		WorkEndTime:    input.WorkEndTime,
		Gender:         orDefault(input.Gender, jobmodels.DefaultGender),
		Experience:     orDefault(input.Experience, jobmodels.DefaultExperience),
		CityID:         city.ID,
		CityName:       city.CityName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	id, err := s.jobs.Insert(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = id
	return job, nil
}

// UpdateJob cập nhật từng phần. Lương sai định dạng và city_id không tra được bị bỏ qua (báo trong Ignored);
// updated_at luôn được làm mới.
func (s *JobService) UpdateJob(ctx context.Context, jobID string, input dto.JobUpdateInput) (*dto.JobUpdateResult, error) {
	oid, err := lookupsvc.ParseID(jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.FindByID(ctx, oid); err != nil {
		if common.IsNotFound(err) {
			return nil, common.NotFoundf("Không tìm thấy job %s", jobID)
		}
		return nil, err
	}

	result := &dto.JobUpdateResult{JobID: oid.Hex(), Ignored: []dto.IgnoredField{}}
	update := jobmodels.JobUpdate{
		JobTitle:       nonEmpty(input.JobTitle),
		JobDescription: nonEmpty(input.JobDescription),
		Address:        nonEmpty(input.Address),
		WorkStartTime:  nonEmpty(input.WorkStartTime),
		WorkEndTime:    nonEmpty(input.WorkEndTime),
		Gender:         nonEmpty(input.Gender),
		Experience:     nonEmpty(input.Experience),
		UpdatedAt:      time.Now().UTC(),
	}

	if raw := strings.TrimSpace(input.Salary); raw != "" {
		if salary, err := strconv.ParseInt(raw, 10, 64); err == nil {
			update.Salary = &salary
		} else {
			result.Ignored = append(result.Ignored, dto.IgnoredField{Field: "salary", Value: input.Salary, Reason: "not an integer"})
		}
	}

	if raw := strings.TrimSpace(input.CityID); raw != "" {
		if city, err := s.lookup.CityByID(ctx, raw); err == nil {
			update.CityID = &city.ID
			update.CityName = &city.CityName
		} else {
			result.Ignored = append(result.Ignored, dto.IgnoredField{Field: "city_id", Value: input.CityID, Reason: err.Error()})
		}
	}

	if err := s.jobs.ApplyUpdate(ctx, oid, update); err != nil {
		return nil, err
	}
	if len(result.Ignored) > 0 {
		logger.WithModule("job").WithField("job_id", result.JobID).WithField("ignored", result.Ignored).Info("Job updated with ignored fields")
	}
	return result, nil
}

// ListJobs trả về toàn bộ job, mới nhất trước.
func (s *JobService) ListJobs(ctx context.Context) ([]jobmodels.Job, error) {
	return s.jobs.FindAll(ctx)
}

// DeleteJob xóa job; id sai định dạng trả InvalidId, không có job trả NotFound.
func (s *JobService) DeleteJob(ctx context.Context, jobID string) error {
	oid, err := lookupsvc.ParseID(jobID)
	if err != nil {
		return err
	}
	deleted, err := s.jobs.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.NotFoundf("Không tìm thấy job %s", jobID)
	}
	s.metrics.RecordModeration("job", "delete")
	return nil
}

// DeleteByShopID xóa các job gắn với shop (dùng khi xóa shop).
func (s *JobService) DeleteByShopID(ctx context.Context, shopID primitive.ObjectID) (int64, error) {
	return s.jobs.DeleteByShopID(ctx, shopID)
}

func nonEmpty(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
