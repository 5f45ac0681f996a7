// Package jobhdl - Handler tin tuyển dụng.
package jobhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/dto"
	jobsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// JobHandler xử lý các route /jobs
type JobHandler struct {
	JobService *jobsvc.JobService
}

// NewJobHandler tạo JobHandler mới.
func NewJobHandler(jobService *jobsvc.JobService) *JobHandler {
	return &JobHandler{JobService: jobService}
}

// HandleAddJob xử lý POST /jobs/add.
func (h *JobHandler) HandleAddJob(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.JobCreateInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		job, err := h.JobService.AddJob(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "job", job.ID.Hex(), c, map[string]interface{}{"job_title": job.JobTitle})
		}
		return basehdl.HandleResponse(c, job, err)
	})
}

// HandleUpdateJob xử lý POST /jobs/:jobId/update.
func (h *JobHandler) HandleUpdateJob(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		jobID := c.Params("jobId")
		var input dto.JobUpdateInput
		if err := basehdl.BindForm(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.JobService.UpdateJob(c.Context(), jobID, input)
		if err == nil {
			logger.LogCRUD("update", "job", jobID, c, map[string]interface{}{"ignored": len(result.Ignored)})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleListJobs xử lý GET /jobs/all.
func (h *JobHandler) HandleListJobs(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		jobs, err := h.JobService.ListJobs(c.Context())
		return basehdl.HandleResponse(c, jobs, err)
	})
}

// HandleDeleteJob xử lý DELETE /jobs/:jobId.
func (h *JobHandler) HandleDeleteJob(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		jobID := c.Params("jobId")
		err := h.JobService.DeleteJob(c.Context(), jobID)
		if err == nil {
			logger.LogCRUD("delete", "job", jobID, c, nil)
		}
		return basehdl.HandleResponse(c, fiber.Map{"job_id": jobID}, err)
	})
}
