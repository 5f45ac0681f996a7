// Package dto - DTO cho domain job.
package dto

// JobCreateInput là form đăng tin tuyển dụng.
type JobCreateInput struct {
	OwnerIdentifier string `form:"phoneid" validate:"required"`
	JobTitle        string `form:"job_title" validate:"required,no_xss"`
	JobDescription  string `form:"job_description" validate:"required,no_xss"`
	Address         string `form:"address" validate:"no_xss"`
	Salary          string `form:"salary" validate:"required"`
	WorkStartTime   string `form:"work_start_time" validate:"required"`
	WorkEndTime     string `form:"work_end_time" validate:"required"`
	CityID          string `form:"city_id" validate:"required"`
	ShopID          string `form:"shop_id"` // Tùy chọn: gắn tin với shop để xóa theo shop
	Gender          string `form:"gender"`
	Experience      string `form:"experience"`
}

// JobUpdateInput là form cập nhật tin; trường rỗng nghĩa là giữ nguyên.
type JobUpdateInput struct {
	JobTitle       string `form:"job_title" validate:"no_xss"`
	JobDescription string `form:"job_description" validate:"no_xss"`
	Address        string `form:"address" validate:"no_xss"`
	Salary         string `form:"salary"`
	WorkStartTime  string `form:"work_start_time"`
	WorkEndTime    string `form:"work_end_time"`
	CityID         string `form:"city_id"`
	Gender         string `form:"gender"`
	Experience     string `form:"experience"`
}

// IgnoredField là trường tùy chọn sai định dạng bị bỏ qua thay vì làm hỏng cả request.
type IgnoredField struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// JobUpdateResult là kết quả cập nhật tin.
type JobUpdateResult struct {
	JobID   string         `json:"job_id"`
	Ignored []IgnoredField `json:"ignored"`
}
