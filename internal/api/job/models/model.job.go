// Package models - Job (collection jobs).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
)

// Giá trị mặc định khi form bỏ trống.
const (
	DefaultGender     = "Any"
	DefaultExperience = "Fresher"
)

// Job là tin tuyển dụng.
type Job struct {
	ID     primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID   `json:"user_id" bson:"user_id"`
	ShopID basemodels.ObjectRef `json:"shop_id,omitempty" bson:"shop_id,omitempty"` // Rỗng: tin không gắn với shop

	JobTitle       string `json:"job_title" bson:"job_title"`
	JobDescription string `json:"job_description" bson:"job_description"`
	Address        string `json:"address" bson:"address"`
	Salary         int64  `json:"salary" bson:"salary"`
	WorkStartTime  string `json:"work_start_time" bson:"work_start_time"`
	WorkEndTime    string `json:"work_end_time" bson:"work_end_time"`
	Gender         string `json:"gender" bson:"gender"`
	Experience     string `json:"experience" bson:"experience"`

	CityID   primitive.ObjectID `json:"city_id" bson:"city_id"`
	CityName string             `json:"city_name" bson:"city_name"` // Lưu kèm để hiển thị

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// JobUpdate mô tả một lần cập nhật từng phần; nil nghĩa là giữ nguyên.
// CityID và CityName luôn đi cùng nhau.
type JobUpdate struct {
	JobTitle       *string
	JobDescription *string
	Address        *string
	Salary         *int64
	WorkStartTime  *string
	WorkEndTime    *string
	Gender         *string
	Experience     *string
	CityID         *primitive.ObjectID
	CityName       *string
	UpdatedAt      time.Time
}
