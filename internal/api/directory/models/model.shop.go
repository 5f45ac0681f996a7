// Package models - Shop, City, Category, User thuộc domain danh bạ (collection shop, city, category, user).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
)

// Shop lưu thông tin cửa hàng (shop).
type Shop struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	ShopName    string   `json:"shop_name" bson:"shop_name"`
	Description string   `json:"description" bson:"description"`
	Address     string   `json:"address" bson:"address"`
	PhoneNumber string   `json:"phone_number" bson:"phone_number"`
	Email       string   `json:"email" bson:"email"`
	Landmark    string   `json:"landmark" bson:"landmark"`
	Category    []string `json:"category" bson:"category"` // Danh sách category id (hex)
	Keywords    []string `json:"keywords" bson:"keywords"`

	CityID basemodels.ObjectRef `json:"city_id" bson:"city_id"`
	UserID basemodels.ObjectRef `json:"user_id" bson:"user_id"` // Chủ shop

	MainImage *string     `json:"main_image" bson:"main_image"`
	Media     []ShopMedia `json:"media" bson:"media"` // Thứ tự hiển thị gallery

	Status    string     `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ShopMedia là một ảnh trong gallery.
type ShopMedia struct {
	Type string `json:"type" bson:"type"`
	Path string `json:"path" bson:"path"`
}

// ShopUpdate mô tả một lần cập nhật từng phần: con trỏ nil / slice nil nghĩa là giữ nguyên.
type ShopUpdate struct {
	ShopName    *string
	Description *string
	Address     *string
	PhoneNumber *string
	Email       *string
	Landmark    *string
	Keywords    []string
	CityID      *basemodels.ObjectRef
	MainImage   *string
	AppendMedia []ShopMedia
	UpdatedAt   time.Time
}
