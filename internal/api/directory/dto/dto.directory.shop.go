// Package dto - DTO cho domain danh bạ (shop).
package dto

import (
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
)

// ShopCreateInput là form tạo shop (multipart). Tệp ảnh được handler gắn vào MainImage/Photos.
type ShopCreateInput struct {
	OwnerIdentifier string `form:"phoneid" validate:"required"`
	ShopName        string `form:"shop_name" validate:"required,no_xss"`
	Description     string `form:"description" validate:"no_xss"`
	Address         string `form:"address" validate:"no_xss"`
	PhoneNumber     string `form:"phone_number"`
	Email           string `form:"email" validate:"omitempty,email"`
	Landmark        string `form:"landmark" validate:"no_xss"`
	CategoryList    string `form:"category_list"`
	CityName        string `form:"city_name" validate:"required"`
	Keywords        string `form:"keywords"`

	MainImage *media.Upload `form:"-"`
	Photos    []media.Upload `form:"-"`
}

// ShopUpdateInput là form cập nhật shop; trường rỗng nghĩa là giữ nguyên.
type ShopUpdateInput struct {
	ShopID      string `form:"shop_id" validate:"required"`
	ShopName    string `form:"shop_name" validate:"no_xss"`
	Description string `form:"description" validate:"no_xss"`
	Address     string `form:"address" validate:"no_xss"`
	PhoneNumber string `form:"phone_number"`
	Email       string `form:"email" validate:"omitempty,email"`
	Landmark    string `form:"landmark" validate:"no_xss"`
	CityName    string `form:"city_name"`
	Keywords    string `form:"keywords"`

	MainImage *media.Upload `form:"-"`
	Photos    []media.Upload `form:"-"`
}

// ShopPhotoDeleteInput là form xóa một ảnh gallery theo vị trí.
type ShopPhotoDeleteInput struct {
	PhotoIndex *int `form:"photo_index" validate:"required"`
}

// SkippedFile là tệp upload bị bỏ qua.
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ShopCreateResult là kết quả tạo shop.
type ShopCreateResult struct {
	ShopID     string                    `json:"shop_id"`
	Categories *dirmodels.CategoryReport `json:"categories"`
	MainImage  *string                   `json:"main_image"`
	Media      []dirmodels.ShopMedia     `json:"media"`
	Skipped    []SkippedFile             `json:"skipped_files"`
}

// ShopUpdateResult là kết quả cập nhật shop.
type ShopUpdateResult struct {
	ShopID    string                `json:"shop_id"`
	MainImage *string               `json:"main_image,omitempty"`
	Added     []dirmodels.ShopMedia `json:"added_media"`
	Skipped   []SkippedFile         `json:"skipped_files"`
}

// ShopListResult là danh sách shop kèm thống kê trường bổ sung tra cứu lỗi.
type ShopListResult struct {
	Shops      []dirmodels.ShopView       `json:"shops"`
	Enrichment dirmodels.EnrichmentReport `json:"enrichment"`
}
