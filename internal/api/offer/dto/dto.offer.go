// Package dto - DTO cho domain offer.
package dto

import "github.com/sakthiswaran2705/rk-dail-admin/internal/media"

// OfferCreateInput là form thêm offer (multipart, tệp ở trường "file").
type OfferCreateInput struct {
	OwnerIdentifier string `form:"phoneid" validate:"required"`
	TargetShop      string `form:"target_shop" validate:"required"`
	Title           string `form:"title" validate:"no_xss"`
	Fee             string `form:"fee"`
	StartDate       string `form:"start_date"`
	EndDate         string `form:"end_date"`
	Percentage      string `form:"percentage"`
	Description     string `form:"description" validate:"no_xss"`

	File *media.Upload `form:"-"`
}
