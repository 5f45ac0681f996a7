// Package models - OfferContainer và OfferItem (collection offers). Mỗi shop có đúng một container.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
)

// OfferContainer gom toàn bộ offer của một shop.
type OfferContainer struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	ShopID    basemodels.ObjectRef `json:"shop_id" bson:"shop_id"`
	UserID    basemodels.ObjectRef `json:"user_id" bson:"user_id"`
	Offers    []OfferItem          `json:"offers" bson:"offers"` // Thứ tự thêm vào
	Status    string               `json:"status" bson:"status"` // Chỉ đi lên approved, không quay lại
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

// OfferItem là một offer trong container.
type OfferItem struct {
	OfferID     string     `json:"offer_id" bson:"offer_id"`
	MediaType   string     `json:"media_type" bson:"media_type"`
	MediaPath   string     `json:"media_path" bson:"media_path"`
	Filename    string     `json:"filename" bson:"filename"`
	Title       string     `json:"title" bson:"title"`
	Fee         string     `json:"fee" bson:"fee"`
	StartDate   string     `json:"start_date" bson:"start_date"`
	EndDate     string     `json:"end_date" bson:"end_date"`
	Percentage  string     `json:"percentage" bson:"percentage"`
	Description string     `json:"description" bson:"description"`
	Status      string     `json:"status" bson:"status"`
	UploadedAt  time.Time  `json:"uploaded_at" bson:"uploaded_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
}

// Item tìm offer theo offer_id.
func (c *OfferContainer) Item(offerID string) (*OfferItem, bool) {
	for i := range c.Offers {
		if c.Offers[i].OfferID == offerID {
			return &c.Offers[i], true
		}
	}
	return nil, false
}

// ItemsWithStatus lọc offer theo trạng thái, giữ thứ tự.
func (c *OfferContainer) ItemsWithStatus(status string) []OfferItem {
	items := []OfferItem{}
	for _, item := range c.Offers {
		if item.Status == status {
			items = append(items, item)
		}
	}
	return items
}

// PendingOffer là một dòng trong hàng đợi duyệt offer.
type PendingOffer struct {
	OfferItem
	ShopID     string `json:"shop_id"`
	ShopName   string `json:"shop_name"`
	OwnerPhone string `json:"owner_phone"`
	OwnerEmail string `json:"owner_email"`
}

// Giá trị hiển thị khi không tra được shop / chủ shop.
const (
	UnknownShop    = "Unknown Shop"
	UnknownContact = "-"
)
