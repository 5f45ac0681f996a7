// Package models - Review (collection reviews).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
)

// Review là đánh giá của người dùng cho một shop. Các trường khác do app người dùng ghi được giữ nguyên trong Extra.
type Review struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	ShopID    basemodels.ObjectRef `json:"shop_id" bson:"shop_id"`
	UserID    basemodels.ObjectRef `json:"user_id" bson:"user_id"`
	Rating    float64              `json:"rating" bson:"rating"`
	Comment   string               `json:"comment" bson:"comment"`
	CreatedAt *time.Time           `json:"created_at,omitempty" bson:"created_at,omitempty"`
	Extra     bson.M               `json:"extra,omitempty" bson:",inline"`
}
