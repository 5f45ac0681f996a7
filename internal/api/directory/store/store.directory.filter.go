// Package dirstore lưu shop, thành phố, danh mục và user trên MongoDB.
package dirstore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	basesvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/service"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
)

// ExactNameFilter so khớp nguyên giá trị, không phân biệt hoa thường. Ký tự đặc biệt của regex được escape.
func ExactNameFilter(field, name string) bson.M {
	return bson.M{field: bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "$", "$options": "i"}}
}

// ContainsFilter so khớp chuỗi con, không phân biệt hoa thường.
func ContainsFilter(field, fragment string) bson.M {
	return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(fragment), "$options": "i"}}
}

// StatusTransitionFilter chỉ khớp shop đang pending, chưa có status, hoặc đã ở target.
// $in với null khớp cả document thiếu trường status.
func StatusTransitionFilter(id primitive.ObjectID, target string) bson.M {
	return bson.M{
		"_id":    id,
		"status": bson.M{"$in": bson.A{basemodels.StatusPending, target, nil}},
	}
}

// ShopUpdateDocument dựng update từ ShopUpdate: $set cho trường vô hướng, $push $each cho ảnh gallery mới.
func ShopUpdateDocument(u dirmodels.ShopUpdate) *basesvc.UpdateData {
	set := bson.M{}
	putString(set, "shop_name", u.ShopName)
	putString(set, "description", u.Description)
	putString(set, "address", u.Address)
	putString(set, "phone_number", u.PhoneNumber)
	putString(set, "email", u.Email)
	putString(set, "landmark", u.Landmark)
	if u.Keywords != nil {
		set["keywords"] = u.Keywords
	}
	if u.CityID != nil {
		set["city_id"] = *u.CityID
	}
	if u.MainImage != nil {
		set["main_image"] = *u.MainImage
	}
	if !u.UpdatedAt.IsZero() {
		set["updated_at"] = u.UpdatedAt
	}

	update := &basesvc.UpdateData{}
	if len(set) > 0 {
		update.Set = set
	}
	if len(u.AppendMedia) > 0 {
		update.Push = bson.M{"media": bson.M{"$each": u.AppendMedia}}
	}
	return update
}

func putString(m bson.M, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
