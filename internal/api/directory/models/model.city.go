package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// City lưu thông tin thành phố (city).
type City struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CityName string             `json:"city_name" bson:"city_name"`
	District string             `json:"district" bson:"district"`
	State    string             `json:"state" bson:"state"`
	Pincode  interface{}        `json:"pincode" bson:"pincode"` // Dữ liệu cũ có bản ghi lưu dạng số
}

// Category lưu danh mục ngành hàng (category).
type Category struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// User là chủ shop / người đăng việc (user). Chỉ đọc các trường cần cho tra cứu và hiển thị.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstname" bson:"firstname"`
	LastName    string             `json:"lastname" bson:"lastname"`
	Email       string             `json:"email" bson:"email"`
	PhoneNumber string             `json:"phonenumber" bson:"phonenumber"`
}

// DisplayName ghép họ tên.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
