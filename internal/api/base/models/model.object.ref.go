// Package models chứa các kiểu dùng chung giữa các domain (tham chiếu ObjectID, trạng thái duyệt).
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
)

// ObjectRef là tham chiếu tới document khác (city_id, user_id, shop_id...).
// Dữ liệu cũ lưu lẫn lộn chuỗi hex, ObjectID hoặc {"$oid": "..."}; khi đọc đều chuẩn hóa về chuỗi hex,
// khi ghi luôn ghi chuỗi hex.
type ObjectRef string

// RefFromID tạo ObjectRef từ ObjectID.
func RefFromID(id primitive.ObjectID) ObjectRef {
	if id.IsZero() {
		return ""
	}
	return ObjectRef(id.Hex())
}

// ParseRef kiểm tra chuỗi hex và trả về ObjectRef.
func ParseRef(s string) (ObjectRef, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", err
	}
	return ObjectRef(id.Hex()), nil
}

// String trả về chuỗi hex.
func (r ObjectRef) String() string {
	return string(r)
}

// IsZero cho biết tham chiếu rỗng.
func (r ObjectRef) IsZero() bool {
	return r == ""
}

// ObjectID chuyển về ObjectID, lỗi nếu giá trị không phải hex hợp lệ.
func (r ObjectRef) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(string(r))
}

// Matches trả về filter khớp cả hai dạng lưu trữ (chuỗi hex và ObjectID).
func (r ObjectRef) Matches() bson.M {
	id, err := r.ObjectID()
	if err != nil {
		return bson.M{"$eq": string(r)}
	}
	return RefFilter(id)
}

// RefFilter trả về filter khớp trường tham chiếu lưu dạng chuỗi hex hoặc ObjectID.
func RefFilter(id primitive.ObjectID) bson.M {
	return bson.M{"$in": bson.A{id.Hex(), id}}
}

// MarshalBSONValue luôn ghi dạng chuỗi hex; tham chiếu rỗng ghi null.
func (r ObjectRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r == "" {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(string(r))
}

// UnmarshalBSONValue chấp nhận chuỗi, ObjectID, {"$oid": ...} và null.
// Kiểu khác (số, mảng...) giải mã thành tham chiếu rỗng để một document hỏng không làm hỏng cả danh sách.
func (r *ObjectRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*r = ""
	case bsontype.String:
		*r = ObjectRef(raw.StringValue())
	case bsontype.ObjectID:
		*r = RefFromID(raw.ObjectID())
	case bsontype.EmbeddedDocument:
		*r = ""
		oid, err := raw.Document().LookupErr("$oid")
		if err != nil {
			logUndecodableRef(t)
			return nil
		}
		if s, ok := oid.StringValueOK(); ok {
			*r = ObjectRef(s)
		} else if id, ok := oid.ObjectIDOK(); ok {
			*r = RefFromID(id)
		} else {
			logUndecodableRef(oid.Type)
		}
	default:
		*r = ""
		logUndecodableRef(t)
	}
	return nil
}

func logUndecodableRef(t bsontype.Type) {
	logger.WithModule("models").WithField("bson_type", t.String()).Warn("Undecodable object reference, treating as empty")
}
