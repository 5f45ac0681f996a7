package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type refHolder struct {
	CityID ObjectRef `bson:"city_id"`
	UserID ObjectRef `bson:"user_id,omitempty"`
}

func decodeRef(t *testing.T, doc bson.M) ObjectRef {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var h refHolder
	require.NoError(t, bson.Unmarshal(raw, &h))
	return h.CityID
}

func TestObjectRef_DecodesEveryStoredForm(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, ObjectRef(id.Hex()), decodeRef(t, bson.M{"city_id": id.Hex()}))
	assert.Equal(t, ObjectRef(id.Hex()), decodeRef(t, bson.M{"city_id": id}))
	assert.Equal(t, ObjectRef(id.Hex()), decodeRef(t, bson.M{"city_id": bson.M{"$oid": id.Hex()}}))
	assert.Equal(t, ObjectRef(""), decodeRef(t, bson.M{"city_id": nil}))
}

func TestObjectRef_UnknownTypeDecodesEmpty(t *testing.T) {
	id := primitive.NewObjectID()
	tests := []struct {
		name  string
		value interface{}
	}{
		{"int", 42},
		{"array", bson.A{"x"}},
		{"document without $oid", bson.M{"id": "x"}},
		{"$oid with int", bson.M{"$oid": 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"city_id": tt.value, "user_id": id})
			require.NoError(t, err)
			var h refHolder
			require.NoError(t, bson.Unmarshal(raw, &h))
			assert.True(t, h.CityID.IsZero())
			assert.Equal(t, RefFromID(id), h.UserID)
		})
	}
}

func TestObjectRef_EncodesCanonicalHex(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(refHolder{CityID: RefFromID(id)})
	require.NoError(t, err)

	var out bson.M
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, id.Hex(), out["city_id"])
	_, hasUser := out["user_id"]
	assert.False(t, hasUser, "tham chiếu rỗng với omitempty phải bị bỏ qua")
}

func TestObjectRef_Matches(t *testing.T) {
	id := primitive.NewObjectID()
	f := RefFromID(id).Matches()
	assert.Equal(t, bson.M{"$in": bson.A{id.Hex(), id}}, f)

	_, err := ObjectRef("not-an-id").ObjectID()
	assert.Error(t, err)
	assert.Equal(t, bson.M{"$eq": "not-an-id"}, ObjectRef("not-an-id").Matches())
}
