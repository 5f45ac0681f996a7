package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFoundf("Không tìm thấy thành phố %q", "Pune")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidID))
	assert.Equal(t, `Không tìm thấy thành phố "Pune"`, err.Error())

	wrapped := fmt.Errorf("create shop: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
	assert.Same(t, ErrNotFound, ConvertMongoError(mongo.ErrNoDocuments))
	assert.Same(t, ErrInvalidID, ConvertMongoError(ErrInvalidID))

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.Same(t, ErrMongoDuplicate, ConvertMongoError(dup))

	generic := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	assert.True(t, errors.As(generic, &appErr))
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}
