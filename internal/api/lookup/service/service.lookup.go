// Package lookupsvc tra cứu chủ shop, thành phố, danh mục và shop dùng chung cho các domain danh bạ, offer, job.
package lookupsvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// SearchLimit là số kết quả tối đa cho autocomplete.
const SearchLimit = 10

// UserRepository đọc collection user. Không tìm thấy trả về common.ErrNotFound.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*dirmodels.User, error)
	FindByPhone(ctx context.Context, phone string) (*dirmodels.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.User, error)
}

// CityRepository đọc collection city.
type CityRepository interface {
	// FindByExactName so khớp nguyên tên, không phân biệt hoa thường.
	FindByExactName(ctx context.Context, name string) (*dirmodels.City, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.City, error)
	// SearchByName tìm theo chuỗi con, không phân biệt hoa thường, theo thứ tự tự nhiên.
	SearchByName(ctx context.Context, fragment string, limit int64) ([]dirmodels.City, error)
}

// CategoryRepository đọc collection category.
type CategoryRepository interface {
	FindByExactName(ctx context.Context, name string) (*dirmodels.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]dirmodels.Category, error)
	SearchByName(ctx context.Context, fragment string, limit int64) ([]dirmodels.Category, error)
}

// ShopFinder đọc một shop theo _id.
type ShopFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*dirmodels.Shop, error)
}

// LookupService gom các thao tác tra cứu.
type LookupService struct {
	users      UserRepository
	cities     CityRepository
	categories CategoryRepository
	shops      ShopFinder
}

// NewLookupService tạo mới LookupService
func NewLookupService(users UserRepository, cities CityRepository, categories CategoryRepository, shops ShopFinder) *LookupService {
	return &LookupService{
		users:      users,
		cities:     cities,
		categories: categories,
		shops:      shops,
	}
}

// ParseID kiểm tra định danh 24 ký tự hex, trả về common.ErrInvalidID nếu sai định dạng.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeInvalidIdentifier, "Định danh không hợp lệ: "+id, common.StatusBadRequest, nil)
	}
	return oid, nil
}

// FindShop tìm shop theo id dạng chuỗi.
func (s *LookupService) FindShop(ctx context.Context, shopID string) (*dirmodels.Shop, error) {
	oid, err := ParseID(shopID)
	if err != nil {
		return nil, err
	}
	shop, err := s.shops.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, "Không tìm thấy shop %s", shopID)
	}
	return shop, nil
}

// UserByRef tìm user theo tham chiếu đã chuẩn hóa (dùng khi làm giàu dữ liệu hiển thị).
func (s *LookupService) UserByRef(ctx context.Context, ref basemodels.ObjectRef) (*dirmodels.User, error) {
	oid, err := ref.ObjectID()
	if err != nil {
		return nil, common.ErrInvalidID
	}
	return s.users.FindByID(ctx, oid)
}

// notFoundAs thay lỗi NotFound chung bằng lỗi NotFound có nêu tên đối tượng; lỗi khác giữ nguyên.
func notFoundAs(err error, format string, args ...any) error {
	if common.IsNotFound(err) {
		return common.NotFoundf(format, args...)
	}
	return err
}
