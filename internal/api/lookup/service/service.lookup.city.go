package lookupsvc

import (
	"context"
	"strings"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// ResolveCityByName tìm thành phố theo tên chính xác (không phân biệt hoa thường, bỏ khoảng trắng hai đầu).
// Không có gợi ý gần đúng: client dùng SearchCities trước.
func (s *LookupService) ResolveCityByName(ctx context.Context, name string) (*dirmodels.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.InvalidInputf("Thiếu tên thành phố")
	}
	city, err := s.cities.FindByExactName(ctx, name)
	if err != nil {
		return nil, notFoundAs(err, "Không tìm thấy thành phố '%s', hãy chọn từ gợi ý", name)
	}
	return city, nil
}

// CityByID tìm thành phố theo id dạng chuỗi.
func (s *LookupService) CityByID(ctx context.Context, cityID string) (*dirmodels.City, error) {
	oid, err := ParseID(cityID)
	if err != nil {
		return nil, err
	}
	city, err := s.cities.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, "Không tìm thấy thành phố %s", cityID)
	}
	return city, nil
}

// CityByRef tìm thành phố theo tham chiếu lưu trong shop.
func (s *LookupService) CityByRef(ctx context.Context, ref basemodels.ObjectRef) (*dirmodels.City, error) {
	oid, err := ref.ObjectID()
	if err != nil {
		return nil, common.ErrInvalidID
	}
	return s.cities.FindByID(ctx, oid)
}

// SearchCities trả về tối đa SearchLimit thành phố có tên chứa fragment. Không có kết quả vẫn là thành công.
func (s *LookupService) SearchCities(ctx context.Context, fragment string) ([]dirmodels.City, error) {
	// Chuỗi rỗng khớp mọi tên: trả về SearchLimit bản ghi đầu tiên
	fragment = strings.TrimSpace(fragment)
	return s.cities.SearchByName(ctx, fragment, SearchLimit)
}
