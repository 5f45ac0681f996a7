package lookupsvc

import (
	"context"
	"strings"

	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// ResolveOwner tìm user theo email (nếu chuỗi có "@") hoặc theo số điện thoại, so khớp chính xác.
func (s *LookupService) ResolveOwner(ctx context.Context, identifier string) (*dirmodels.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, common.InvalidInputf("Thiếu email hoặc số điện thoại của chủ shop")
	}

	var (
		user *dirmodels.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, identifier)
	} else {
		user, err = s.users.FindByPhone(ctx, identifier)
	}
	if err != nil {
		return nil, notFoundAs(err, "Không tìm thấy người dùng %s", identifier)
	}
	return user, nil
}
