package lookupsvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// ResolveCategories phân giải từng tên trong danh sách phân cách bởi dấu phẩy.
// Tên không khớp được đưa vào Skipped, lỗi tra cứu vào Failed; không trả lỗi cho cả danh sách.
func (s *LookupService) ResolveCategories(ctx context.Context, csv string) *dirmodels.CategoryReport {
	report := &dirmodels.CategoryReport{
		Resolved: []dirmodels.ResolvedCategory{},
		Skipped:  []string{},
		Failed:   []dirmodels.ItemFailure{},
	}
	seen := make(map[string]bool)

	for _, raw := range strings.Split(csv, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		category, err := s.categories.FindByExactName(ctx, name)
		switch {
		case common.IsNotFound(err):
			report.Skipped = append(report.Skipped, name)
		case err != nil:
			report.Failed = append(report.Failed, dirmodels.ItemFailure{Name: name, Error: err.Error()})
		default:
			id := category.ID.Hex()
			if seen[id] {
				continue
			}
			seen[id] = true
			report.Resolved = append(report.Resolved, dirmodels.ResolvedCategory{Name: category.Name, ID: id})
		}
	}
	return report
}

// CategoriesByIDs tìm danh mục theo danh sách id hex của shop; id sai định dạng bị bỏ qua.
func (s *LookupService) CategoriesByIDs(ctx context.Context, ids []string) ([]dirmodels.Category, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []dirmodels.Category{}, nil
	}
	return s.categories.FindByIDs(ctx, oids)
}

// SearchCategories trả về tối đa SearchLimit danh mục có tên chứa fragment.
func (s *LookupService) SearchCategories(ctx context.Context, fragment string) ([]dirmodels.Category, error) {
	// Chuỗi rỗng khớp mọi tên: trả về SearchLimit bản ghi đầu tiên
	fragment = strings.TrimSpace(fragment)
	return s.categories.SearchByName(ctx, fragment, SearchLimit)
}
