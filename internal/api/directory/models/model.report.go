package models

// ResolvedCategory là một tên danh mục đã tìm thấy.
type ResolvedCategory struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ItemFailure là một mục xử lý lỗi, kèm lý do.
type ItemFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// CategoryReport là kết quả phân giải từng tên danh mục trong danh sách phân cách bởi dấu phẩy.
type CategoryReport struct {
	Resolved []ResolvedCategory `json:"resolved"`
	Skipped  []string           `json:"skipped"` // Không có danh mục trùng tên
	Failed   []ItemFailure      `json:"failed"`  // Lỗi khi tra cứu
}

// IDs trả về danh sách id đã phân giải, giữ thứ tự đầu vào.
func (r *CategoryReport) IDs() []string {
	ids := make([]string, 0, len(r.Resolved))
	for _, c := range r.Resolved {
		ids = append(ids, c.ID)
	}
	return ids
}

// CascadeReport đếm số document bị xóa dây chuyền theo collection.
type CascadeReport struct {
	Deleted map[string]int64 `json:"deleted"`
	Failed  []ItemFailure    `json:"failed,omitempty"`
	// MediaPurged = false khi không xóa được thư mục media của shop
	MediaPurged bool `json:"media_purged"`
}

// EnrichmentReport đếm số trường bổ sung (city, owner, categories, offers) không tra được khi liệt kê.
type EnrichmentReport struct {
	Failed int `json:"failed"`
}
