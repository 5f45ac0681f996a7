// Package media lưu tệp ảnh/video tải lên theo không gian đường dẫn
// media/shop/{shop_id}/{main|images|offers/{images|videos}}/{tên ngẫu nhiên}.{ext}.
package media

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Root là thư mục gốc của mọi đường dẫn media (đường dẫn tương đối lưu trong DB bắt đầu bằng nó).
const Root = "media/shop"

// Loại media
const (
	KindImage = "image"
	KindVideo = "video"
)

// Store là nơi lưu tệp media. Đường dẫn luôn là đường dẫn tương đối kiểu "media/shop/...".
// Ghi luôn tạo tệp mới; xóa tệp không tồn tại không phải lỗi.
type Store interface {
	Save(ctx context.Context, relPath string, r io.Reader, contentType string) error
	Remove(ctx context.Context, relPath string) error
	RemoveAll(ctx context.Context, prefix string) error
}

// Upload là một tệp nhận từ form multipart.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Kind phân loại upload theo content type khai báo: image, video hoặc rỗng nếu không hỗ trợ.
func (u Upload) Kind() string {
	return Classify(u.ContentType)
}

// Classify phân loại content type thành image/video.
func Classify(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	case strings.HasPrefix(ct, "video/"):
		return KindVideo
	}
	return ""
}

// Ext lấy phần mở rộng (không có dấu chấm, chữ thường) từ tên tệp gốc.
func Ext(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(filename)), ".")
	return strings.ToLower(ext)
}

// RandomName sinh tên tệp ngẫu nhiên giữ nguyên phần mở rộng của tệp gốc.
func RandomName(original string) string {
	name := uuid.NewString()
	if ext := Ext(original); ext != "" {
		name += "." + ext
	}
	return name
}

// ShopDir trả về thư mục gốc media của một shop.
func ShopDir(shopID string) string {
	return path.Join(Root, shopID)
}

// MainImagePath trả về đường dẫn ảnh chính mới của shop.
func MainImagePath(shopID, original string) string {
	return path.Join(ShopDir(shopID), "main", RandomName(original))
}

// GalleryImagePath trả về đường dẫn ảnh gallery mới của shop.
func GalleryImagePath(shopID, original string) string {
	return path.Join(ShopDir(shopID), "images", RandomName(original))
}

// OfferMediaPath trả về đường dẫn tệp của offer: offers/{images|videos}/{offer_id}.{ext}.
func OfferMediaPath(shopID, offerID, kind, original string) string {
	name := offerID
	if ext := Ext(original); ext != "" {
		name += "." + ext
	}
	return path.Join(ShopDir(shopID), "offers", kind+"s", name)
}

// IsUnderRoot kiểm tra đường dẫn sạch và nằm trong Root (chặn ../).
func IsUnderRoot(relPath string) bool {
	if relPath == "" || path.IsAbs(relPath) {
		return false
	}
	clean := path.Clean(relPath)
	return clean == relPath && strings.HasPrefix(clean, Root+"/")
}
