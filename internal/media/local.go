package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// LocalStore lưu media trên filesystem, đường dẫn tương đối tính từ BaseDir.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore tạo LocalStore với thư mục gốc baseDir.
func NewLocalStore(baseDir string) *LocalStore {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) abs(relPath string) (string, error) {
	if !IsUnderRoot(relPath) {
		return "", common.NewError(common.ErrCodeMediaStore, fmt.Sprintf("đường dẫn media không hợp lệ: %s", relPath), common.StatusBadRequest, nil)
	}
	return filepath.Join(s.BaseDir, filepath.FromSlash(relPath)), nil
}

// Save ghi tệp mới, tạo thư mục cha nếu cần.
func (s *LocalStore) Save(ctx context.Context, relPath string, r io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.abs(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}

	// O_EXCL: không bao giờ ghi đè tệp đã có
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return fmt.Errorf("write media file: %w", err)
	}
	return f.Close()
}

// Remove xóa một tệp; tệp không tồn tại được coi là đã xóa.
func (s *LocalStore) Remove(_ context.Context, relPath string) error {
	target, err := s.abs(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveAll xóa cả thư mục prefix.
func (s *LocalStore) RemoveAll(_ context.Context, prefix string) error {
	target, err := s.abs(prefix)
	if err != nil {
		return err
	}
	return os.RemoveAll(target)
}
