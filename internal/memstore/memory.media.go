package memstore

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
)

// MediaStore lưu nội dung tệp trong bộ nhớ theo đường dẫn tương đối.
type MediaStore struct {
	mu    sync.Mutex
	files map[string][]byte
	// FailSave khiến mọi lần ghi trả lỗi.
	FailSave bool
	// SaveLimit > 0 thì lần ghi thứ SaveLimit+1 trở đi trả lỗi.
	SaveLimit int
	saves     int
}

// NewMediaStore tạo mới MediaStore
func NewMediaStore() *MediaStore {
	return &MediaStore{files: map[string][]byte{}}
}

func (m *MediaStore) Save(_ context.Context, relPath string, r io.Reader, _ string) error {
	if m.FailSave {
		return errors.New("media store unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveLimit > 0 && m.saves >= m.SaveLimit {
		return errors.New("media store full")
	}
	m.saves++
	if _, exists := m.files[relPath]; exists {
		return errors.New("file exists: " + relPath)
	}
	m.files[relPath] = data
	return nil
}

func (m *MediaStore) Remove(_ context.Context, relPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, relPath)
	return nil
}

func (m *MediaStore) RemoveAll(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.files {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			delete(m.files, p)
		}
	}
	return nil
}

// Has cho biết tệp có tồn tại.
func (m *MediaStore) Has(relPath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[relPath]
	return ok
}

// Paths trả về danh sách đường dẫn đã sắp xếp.
func (m *MediaStore) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
