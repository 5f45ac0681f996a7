// Package memstore cài đặt các repository và media store trong bộ nhớ.
// Chỉ dùng trong test (service và end-to-end qua app.Test); binary server không import package này.
package memstore

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// UserStore lưu user trong bộ nhớ.
type UserStore struct {
	mu    sync.Mutex
	users []dirmodels.User
}

// NewUserStore tạo mới UserStore
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Add thêm user, sinh _id nếu chưa có.
func (s *UserStore) Add(u dirmodels.User) dirmodels.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, u)
	return u
}

func (s *UserStore) find(match func(u *dirmodels.User) bool) (*dirmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if match(&s.users[i]) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*dirmodels.User, error) {
	return s.find(func(u *dirmodels.User) bool { return u.Email == email })
}

func (s *UserStore) FindByPhone(_ context.Context, phone string) (*dirmodels.User, error) {
	return s.find(func(u *dirmodels.User) bool { return u.PhoneNumber == phone })
}

func (s *UserStore) FindByID(_ context.Context, id primitive.ObjectID) (*dirmodels.User, error) {
	return s.find(func(u *dirmodels.User) bool { return u.ID == id })
}

// CityStore lưu thành phố trong bộ nhớ.
type CityStore struct {
	mu     sync.Mutex
	cities []dirmodels.City
}

// NewCityStore tạo mới CityStore
func NewCityStore() *CityStore {
	return &CityStore{}
}

// Add thêm thành phố, sinh _id nếu chưa có.
func (s *CityStore) Add(c dirmodels.City) dirmodels.City {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.cities = append(s.cities, c)
	return c
}

func (s *CityStore) FindByExactName(_ context.Context, name string) (*dirmodels.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cities {
		if strings.EqualFold(c.CityName, name) {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *CityStore) FindByID(_ context.Context, id primitive.ObjectID) (*dirmodels.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cities {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *CityStore) SearchByName(_ context.Context, fragment string, limit int64) ([]dirmodels.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []dirmodels.City{}
	for _, c := range s.cities {
		if int64(len(result)) >= limit {
			break
		}
		if containsFold(c.CityName, fragment) {
			result = append(result, c)
		}
	}
	return result, nil
}

// CategoryStore lưu danh mục trong bộ nhớ.
type CategoryStore struct {
	mu         sync.Mutex
	categories []dirmodels.Category
	// FailOn cho phép giả lập lỗi tra cứu với một tên cụ thể.
	FailOn map[string]error
}

// NewCategoryStore tạo mới CategoryStore
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{FailOn: map[string]error{}}
}

// Add thêm danh mục, sinh _id nếu chưa có.
func (s *CategoryStore) Add(c dirmodels.Category) dirmodels.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.categories = append(s.categories, c)
	return c
}

func (s *CategoryStore) FindByExactName(_ context.Context, name string) (*dirmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.FailOn[name]; ok {
		return nil, err
	}
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *CategoryStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]dirmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	result := []dirmodels.Category{}
	for _, c := range s.categories {
		if wanted[c.ID] {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *CategoryStore) SearchByName(_ context.Context, fragment string, limit int64) ([]dirmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []dirmodels.Category{}
	for _, c := range s.categories {
		if int64(len(result)) >= limit {
			break
		}
		if containsFold(c.Name, fragment) {
			result = append(result, c)
		}
	}
	return result, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
