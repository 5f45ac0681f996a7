package lookupsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/memstore"
)

type fixture struct {
	svc        *LookupService
	users      *memstore.UserStore
	cities     *memstore.CityStore
	categories *memstore.CategoryStore
	shops      *memstore.ShopStore
}

func newFixture() *fixture {
	f := &fixture{
		users:      memstore.NewUserStore(),
		cities:     memstore.NewCityStore(),
		categories: memstore.NewCategoryStore(),
		shops:      memstore.NewShopStore(),
	}
	f.svc = NewLookupService(f.users, f.cities, f.categories, f.shops)
	return f
}

func TestResolveOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.users.Add(dirmodels.User{FirstName: "Asha", Email: "asha@example.com", PhoneNumber: "9876543210"})

	byEmail, err := f.svc.ResolveOwner(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byPhone, err := f.svc.ResolveOwner(ctx, " 9876543210 ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byPhone.ID)

	_, err = f.svc.ResolveOwner(ctx, "nobody@example.com")
	assert.True(t, common.IsNotFound(err))

	// Số điện thoại không được dùng để so với email
	_, err = f.svc.ResolveOwner(ctx, "asha")
	assert.True(t, common.IsNotFound(err))

	_, err = f.svc.ResolveOwner(ctx, "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestResolveCityByName_CaseInsensitiveExact(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	pune := f.cities.Add(dirmodels.City{CityName: "Pune", State: "Maharashtra"})
	f.cities.Add(dirmodels.City{CityName: "Punalur"})

	city, err := f.svc.ResolveCityByName(ctx, "  pune ")
	require.NoError(t, err)
	assert.Equal(t, pune.ID, city.ID)

	_, err = f.svc.ResolveCityByName(ctx, "pun")
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
	assert.Contains(t, err.Error(), "pun")
}

func TestCityByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	pune := f.cities.Add(dirmodels.City{CityName: "Pune"})

	city, err := f.svc.CityByID(ctx, pune.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Pune", city.CityName)

	_, err = f.svc.CityByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, common.ErrInvalidID)

	_, err = f.svc.CityByID(ctx, "64b7f0c2a1b2c3d4e5f60718")
	assert.True(t, common.IsNotFound(err))
}

func TestResolveCategories_Report(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	food := f.categories.Add(dirmodels.Category{Name: "Food"})
	salon := f.categories.Add(dirmodels.Category{Name: "Salon"})
	f.categories.FailOn["Broken"] = errors.New("connection reset")

	report := f.svc.ResolveCategories(ctx, "food, Unknown ,,SALON,Broken,Food")

	assert.Equal(t, []string{food.ID.Hex(), salon.ID.Hex()}, report.IDs())
	assert.Equal(t, []string{"Unknown"}, report.Skipped)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "Broken", report.Failed[0].Name)
	assert.Contains(t, report.Failed[0].Error, "connection reset")
}

func TestResolveCategories_Empty(t *testing.T) {
	report := newFixture().svc.ResolveCategories(context.Background(), " , ")
	assert.Empty(t, report.Resolved)
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.NotNil(t, report.IDs())
}

func TestSearchCities(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	for i := 0; i < 12; i++ {
		f.cities.Add(dirmodels.City{CityName: "Puttur"})
	}
	f.cities.Add(dirmodels.City{CityName: "Chennai"})

	cities, err := f.svc.SearchCities(ctx, "PUT")
	require.NoError(t, err)
	assert.Len(t, cities, SearchLimit)

	cities, err = f.svc.SearchCities(ctx, "xyz")
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)

	cities, err = f.svc.SearchCities(ctx, "  ")
	require.NoError(t, err)
	require.Len(t, cities, SearchLimit)
	assert.Equal(t, "Puttur", cities[0].CityName)
}

func TestSearchCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.categories.Add(dirmodels.Category{Name: "Beauty Salon"})
	f.categories.Add(dirmodels.Category{Name: "Hardware"})

	cats, err := f.svc.SearchCategories(ctx, "salon")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Beauty Salon", cats[0].Name)
	cats, err = f.svc.SearchCategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestCategoriesByIDs_SkipsMalformed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	food := f.categories.Add(dirmodels.Category{Name: "Food"})

	cats, err := f.svc.CategoriesByIDs(ctx, []string{"bad", food.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, food.ID, cats[0].ID)

	cats, err = f.svc.CategoriesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestFindShop(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id, err := f.shops.Insert(ctx, &dirmodels.Shop{ShopName: "Tea Stall"})
	require.NoError(t, err)

	shop, err := f.svc.FindShop(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Tea Stall", shop.ShopName)

	_, err = f.svc.FindShop(ctx, "xyz")
	assert.ErrorIs(t, err, common.ErrInvalidID)
}
