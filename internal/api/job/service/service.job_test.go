package jobsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/models"
	dirmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/models"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/dto"
	jobmodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/models"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/memstore"
)

type fixture struct {
	svc    *JobService
	jobs   *memstore.JobStore
	shops  *memstore.ShopStore
	owner  dirmodels.User
	pune   dirmodels.City
	mumbai dirmodels.City
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memstore.NewUserStore()
	cities := memstore.NewCityStore()
	f := &fixture{jobs: memstore.NewJobStore(), shops: memstore.NewShopStore()}
	f.svc = NewJobService(f.jobs, lookupsvc.NewLookupService(users, cities, memstore.NewCategoryStore(), f.shops), nil)
	f.owner = users.Add(dirmodels.User{Email: "hr@example.com", PhoneNumber: "9000000003"})
	f.pune = cities.Add(dirmodels.City{CityName: "Pune"})
	f.mumbai = cities.Add(dirmodels.City{CityName: "Mumbai"})
	return f
}

func (f *fixture) input() dto.JobCreateInput {
	return dto.JobCreateInput{
		OwnerIdentifier: f.owner.PhoneNumber,
		JobTitle:        "Delivery Rider",
		JobDescription:  "Two-wheeler required",
		Salary:          "15000",
		WorkStartTime:   "09:00",
		WorkEndTime:     "18:00",
		CityID:          f.pune.ID.Hex(),
	}
}

func TestAddJob_DefaultsAndDenormalizedCity(t *testing.T) {
	f := newFixture(t)
	job, err := f.svc.AddJob(context.Background(), f.input())
	require.NoError(t, err)

	assert.False(t, job.ID.IsZero())
	assert.Equal(t, f.owner.ID, job.UserID)
	assert.Equal(t, f.pune.ID, job.CityID)
	assert.Equal(t, "Pune", job.CityName)
	assert.Equal(t, int64(15000), job.Salary)
	assert.Equal(t, jobmodels.DefaultGender, job.Gender)
	assert.Equal(t, jobmodels.DefaultExperience, job.Experience)
	assert.True(t, job.ShopID.IsZero())
	assert.Equal(t, job.CreatedAt, job.UpdatedAt)
}

func TestAddJob_WithShop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	shopID, err := f.shops.Insert(ctx, &dirmodels.Shop{ShopName: "Rider Hub"})
	require.NoError(t, err)

	in := f.input()
	in.ShopID = shopID.Hex()
	job, err := f.svc.AddJob(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, basemodels.RefFromID(shopID), job.ShopID)

	n, err := f.svc.DeleteByShopID(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAddJob_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := f.input()
	in.OwnerIdentifier = "ghost@example.com"
	_, err := f.svc.AddJob(ctx, in)
	assert.True(t, common.IsNotFound(err))

	in = f.input()
	in.CityID = "pune"
	_, err = f.svc.AddJob(ctx, in)
	assert.ErrorIs(t, err, common.ErrInvalidID)

	in = f.input()
	in.CityID = primitive.NewObjectID().Hex()
	_, err = f.svc.AddJob(ctx, in)
	assert.True(t, common.IsNotFound(err))

	in = f.input()
	in.Salary = "15k"
	_, err = f.svc.AddJob(ctx, in)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)

	in = f.input()
	in.ShopID = primitive.NewObjectID().Hex()
	_, err = f.svc.AddJob(ctx, in)
	assert.True(t, common.IsNotFound(err))

	jobs, _ := f.svc.ListJobs(ctx)
	assert.Empty(t, jobs)
}

func TestUpdateJob_BadSalaryIgnoredButTimestampRefreshed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job, err := f.svc.AddJob(ctx, f.input())
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	res, err := f.svc.UpdateJob(ctx, job.ID.Hex(), dto.JobUpdateInput{Salary: "lots"})
	require.NoError(t, err)
	require.Len(t, res.Ignored, 1)
	assert.Equal(t, "salary", res.Ignored[0].Field)

	after, err := f.jobs.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), after.Salary)
	assert.True(t, after.UpdatedAt.After(job.UpdatedAt))
	assert.Equal(t, job.JobTitle, after.JobTitle)
}

func TestUpdateJob_CityRefreshedTogether(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job, err := f.svc.AddJob(ctx, f.input())
	require.NoError(t, err)

	res, err := f.svc.UpdateJob(ctx, job.ID.Hex(), dto.JobUpdateInput{CityID: f.mumbai.ID.Hex(), Salary: "20000", JobTitle: "Senior Rider"})
	require.NoError(t, err)
	assert.Empty(t, res.Ignored)

	after, _ := f.jobs.FindByID(ctx, job.ID)
	assert.Equal(t, f.mumbai.ID, after.CityID)
	assert.Equal(t, "Mumbai", after.CityName)
	assert.Equal(t, int64(20000), after.Salary)
	assert.Equal(t, "Senior Rider", after.JobTitle)

	// city_id không tra được: bỏ qua, giữ nguyên cả cặp city_id/city_name
	res, err = f.svc.UpdateJob(ctx, job.ID.Hex(), dto.JobUpdateInput{CityID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	require.Len(t, res.Ignored, 1)
	assert.Equal(t, "city_id", res.Ignored[0].Field)
	after, _ = f.jobs.FindByID(ctx, job.ID)
	assert.Equal(t, f.mumbai.ID, after.CityID)
	assert.Equal(t, "Mumbai", after.CityName)
}

func TestUpdateJob_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.UpdateJob(ctx, "j1", dto.JobUpdateInput{})
	assert.ErrorIs(t, err, common.ErrInvalidID)
	_, err = f.svc.UpdateJob(ctx, primitive.NewObjectID().Hex(), dto.JobUpdateInput{})
	assert.True(t, common.IsNotFound(err))
}

func TestListJobs_NewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first, err := f.svc.AddJob(ctx, f.input())
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := f.svc.AddJob(ctx, f.input())
	require.NoError(t, err)

	jobs, err := f.svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job, err := f.svc.AddJob(ctx, f.input())
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteJob(ctx, "bad"), common.ErrInvalidID)
	require.NoError(t, f.svc.DeleteJob(ctx, job.ID.Hex()))
	assert.True(t, common.IsNotFound(f.svc.DeleteJob(ctx, job.ID.Hex())))
}
