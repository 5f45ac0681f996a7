package main

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	basehdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/base/handler"
	dirhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/handler"
	dirrouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/router"
	dirsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/service"
	dirstore "github.com/sakthiswaran2705/rk-dail-admin/internal/api/directory/store"
	jobhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/handler"
	jobrouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/router"
	jobsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/service"
	jobstore "github.com/sakthiswaran2705/rk-dail-admin/internal/api/job/store"
	lookuphdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/handler"
	lookuprouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/router"
	lookupsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/lookup/service"
	offerhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/handler"
	offerrouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/router"
	offersvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/service"
	offerstore "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/store"
	reviewhdl "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/handler"
	reviewrouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/router"
	reviewsvc "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/service"
	reviewstore "github.com/sakthiswaran2705/rk-dail-admin/internal/api/review/store"
	apirouter "github.com/sakthiswaran2705/rk-dail-admin/internal/api/router"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/metrics"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// shopRepository là store shop dùng cho cả ShopService và tra cứu shop theo id
type shopRepository interface {
	dirsvc.ShopRepository
	lookupsvc.ShopFinder
}

// repositories gom các store mà service cần (Mongo khi chạy thật, bộ nhớ trong test)
type repositories struct {
	users      lookupsvc.UserRepository
	cities     lookupsvc.CityRepository
	categories lookupsvc.CategoryRepository
	shops      shopRepository
	offers     offersvc.OfferRepository
	jobs       jobsvc.JobRepository
	reviews    reviewsvc.ReviewRepository
}

// newMongoRepositories tạo các store Mongo từ registry collection
func newMongoRepositories(reg *registry.Registry[*mongo.Collection]) (*repositories, error) {
	users, err := dirstore.NewUserStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo UserStore: %w", err)
	}
	cities, err := dirstore.NewCityStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo CityStore: %w", err)
	}
	categories, err := dirstore.NewCategoryStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryStore: %w", err)
	}
	shops, err := dirstore.NewShopStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo ShopStore: %w", err)
	}
	offers, err := offerstore.NewOfferStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo OfferStore: %w", err)
	}
	jobs, err := jobstore.NewJobStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo JobStore: %w", err)
	}
	reviews, err := reviewstore.NewReviewStore(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewStore: %w", err)
	}
	return &repositories{
		users:      users,
		cities:     cities,
		categories: categories,
		shops:      shops,
		offers:     offers,
		jobs:       jobs,
		reviews:    reviews,
	}, nil
}

// buildRoutes khởi tạo service, handler và trả về các RegisterFunc của từng domain
func buildRoutes(repos *repositories, store media.Store, m *metrics.Metrics, db basehdl.Pinger) []apirouter.RegisterFunc {
	lookup := lookupsvc.NewLookupService(repos.users, repos.cities, repos.categories, repos.shops)
	offerService := offersvc.NewOfferService(repos.offers, lookup, store, m)
	jobService := jobsvc.NewJobService(repos.jobs, lookup, m)
	reviewService := reviewsvc.NewReviewService(repos.reviews, m)
	shopService := dirsvc.NewShopService(repos.shops, lookup, offerService, store, m,
		dirsvc.CascadeTarget{Collection: database.CollectionOffers, Target: offerService},
		dirsvc.CascadeTarget{Collection: database.CollectionJobs, Target: jobService},
		dirsvc.CascadeTarget{Collection: database.CollectionReviews, Target: reviewService},
	)

	return []apirouter.RegisterFunc{
		apirouter.RegisterSystem(basehdl.NewSystemHandler(db)),
		lookuprouter.Register(lookuphdl.NewLookupHandler(lookup)),
		dirrouter.Register(dirhdl.NewShopHandler(shopService)),
		offerrouter.Register(offerhdl.NewOfferHandler(offerService)),
		jobrouter.Register(jobhdl.NewJobHandler(jobService)),
		reviewrouter.Register(reviewhdl.NewReviewHandler(reviewService)),
	}
}
