package database

// Tên các collection của hệ thống danh bạ.
const (
	CollectionShop     = "shop"
	CollectionCategory = "category"
	CollectionCity     = "city"
	CollectionUser     = "user"
	CollectionOffers   = "offers"
	CollectionJobs     = "jobs"
	CollectionReviews  = "reviews"
)

// CollectionNames trả về toàn bộ collection cần đăng ký vào registry.
func CollectionNames() []string {
	return []string{
		CollectionShop,
		CollectionCategory,
		CollectionCity,
		CollectionUser,
		CollectionOffers,
		CollectionJobs,
		CollectionReviews,
	}
}
