package models

import (
	offermodels "github.com/sakthiswaran2705/rk-dail-admin/internal/api/offer/models"
)

// ShopView là shop kèm dữ liệu bổ sung để hiển thị danh sách.
// Trường bổ sung tra cứu lỗi sẽ là null thay vì làm hỏng cả danh sách.
type ShopView struct {
	ShopID      string   `json:"shop_id"`
	ShopName    string   `json:"shop_name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phone_number"`
	Email       string   `json:"email"`
	Landmark    string   `json:"landmark"`
	Keywords    []string `json:"keywords"`
	Status      string   `json:"status"`

	City       *CityView      `json:"city"`
	Owner      *OwnerView     `json:"user"`
	Categories []CategoryView `json:"categories"`
	Images     []ImageView    `json:"images"`
	Offers     []OfferView    `json:"offers,omitempty"`
}

// CityView là thông tin thành phố rút gọn.
type CityView struct {
	ID       string      `json:"id"`
	CityName string      `json:"city_name"`
	District string      `json:"district"`
	State    string      `json:"state"`
	Pincode  interface{} `json:"pincode"`
}

// OwnerView là thông tin chủ shop rút gọn.
type OwnerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phonenumber"`
}

// CategoryView là danh mục rút gọn.
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImageView là ảnh đã chuẩn hóa: type "main" cho ảnh chính, còn lại theo media.type.
type ImageView struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// OfferView là offer đã duyệt hiển thị kèm shop.
type OfferView struct {
	OfferID     string `json:"offer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Percentage  string `json:"percentage"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Fee         string `json:"fee"`
	ImageURL    string `json:"image_url"`
	MediaType   string `json:"media_type"`
}

// NewCityView chuyển City sang CityView.
func NewCityView(c *City) *CityView {
	if c == nil {
		return nil
	}
	return &CityView{ID: c.ID.Hex(), CityName: c.CityName, District: c.District, State: c.State, Pincode: c.Pincode}
}

// NewOwnerView chuyển User sang OwnerView.
func NewOwnerView(u *User) *OwnerView {
	if u == nil {
		return nil
	}
	return &OwnerView{ID: u.ID.Hex(), Name: u.DisplayName(), PhoneNumber: u.PhoneNumber}
}

// NewOfferView chuyển OfferItem sang OfferView.
func NewOfferView(item offermodels.OfferItem) OfferView {
	return OfferView{
		OfferID:     item.OfferID,
		Title:       item.Title,
		Description: item.Description,
		Percentage:  item.Percentage,
		StartDate:   item.StartDate,
		EndDate:     item.EndDate,
		Fee:         item.Fee,
		ImageURL:    item.MediaPath,
		MediaType:   item.MediaType,
	}
}

// Images chuẩn hóa ảnh chính và gallery thành một danh sách.
func (s *Shop) Images() []ImageView {
	images := make([]ImageView, 0, len(s.Media)+1)
	if s.MainImage != nil && *s.MainImage != "" {
		images = append(images, ImageView{Type: "main", URL: *s.MainImage})
	}
	for _, m := range s.Media {
		if m.Path == "" {
			continue
		}
		t := m.Type
		if t == "" {
			t = "image"
		}
		images = append(images, ImageView{Type: t, URL: m.Path})
	}
	return images
}

// NewShopView tạo view cơ bản từ shop (chưa có dữ liệu bổ sung).
func NewShopView(s *Shop) ShopView {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ShopView{
		ShopID:      s.ID.Hex(),
		ShopName:    s.ShopName,
		Description: s.Description,
		Address:     s.Address,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		Landmark:    s.Landmark,
		Keywords:    keywords,
		Status:      s.Status,
		Categories:  []CategoryView{},
		Images:      s.Images(),
	}
}
