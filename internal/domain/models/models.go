package models

import "time"

type Book struct {
	BID         string    `json:"bid,omitempty"`
	Title       string    `json:"title" validate:"required,min=1"`
	Author      string    `json:"author" validate:"required,min=2"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Desc        string    `json:"desc"`
	CoverURL    string    `json:"cover_url,omitempty"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating,omitempty"`
	ReleaseDate time.Time `json:"release_date"`
	Stock       int       `json:"stock"`
}

// CatalogQuery is the parsed state of the catalog search endpoint. Filters
// apply in order: title substring, author substring, exact category, then
// sort and paginate.
type CatalogQuery struct {
	Title    string
	Author   string
	Category string
	Sort     string // price_asc, price_desc, release_date (default, newest first)
	Page     int    // 1-based
}

type CatalogPage struct {
	Items    []Book `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type Cart struct {
	CartID       string `json:"cart_id"`
	UID          string `json:"uid,omitempty"`
	DiscountCode string `json:"discount_code,omitempty"`
}

type CartItem struct {
	ItemID   string  `json:"iid,omitempty"`
	CartID   string  `json:"cart_id"`
	BID      string  `json:"bid"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartSummary struct {
	Items        []CartItem `json:"items"`
	DiscountCode string     `json:"discount_code,omitempty"`
	Subtotal     float64    `json:"subtotal"`
	Discount     float64    `json:"discount"`
	Total        float64    `json:"total"`
}

type Review struct {
	ReviewID  string    `json:"review_id,omitempty"`
	BID       string    `json:"bid" validate:"required"`
	UID       string    `json:"uid,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"required"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

type Order struct {
	OrderID   string      `json:"order_id,omitempty"`
	UID       string      `json:"uid,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	BID      string  `json:"bid,omitempty"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type User struct {
	UID           string `json:"uid,omitempty"`
	CartID        string `json:"cart_id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email" validate:"required,email"`
	Pass          string `json:"pass,omitempty" validate:"required,min=8"`
	Address       string `json:"address,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Role          string `json:"role,omitempty"`
}

type Event struct {
	EventID   string    `json:"event_id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type TitleCount struct {
	Title string `json:"title"`
	Sold  int    `json:"sold"`
}

type AnalyticsSummary struct {
	Orders  int              `json:"orders"`
	Revenue float64          `json:"revenue"`
	Users   int              `json:"users"`
	Events  map[string]int64 `json:"events"`
	Top     []TitleCount     `json:"top_titles"`
}

type DailyRollup struct {
	Day     time.Time `json:"day"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
}
