package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/server/internal/domain/consts"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

// MemStorage backs the server when no database is reachable. It keeps the
// same semantics as DBStorage over plain maps.
type MemStorage struct {
	mu        sync.RWMutex
	books     map[string]models.Book
	carts     map[string]models.Cart
	cartItems map[string][]models.CartItem
	users     map[string]models.User
	reviews   map[string]models.Review
	orders    map[string]models.Order
	events    []models.Event
	rollups   map[string]models.DailyRollup
}

func New() *MemStorage {
	return &MemStorage{
		books:     make(map[string]models.Book),
		carts:     make(map[string]models.Cart),
		cartItems: make(map[string][]models.CartItem),
		users:     make(map[string]models.User),
		reviews:   make(map[string]models.Review),
		orders:    make(map[string]models.Order),
		rollups:   make(map[string]models.DailyRollup),
	}
}

func (ms *MemStorage) SaveBook(book models.Book) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, b := range ms.books {
		if b.Title == book.Title && b.Author == book.Author {
			return b.BID, nil
		}
	}
	book.BID = uuid.New().String()
	ms.books[book.BID] = book
	return book.BID, nil
}

func (ms *MemStorage) GetBooks() ([]models.Book, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var books []models.Book
	for _, book := range ms.books {
		books = append(books, book)
	}
	if len(books) == 0 {
		return nil, storerrros.ErrEmptyCatalog
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

func (ms *MemStorage) GetBook(bid string) (models.Book, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	book, ok := ms.books[bid]
	if !ok {
		return models.Book{}, storerrros.ErrBookNotFound
	}
	return book, nil
}

func (ms *MemStorage) DeleteBook(bid string) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.books[bid]; !ok {
		log.Warn().Str("bid", bid).Msg("book not found")
		return storerrros.ErrBookNotFound
	}
	delete(ms.books, bid)
	log.Info().Str("bid", bid).Msg("book deleted")
	return nil
}

// SearchBooks runs the catalog pipeline: title substring, author substring,
// exact category, sort, fixed-size page.
func (ms *MemStorage) SearchBooks(q models.CatalogQuery) (models.CatalogPage, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	title := strings.ToLower(q.Title)
	author := strings.ToLower(q.Author)

	var matched []models.Book
	for _, book := range ms.books {
		if title != "" && !strings.Contains(strings.ToLower(book.Title), title) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), author) {
			continue
		}
		if q.Category != "" && book.Category != q.Category {
			continue
		}
		matched = append(matched, book)
	}
	if len(matched) == 0 {
		return models.CatalogPage{}, storerrros.ErrEmptyCatalog
	}

	sort.Slice(matched, func(i, j int) bool {
		switch q.Sort {
		case "price_asc":
			return matched[i].Price < matched[j].Price
		case "price_desc":
			return matched[i].Price > matched[j].Price
		default:
			return matched[i].ReleaseDate.After(matched[j].ReleaseDate)
		}
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * consts.CatalogPageSize
	if start >= len(matched) {
		return models.CatalogPage{Total: len(matched), Page: page, PageSize: consts.CatalogPageSize}, nil
	}
	end := start + consts.CatalogPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return models.CatalogPage{
		Items:    matched[start:end],
		Total:    len(matched),
		Page:     page,
		PageSize: consts.CatalogPageSize,
	}, nil
}

func (ms *MemStorage) AddToCart(cartID, bid string, quantity int) error {
	if quantity < 1 {
		return storerrros.ErrInvalidQuantity
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	book, ok := ms.books[bid]
	if !ok {
		return storerrros.ErrBookNotFound
	}
	if quantity > book.Stock {
		return storerrros.ErrOutOfStock
	}
	if _, ok := ms.carts[cartID]; !ok {
		ms.carts[cartID] = models.Cart{CartID: cartID}
	}
	// Same book again merges into the existing line item.
	for i, item := range ms.cartItems[cartID] {
		if item.BID == bid {
			if item.Quantity+quantity > book.Stock {
				return storerrros.ErrOutOfStock
			}
			ms.cartItems[cartID][i].Quantity += quantity
			return nil
		}
	}
	ms.cartItems[cartID] = append(ms.cartItems[cartID], models.CartItem{
		ItemID:   uuid.New().String(),
		CartID:   cartID,
		BID:      bid,
		Title:    book.Title,
		Price:    book.Price,
		Quantity: quantity,
	})
	return nil
}

func (ms *MemStorage) UpdateCartItem(itemID string, quantity int) error {
	if quantity < 1 {
		return storerrros.ErrInvalidQuantity
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for cartID, items := range ms.cartItems {
		for i, item := range items {
			if item.ItemID == itemID {
				ms.cartItems[cartID][i].Quantity = quantity
				return nil
			}
		}
	}
	return storerrros.ErrItemNotFound
}

func (ms *MemStorage) RemoveCartItem(itemID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for cartID, items := range ms.cartItems {
		for i, item := range items {
			if item.ItemID == itemID {
				ms.cartItems[cartID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
	}
	return storerrros.ErrItemNotFound
}

func (ms *MemStorage) ClearCart(cartID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cart, ok := ms.carts[cartID]
	if !ok {
		return storerrros.ErrCartNotFound
	}
	cart.DiscountCode = ""
	ms.carts[cartID] = cart
	delete(ms.cartItems, cartID)
	return nil
}

func (ms *MemStorage) GetCart(cartID string) (models.CartSummary, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	cart, ok := ms.carts[cartID]
	if !ok {
		return models.CartSummary{}, storerrros.ErrCartNotFound
	}
	items := make([]models.CartItem, len(ms.cartItems[cartID]))
	copy(items, ms.cartItems[cartID])
	return models.Summarize(items, cart.DiscountCode), nil
}

func (ms *MemStorage) ApplyDiscount(cartID, code string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cart, ok := ms.carts[cartID]
	if !ok {
		return storerrros.ErrCartNotFound
	}
	if code != consts.DiscountCode {
		// Bad codes wipe any discount already applied.
		cart.DiscountCode = ""
		ms.carts[cartID] = cart
		return storerrros.ErrInvalidDiscount
	}
	cart.DiscountCode = code
	ms.carts[cartID] = cart
	return nil
}

func (ms *MemStorage) SaveReview(review models.Review) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	review.ReviewID = uuid.New().String()
	review.Approved = false
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	ms.reviews[review.ReviewID] = review
	return review.ReviewID, nil
}

func (ms *MemStorage) GetApprovedReviews(bid string) ([]models.Review, error) {
	return ms.reviewsFor(bid, true), nil
}

func (ms *MemStorage) GetPendingReviews(bid string) ([]models.Review, error) {
	return ms.reviewsFor(bid, false), nil
}

func (ms *MemStorage) reviewsFor(bid string, approved bool) []models.Review {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []models.Review
	for _, r := range ms.reviews {
		if r.BID == bid && r.Approved == approved {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (ms *MemStorage) ApproveReview(reviewID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	review, ok := ms.reviews[reviewID]
	if !ok {
		return storerrros.ErrReviewNotFound
	}
	review.Approved = true
	ms.reviews[reviewID] = review
	return nil
}

func (ms *MemStorage) DeleteReview(reviewID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.reviews[reviewID]; !ok {
		return storerrros.ErrReviewNotFound
	}
	delete(ms.reviews, reviewID)
	return nil
}

func (ms *MemStorage) CreateOrder(order models.Order) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	// Check stock across the whole order before touching anything, so a
	// rejected order never leaves a partial decrement. Line items whose book
	// has since been deleted are kept as a plain snapshot.
	for _, item := range order.Items {
		if item.BID == "" {
			continue
		}
		if book, ok := ms.books[item.BID]; ok && book.Stock < item.Quantity {
			return "", storerrros.ErrOutOfStock
		}
	}
	for _, item := range order.Items {
		if item.BID == "" {
			continue
		}
		if book, ok := ms.books[item.BID]; ok {
			book.Stock -= item.Quantity
			ms.books[item.BID] = book
		}
	}
	order.OrderID = uuid.New().String()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	ms.orders[order.OrderID] = order
	return order.OrderID, nil
}

func (ms *MemStorage) GetOrders(uid string) ([]models.Order, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []models.Order
	for _, o := range ms.orders {
		if o.UID == uid {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (ms *MemStorage) GetOrder(uid, orderID string) (models.Order, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	order, ok := ms.orders[orderID]
	if !ok || order.UID != uid {
		return models.Order{}, storerrros.ErrOrderNotFound
	}
	return order, nil
}

func (ms *MemStorage) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	order, ok := ms.orders[orderID]
	if !ok {
		return storerrros.ErrOrderNotFound
	}
	order.Status = status
	ms.orders[orderID] = order
	return nil
}

func (ms *MemStorage) SaveUser(user models.User) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, u := range ms.users {
		if u.Email == user.Email {
			return "", storerrros.ErrUserExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Pass), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.UID = uuid.New().String()
	user.Pass = string(hash)
	cartID := uuid.New().String()
	user.CartID = cartID
	ms.carts[cartID] = models.Cart{CartID: cartID, UID: user.UID}
	ms.users[user.UID] = user
	return user.UID, nil
}

func (ms *MemStorage) ValidUser(email, pass string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for _, u := range ms.users {
		if u.Email == email {
			if err := bcrypt.CompareHashAndPassword([]byte(u.Pass), []byte(pass)); err != nil {
				return "", storerrros.ErrInvalidPassword
			}
			return u.UID, nil
		}
	}
	return "", storerrros.ErrUserNotFound
}

func (ms *MemStorage) GetUser(uid string) (models.User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	user, ok := ms.users[uid]
	if !ok {
		return models.User{}, storerrros.ErrUserNotFound
	}
	return user, nil
}

func (ms *MemStorage) UpdateUser(user models.User) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stored, ok := ms.users[user.UID]
	if !ok {
		return storerrros.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Address = user.Address
	stored.PaymentMethod = user.PaymentMethod
	ms.users[user.UID] = stored
	return nil
}

func (ms *MemStorage) SaveEvent(event models.Event) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	event.EventID = uuid.New().String()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	ms.events = append(ms.events, event)
	return nil
}

func (ms *MemStorage) GetAnalyticsSummary() (models.AnalyticsSummary, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	summary := models.AnalyticsSummary{Events: make(map[string]int64)}
	sold := make(map[string]int)
	for _, o := range ms.orders {
		summary.Orders++
		summary.Revenue += o.Total
		for _, item := range o.Items {
			sold[item.Title] += item.Quantity
		}
	}
	summary.Users = len(ms.users)
	for _, e := range ms.events {
		summary.Events[e.Name]++
	}
	for title, n := range sold {
		summary.Top = append(summary.Top, models.TitleCount{Title: title, Sold: n})
	}
	sort.Slice(summary.Top, func(i, j int) bool {
		if summary.Top[i].Sold != summary.Top[j].Sold {
			return summary.Top[i].Sold > summary.Top[j].Sold
		}
		return summary.Top[i].Title < summary.Top[j].Title
	})
	return summary, nil
}

func (ms *MemStorage) RollupDaily(day time.Time) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	key := day.Format("2006-01-02")
	rollup := models.DailyRollup{Day: day}
	for _, o := range ms.orders {
		if o.CreatedAt.Format("2006-01-02") == key {
			rollup.Orders++
			rollup.Revenue += o.Total
		}
	}
	ms.rollups[key] = rollup
	return nil
}
