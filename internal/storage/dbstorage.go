package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/server/internal/domain/consts"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return &DBStorage{pool: pool}, nil
}

const bookColumns = `bid, title, author, price, "desc", cover_url, category, rating, release_date, stock`

func scanBook(row pgx.Row) (models.Book, error) {
	var book models.Book
	err := row.Scan(&book.BID, &book.Title, &book.Author, &book.Price, &book.Desc,
		&book.CoverURL, &book.Category, &book.Rating, &book.ReleaseDate, &book.Stock)
	return book, err
}

func (dbs *DBStorage) SaveBook(book models.Book) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var bid string
	err := dbs.pool.QueryRow(ctx, `SELECT bid FROM books WHERE title=$1 AND author=$2`, book.Title, book.Author).Scan(&bid)
	if err == nil {
		log.Debug().Str("bid", bid).Msg("book already exists")
		return bid, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Error().Err(err).Msg("get book failed")
		return "", err
	}

	bid = uuid.New().String()
	_, err = dbs.pool.Exec(ctx,
		`INSERT INTO books (`+bookColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		bid, book.Title, book.Author, book.Price, book.Desc, book.CoverURL,
		book.Category, book.Rating, book.ReleaseDate, book.Stock)
	if err != nil {
		log.Error().Err(err).Msg("save book failed")
		return "", err
	}
	return bid, nil
}

func (dbs *DBStorage) GetBooks() ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	rows, err := dbs.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all books from db")
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	if len(books) == 0 {
		return nil, storerrros.ErrEmptyCatalog
	}
	return books, nil
}

func (dbs *DBStorage) GetBook(bid string) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	book, err := scanBook(dbs.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE bid = $1`, bid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Book{}, storerrros.ErrBookNotFound
		}
		log.Error().Err(err).Msg("failed to scan data from db")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) DeleteBook(bid string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx, "DELETE FROM books WHERE bid = $1", bid)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete book")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Str("bid", bid).Msg("book not found")
		return storerrros.ErrBookNotFound
	}
	log.Info().Str("bid", bid).Msg("book deleted")
	return nil
}

func (dbs *DBStorage) SearchBooks(q models.CatalogQuery) (models.CatalogPage, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var conditions []string
	var args []interface{}
	argPos := 1

	if q.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argPos))
		args = append(args, "%"+q.Title+"%")
		argPos++
	}
	if q.Author != "" {
		conditions = append(conditions, fmt.Sprintf("author ILIKE $%d", argPos))
		args = append(args, "%"+q.Author+"%")
		argPos++
	}
	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, q.Category)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var sortQuery string
	switch q.Sort {
	case "price_asc":
		sortQuery = " ORDER BY price ASC"
	case "price_desc":
		sortQuery = " ORDER BY price DESC"
	default:
		sortQuery = " ORDER BY release_date DESC"
	}

	var total int
	if err := dbs.pool.QueryRow(ctx, `SELECT count(*) FROM books`+whereClause, args...).Scan(&total); err != nil {
		log.Error().Err(err).Msg("failed to count books")
		return models.CatalogPage{}, err
	}
	if total == 0 {
		return models.CatalogPage{}, storerrros.ErrEmptyCatalog
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * consts.CatalogPageSize
	args = append(args, consts.CatalogPageSize, offset)
	fullQuery := fmt.Sprintf(`SELECT `+bookColumns+` FROM books%s%s LIMIT $%d OFFSET $%d`,
		whereClause, sortQuery, argPos, argPos+1)

	rows, err := dbs.pool.Query(ctx, fullQuery, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get books from db")
		return models.CatalogPage{}, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return models.CatalogPage{}, err
		}
		books = append(books, book)
	}
	return models.CatalogPage{Items: books, Total: total, Page: page, PageSize: consts.CatalogPageSize}, nil
}

func (dbs *DBStorage) AddToCart(cartID, bid string, quantity int) error {
	if quantity < 1 {
		return storerrros.ErrInvalidQuantity
	}
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	book, err := dbs.GetBook(bid)
	if err != nil {
		return err
	}
	if quantity > book.Stock {
		return storerrros.ErrOutOfStock
	}

	var itemID string
	var existing int
	err = dbs.pool.QueryRow(ctx, "SELECT item_id, quantity FROM cart_items WHERE cart_id = $1 AND book_id = $2", cartID, bid).Scan(&itemID, &existing)
	if err == nil {
		if existing+quantity > book.Stock {
			return storerrros.ErrOutOfStock
		}
		_, err = dbs.pool.Exec(ctx, "UPDATE cart_items SET quantity = quantity + $1 WHERE item_id = $2", quantity, itemID)
		if err != nil {
			log.Error().Err(err).Msg("failed to merge book quantity in cart")
		}
		return err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Error().Err(err).Msg("failed to check book in cart")
		return err
	}

	_, err = dbs.pool.Exec(ctx,
		"INSERT INTO cart_items (item_id, cart_id, book_id, title, price, quantity) VALUES ($1, $2, $3, $4, $5, $6)",
		uuid.New().String(), cartID, bid, book.Title, book.Price, quantity)
	if err != nil {
		log.Error().Err(err).Msg("failed to add book to cart")
	}
	return err
}

func (dbs *DBStorage) UpdateCartItem(itemID string, quantity int) error {
	if quantity < 1 {
		return storerrros.ErrInvalidQuantity
	}
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx, "UPDATE cart_items SET quantity = $1 WHERE item_id = $2", quantity, itemID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrItemNotFound
	}
	return nil
}

func (dbs *DBStorage) RemoveCartItem(itemID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx, "DELETE FROM cart_items WHERE item_id = $1", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete book from cart: %w", err)
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrItemNotFound
	}
	return nil
}

func (dbs *DBStorage) ClearCart(cartID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	if _, err := dbs.pool.Exec(ctx, "UPDATE carts SET discount_code = '' WHERE cart_id = $1", cartID); err != nil {
		return err
	}
	_, err := dbs.pool.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}

func (dbs *DBStorage) GetCart(cartID string) (models.CartSummary, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var code string
	err := dbs.pool.QueryRow(ctx, "SELECT discount_code FROM carts WHERE cart_id = $1", cartID).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CartSummary{}, storerrros.ErrCartNotFound
		}
		return models.CartSummary{}, err
	}

	rows, err := dbs.pool.Query(ctx,
		"SELECT item_id, cart_id, book_id, title, price, quantity FROM cart_items WHERE cart_id = $1", cartID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")
		return models.CartSummary{}, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ItemID, &item.CartID, &item.BID, &item.Title, &item.Price, &item.Quantity); err != nil {
			return models.CartSummary{}, err
		}
		items = append(items, item)
	}
	return models.Summarize(items, code), nil
}

func (dbs *DBStorage) ApplyDiscount(cartID, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	stored := code
	if code != consts.DiscountCode {
		stored = ""
	}
	res, err := dbs.pool.Exec(ctx, "UPDATE carts SET discount_code = $1 WHERE cart_id = $2", stored, cartID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrCartNotFound
	}
	if stored == "" {
		return storerrros.ErrInvalidDiscount
	}
	return nil
}

func (dbs *DBStorage) SaveReview(review models.Review) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	reviewID := uuid.New().String()
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := dbs.pool.Exec(ctx, `
		INSERT INTO reviews (review_id, book_id, user_id, user_name, rating, comment, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7)
	`, reviewID, review.BID, review.UID, review.UserName, review.Rating, review.Comment, createdAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to save review")
		return "", err
	}
	log.Info().Str("review_id", reviewID).Msg("review saved for moderation")
	return reviewID, nil
}

func (dbs *DBStorage) GetApprovedReviews(bid string) ([]models.Review, error) {
	return dbs.getReviews(bid, true)
}

func (dbs *DBStorage) GetPendingReviews(bid string) ([]models.Review, error) {
	return dbs.getReviews(bid, false)
}

func (dbs *DBStorage) getReviews(bid string, approved bool) ([]models.Review, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx, `
		SELECT review_id, book_id, user_id, user_name, rating, comment, approved, created_at
		FROM reviews WHERE book_id = $1 AND approved = $2
		ORDER BY created_at DESC
	`, bid, approved)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ReviewID, &r.BID, &r.UID, &r.UserName, &r.Rating, &r.Comment, &r.Approved, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func (dbs *DBStorage) ApproveReview(reviewID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx, "UPDATE reviews SET approved = true WHERE review_id = $1", reviewID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrReviewNotFound
	}
	return nil
}

func (dbs *DBStorage) DeleteReview(reviewID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx, "DELETE FROM reviews WHERE review_id = $1", reviewID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrReviewNotFound
	}
	return nil
}

func (dbs *DBStorage) CreateOrder(order models.Order) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	orderID := uuid.New().String()
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	status := order.Status
	if status == "" {
		status = models.OrderPending
	}
	_, err = tx.Exec(ctx,
		"INSERT INTO orders (order_id, user_id, created_at, total, status) VALUES ($1, $2, $3, $4, $5)",
		orderID, order.UID, createdAt, order.Total, string(status))
	if err != nil {
		log.Error().Err(err).Msg("failed to insert order")
		return "", err
	}
	for _, item := range order.Items {
		var bookRef any
		if item.BID != "" {
			bookRef = item.BID
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO order_items (order_id, book_id, title, quantity, price) VALUES ($1, $2, $3, $4, $5)",
			orderID, bookRef, item.Title, item.Quantity, item.Price)
		if err != nil {
			log.Error().Err(err).Msg("failed to insert order item")
			return "", err
		}
		if item.BID == "" {
			continue
		}
		// Stock guard and decrement in one statement; zero rows means either
		// not enough stock or a book deleted since it was carted.
		var res pgconn.CommandTag
		res, err = tx.Exec(ctx,
			"UPDATE books SET stock = stock - $1 WHERE bid = $2 AND stock >= $1",
			item.Quantity, item.BID)
		if err != nil {
			log.Error().Err(err).Msg("failed to decrement stock")
			return "", err
		}
		if res.RowsAffected() == 0 {
			var one int
			if scanErr := tx.QueryRow(ctx, "SELECT 1 FROM books WHERE bid = $1", item.BID).Scan(&one); scanErr == nil {
				err = storerrros.ErrOutOfStock
				return "", err
			}
		}
	}
	log.Info().Str("order_id", orderID).Float64("total", order.Total).Msg("order created")
	return orderID, nil
}

func (dbs *DBStorage) GetOrders(uid string) ([]models.Order, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx, `
		SELECT order_id, user_id, created_at, total, status FROM orders
		WHERE user_id = $1 ORDER BY created_at DESC
	`, uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var status string
		if err := rows.Scan(&o.OrderID, &o.UID, &o.CreatedAt, &o.Total, &status); err != nil {
			return nil, err
		}
		o.Status = models.OrderStatus(status)
		orders = append(orders, o)
	}
	rows.Close()

	for i := range orders {
		items, err := dbs.getOrderItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (dbs *DBStorage) GetOrder(uid, orderID string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var o models.Order
	var status string
	err := dbs.pool.QueryRow(ctx,
		"SELECT order_id, user_id, created_at, total, status FROM orders WHERE order_id = $1 AND user_id = $2",
		orderID, uid).Scan(&o.OrderID, &o.UID, &o.CreatedAt, &o.Total, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, storerrros.ErrOrderNotFound
		}
		return models.Order{}, err
	}
	o.Status = models.OrderStatus(status)
	items, err := dbs.getOrderItems(ctx, o.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (dbs *DBStorage) getOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := dbs.pool.Query(ctx, "SELECT book_id, title, quantity, price FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		var bid *string
		if err := rows.Scan(&bid, &item.Title, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if bid != nil {
			item.BID = *bid
		}
		items = append(items, item)
	}
	return items, nil
}

func (dbs *DBStorage) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx, "UPDATE orders SET status = $1 WHERE order_id = $2", string(status), orderID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrOrderNotFound
	}
	return nil
}

func (dbs *DBStorage) SaveUser(user models.User) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var existing string
	if err := dbs.pool.QueryRow(ctx, "SELECT email FROM users WHERE email = $1", user.Email).Scan(&existing); err == nil {
		return "", storerrros.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Pass), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("save user failed")
		return "", err
	}
	userUUID := uuid.New().String()
	cartUUID := uuid.New().String()

	_, err = dbs.pool.Exec(ctx,
		"INSERT INTO users (uid, cart_id, name, email, pass, address, payment_method, role) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		userUUID, cartUUID, user.Name, user.Email, string(hash), user.Address, user.PaymentMethod, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert user")
		return "", err
	}
	_, err = dbs.pool.Exec(ctx, "INSERT INTO carts (cart_id, user_id) VALUES ($1, $2)", cartUUID, userUUID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create cart")
		return "", err
	}
	return userUUID, nil
}

func (dbs *DBStorage) ValidUser(email, pass string) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var uid, hash string
	err := dbs.pool.QueryRow(ctx, "SELECT uid, pass FROM users WHERE email = $1", email).Scan(&uid, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storerrros.ErrUserNotFound
		}
		log.Error().Err(err).Msg("failed scan db data")
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)); err != nil {
		log.Error().Err(err).Msg("failed compare hash and password")
		return "", storerrros.ErrInvalidPassword
	}
	return uid, nil
}

func (dbs *DBStorage) GetUser(uid string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var user models.User
	err := dbs.pool.QueryRow(ctx,
		"SELECT uid, cart_id, name, email, pass, address, payment_method, role FROM users WHERE uid = $1", uid).
		Scan(&user.UID, &user.CartID, &user.Name, &user.Email, &user.Pass, &user.Address, &user.PaymentMethod, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storerrros.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (dbs *DBStorage) UpdateUser(user models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	res, err := dbs.pool.Exec(ctx,
		"UPDATE users SET name = $1, email = $2, address = $3, payment_method = $4 WHERE uid = $5",
		user.Name, user.Email, user.Address, user.PaymentMethod, user.UID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return storerrros.ErrUserNotFound
	}
	return nil
}

func (dbs *DBStorage) SaveEvent(event models.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := dbs.pool.Exec(ctx,
		"INSERT INTO events (event_id, name, label, created_at) VALUES ($1, $2, $3, $4)",
		uuid.New().String(), event.Name, event.Label, createdAt)
	return err
}

func (dbs *DBStorage) GetAnalyticsSummary() (models.AnalyticsSummary, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	summary := models.AnalyticsSummary{Events: make(map[string]int64)}
	err := dbs.pool.QueryRow(ctx,
		"SELECT count(*), coalesce(sum(total), 0) FROM orders").Scan(&summary.Orders, &summary.Revenue)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate orders")
		return models.AnalyticsSummary{}, err
	}
	if err := dbs.pool.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&summary.Users); err != nil {
		return models.AnalyticsSummary{}, err
	}

	rows, err := dbs.pool.Query(ctx, "SELECT name, count(*) FROM events GROUP BY name")
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			rows.Close()
			return models.AnalyticsSummary{}, err
		}
		summary.Events[name] = n
	}
	rows.Close()

	rows, err = dbs.pool.Query(ctx, `
		SELECT title, sum(quantity) AS sold FROM order_items
		GROUP BY title ORDER BY sold DESC, title LIMIT 10
	`)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var tc models.TitleCount
		if err := rows.Scan(&tc.Title, &tc.Sold); err != nil {
			return models.AnalyticsSummary{}, err
		}
		summary.Top = append(summary.Top, tc)
	}
	return summary, nil
}

func (dbs *DBStorage) RollupDaily(day time.Time) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	_, err := dbs.pool.Exec(ctx, `
		INSERT INTO analytics_daily (day, orders, revenue)
		SELECT $1::date, count(*), coalesce(sum(total), 0) FROM orders
		WHERE created_at::date = $1::date
		ON CONFLICT (day) DO UPDATE SET orders = EXCLUDED.orders, revenue = EXCLUDED.revenue
	`, day.Format("2006-01-02"))
	if err != nil {
		log.Error().Err(err).Msg("daily rollup failed")
		return err
	}
	log.Info().Str("day", day.Format("2006-01-02")).Msg("daily rollup written")
	return nil
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations apply")
	return nil
}
