package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/server/internal/domain/models"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

func newSeeded(t *testing.T) *MemStorage {
	t.Helper()
	ms := New()
	ms.Seed()
	return ms
}

func registerUser(t *testing.T, ms *MemStorage, email string) models.User {
	t.Helper()
	uid, err := ms.SaveUser(models.User{Name: "Test Reader", Email: email, Pass: "password123", Role: "user"})
	require.NoError(t, err)
	user, err := ms.GetUser(uid)
	require.NoError(t, err)
	return user
}

func bookByTitle(t *testing.T, ms *MemStorage, title string) models.Book {
	t.Helper()
	books, err := ms.GetBooks()
	require.NoError(t, err)
	for _, b := range books {
		if b.Title == title {
			return b
		}
	}
	t.Fatalf("book %q not in catalog", title)
	return models.Book{}
}

func TestSearchBooks(t *testing.T) {
	ms := newSeeded(t)

	t.Run("author substring is case-insensitive", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{Author: "orwell"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "1984", page.Items[0].Title)
	})

	t.Run("title substring", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{Title: "gatsby"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "F. Scott Fitzgerald", page.Items[0].Author)
	})

	t.Run("category match is exact", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{Category: "Dystopian"})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)

		_, err = ms.SearchBooks(models.CatalogQuery{Category: "dystopian"})
		assert.ErrorIs(t, err, storerrros.ErrEmptyCatalog)
	})

	t.Run("price sort", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{Sort: "price_asc"})
		require.NoError(t, err)
		require.Len(t, page.Items, 4)
		assert.Equal(t, "1984", page.Items[0].Title)

		page, err = ms.SearchBooks(models.CatalogQuery{Sort: "price_desc"})
		require.NoError(t, err)
		assert.Equal(t, "To Kill a Mockingbird", page.Items[0].Title)
	})

	t.Run("default sort is newest release first", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{})
		require.NoError(t, err)
		require.Len(t, page.Items, 4)
		assert.Equal(t, "To Kill a Mockingbird", page.Items[0].Title)
	})

	t.Run("no matches is an empty-catalog error", func(t *testing.T) {
		_, err := ms.SearchBooks(models.CatalogQuery{Title: "moby dick"})
		assert.ErrorIs(t, err, storerrros.ErrEmptyCatalog)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		page, err := ms.SearchBooks(models.CatalogQuery{Page: 3})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 4, page.Total)
	})
}

func TestCartOperations(t *testing.T) {
	ms := newSeeded(t)
	user := registerUser(t, ms, "cart@example.com")
	book := bookByTitle(t, ms, "1984")

	t.Run("add then remove restores the prior cart", func(t *testing.T) {
		other := bookByTitle(t, ms, "Brave New World")
		require.NoError(t, ms.AddToCart(user.CartID, other.BID, 1))
		before, err := ms.GetCart(user.CartID)
		require.NoError(t, err)

		require.NoError(t, ms.AddToCart(user.CartID, book.BID, 2))
		after, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		require.Len(t, after.Items, 2)

		var itemID string
		for _, item := range after.Items {
			if item.BID == book.BID {
				itemID = item.ItemID
			}
		}
		require.NoError(t, ms.RemoveCartItem(itemID))

		restored, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.ElementsMatch(t, before.Items, restored.Items)
	})

	t.Run("adding the same book merges quantities", func(t *testing.T) {
		require.NoError(t, ms.AddToCart(user.CartID, book.BID, 1))
		require.NoError(t, ms.AddToCart(user.CartID, book.BID, 2))

		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		for _, item := range summary.Items {
			if item.BID == book.BID {
				assert.Equal(t, 3, item.Quantity)
			}
		}
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		assert.ErrorIs(t, ms.AddToCart(user.CartID, book.BID, 0), storerrros.ErrInvalidQuantity)

		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		require.NotEmpty(t, summary.Items)
		assert.ErrorIs(t, ms.UpdateCartItem(summary.Items[0].ItemID, 0), storerrros.ErrInvalidQuantity)
	})

	t.Run("update sets the quantity", func(t *testing.T) {
		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		require.NotEmpty(t, summary.Items)
		itemID := summary.Items[0].ItemID

		require.NoError(t, ms.UpdateCartItem(itemID, 5))
		summary, err = ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.Equal(t, 5, summary.Items[0].Quantity)
	})

	t.Run("clear always yields an empty cart", func(t *testing.T) {
		require.NoError(t, ms.ClearCart(user.CartID))
		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.Empty(t, summary.Items)

		require.NoError(t, ms.ClearCart(user.CartID))
		summary, err = ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.Empty(t, summary.Items)
	})

	t.Run("unknown book cannot be added", func(t *testing.T) {
		assert.ErrorIs(t, ms.AddToCart(user.CartID, "no-such-book", 1), storerrros.ErrBookNotFound)
	})
}

func TestDiscounts(t *testing.T) {
	ms := newSeeded(t)
	user := registerUser(t, ms, "discount@example.com")
	book := bookByTitle(t, ms, "The Great Gatsby")
	require.NoError(t, ms.AddToCart(user.CartID, book.BID, 2))

	t.Run("SAVE10 applies ten percent", func(t *testing.T) {
		require.NoError(t, ms.ApplyDiscount(user.CartID, "SAVE10"))
		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.InDelta(t, summary.Subtotal*0.9, summary.Total, 0.01)
	})

	t.Run("bad code errors and wipes the discount", func(t *testing.T) {
		err := ms.ApplyDiscount(user.CartID, "SAVE99")
		assert.ErrorIs(t, err, storerrros.ErrInvalidDiscount)

		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.Zero(t, summary.Discount)
		assert.Equal(t, summary.Subtotal, summary.Total)
	})

	t.Run("clearing the cart drops the code", func(t *testing.T) {
		require.NoError(t, ms.ApplyDiscount(user.CartID, "SAVE10"))
		require.NoError(t, ms.ClearCart(user.CartID))
		summary, err := ms.GetCart(user.CartID)
		require.NoError(t, err)
		assert.Empty(t, summary.DiscountCode)
	})
}

func TestReviews(t *testing.T) {
	ms := newSeeded(t)
	book := bookByTitle(t, ms, "1984")

	rid, err := ms.SaveReview(models.Review{BID: book.BID, UID: "u1", Rating: 5, Comment: "great"})
	require.NoError(t, err)

	t.Run("submissions start unapproved", func(t *testing.T) {
		approved, err := ms.GetApprovedReviews(book.BID)
		require.NoError(t, err)
		assert.Empty(t, approved)

		pending, err := ms.GetPendingReviews(book.BID)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("approval is the only path to visibility", func(t *testing.T) {
		require.NoError(t, ms.ApproveReview(rid))
		approved, err := ms.GetApprovedReviews(book.BID)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.True(t, approved[0].Approved)
	})

	t.Run("average over approved set", func(t *testing.T) {
		rid2, err := ms.SaveReview(models.Review{BID: book.BID, UID: "u2", Rating: 4, Comment: "good"})
		require.NoError(t, err)
		require.NoError(t, ms.ApproveReview(rid2))

		approved, err := ms.GetApprovedReviews(book.BID)
		require.NoError(t, err)
		assert.Equal(t, "4.5", models.AverageRating(approved))
	})

	t.Run("delete removes the review", func(t *testing.T) {
		require.NoError(t, ms.DeleteReview(rid))
		assert.ErrorIs(t, ms.DeleteReview(rid), storerrros.ErrReviewNotFound)
	})
}

func TestOrders(t *testing.T) {
	ms := New()

	orderID, err := ms.CreateOrder(models.Order{
		UID:   "u1",
		Total: 27.66,
		Items: []models.OrderItem{{Title: "1984", Quantity: 2, Price: 9.99}},
	})
	require.NoError(t, err)

	t.Run("new orders are pending", func(t *testing.T) {
		order, err := ms.GetOrder("u1", orderID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderPending, order.Status)
	})

	t.Run("foreign orders look missing", func(t *testing.T) {
		_, err := ms.GetOrder("someone-else", orderID)
		assert.ErrorIs(t, err, storerrros.ErrOrderNotFound)
	})

	t.Run("status updates", func(t *testing.T) {
		require.NoError(t, ms.UpdateOrderStatus(orderID, models.OrderShipped))
		order, err := ms.GetOrder("u1", orderID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderShipped, order.Status)
	})
}

func TestUsers(t *testing.T) {
	ms := New()
	user := registerUser(t, ms, "reader@example.com")

	t.Run("registration hashes the password and creates a cart", func(t *testing.T) {
		assert.NotEqual(t, "password123", user.Pass)
		assert.NotEmpty(t, user.CartID)
		_, err := ms.GetCart(user.CartID)
		assert.NoError(t, err)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := ms.SaveUser(models.User{Email: "reader@example.com", Pass: "password123"})
		assert.ErrorIs(t, err, storerrros.ErrUserExists)
	})

	t.Run("login checks the password", func(t *testing.T) {
		uid, err := ms.ValidUser("reader@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.UID, uid)

		_, err = ms.ValidUser("reader@example.com", "wrong-password")
		assert.ErrorIs(t, err, storerrros.ErrInvalidPassword)

		_, err = ms.ValidUser("nobody@example.com", "password123")
		assert.ErrorIs(t, err, storerrros.ErrUserNotFound)
	})

	t.Run("profile update keeps the hash", func(t *testing.T) {
		require.NoError(t, ms.UpdateUser(models.User{
			UID:           user.UID,
			Name:          "Renamed Reader",
			Email:         "reader@example.com",
			Address:       "1 Library Way",
			PaymentMethod: "visa",
		}))
		updated, err := ms.GetUser(user.UID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Reader", updated.Name)
		assert.Equal(t, user.Pass, updated.Pass)
	})
}

func TestStock(t *testing.T) {
	ms := newSeeded(t)
	user := registerUser(t, ms, "stock@example.com")
	book := bookByTitle(t, ms, "Brave New World")
	require.Equal(t, 12, book.Stock)

	t.Run("cart cannot exceed stock", func(t *testing.T) {
		assert.ErrorIs(t, ms.AddToCart(user.CartID, book.BID, 1000), storerrros.ErrOutOfStock)

		require.NoError(t, ms.AddToCart(user.CartID, book.BID, 10))
		assert.ErrorIs(t, ms.AddToCart(user.CartID, book.BID, 3), storerrros.ErrOutOfStock)
		require.NoError(t, ms.AddToCart(user.CartID, book.BID, 2))
	})

	t.Run("orders decrement stock", func(t *testing.T) {
		_, err := ms.CreateOrder(models.Order{
			UID:   user.UID,
			Total: 10 * book.Price,
			Items: []models.OrderItem{{BID: book.BID, Title: book.Title, Quantity: 10, Price: book.Price}},
		})
		require.NoError(t, err)

		got, err := ms.GetBook(book.BID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Stock)
	})

	t.Run("order beyond stock is rejected and stock stands", func(t *testing.T) {
		_, err := ms.CreateOrder(models.Order{
			UID:   user.UID,
			Items: []models.OrderItem{{BID: book.BID, Title: book.Title, Quantity: 1000, Price: book.Price}},
		})
		assert.ErrorIs(t, err, storerrros.ErrOutOfStock)

		got, err := ms.GetBook(book.BID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Stock)
	})
}

func TestAnalyticsSummary(t *testing.T) {
	ms := New()
	_, err := ms.CreateOrder(models.Order{UID: "u1", Total: 20, Items: []models.OrderItem{{Title: "1984", Quantity: 2, Price: 10}}})
	require.NoError(t, err)
	_, err = ms.CreateOrder(models.Order{UID: "u2", Total: 10, Items: []models.OrderItem{{Title: "Brave New World", Quantity: 1, Price: 10}}})
	require.NoError(t, err)
	require.NoError(t, ms.SaveEvent(models.Event{Name: "page_view"}))
	require.NoError(t, ms.SaveEvent(models.Event{Name: "page_view"}))
	require.NoError(t, ms.SaveEvent(models.Event{Name: "add_to_cart"}))

	summary, err := ms.GetAnalyticsSummary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Orders)
	assert.InDelta(t, 30, summary.Revenue, 0.001)
	assert.Equal(t, int64(2), summary.Events["page_view"])
	assert.Equal(t, int64(1), summary.Events["add_to_cart"])
	require.NotEmpty(t, summary.Top)
	assert.Equal(t, "1984", summary.Top[0].Title)
}

func TestRollupDaily(t *testing.T) {
	ms := New()
	_, err := ms.CreateOrder(models.Order{UID: "u1", Total: 15})
	require.NoError(t, err)
	_, err = ms.CreateOrder(models.Order{UID: "u2", Total: 5})
	require.NoError(t, err)

	day := time.Now()
	require.NoError(t, ms.RollupDaily(day))

	rollup, ok := ms.rollups[day.Format("2006-01-02")]
	require.True(t, ok)
	assert.Equal(t, 2, rollup.Orders)
	assert.InDelta(t, 20, rollup.Revenue, 0.001)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	ms := newSeeded(t)
	user := registerUser(t, ms, "persisted@example.com")
	book := bookByTitle(t, ms, "1984")
	require.NoError(t, ms.AddToCart(user.CartID, book.BID, 2))
	require.NoError(t, ms.SaveSnapshot(path))

	restored := New()
	restored.Seed()
	require.NoError(t, restored.LoadSnapshot(path))

	got, err := restored.GetUser(user.UID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	summary, err := restored.GetCart(user.CartID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)

	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, New().LoadSnapshot(filepath.Join(t.TempDir(), "absent.json")))
	})

	t.Run("empty path disables snapshots", func(t *testing.T) {
		assert.NoError(t, ms.SaveSnapshot(""))
	})
}

func TestDeleteBook(t *testing.T) {
	ms := newSeeded(t)
	book := bookByTitle(t, ms, "Brave New World")

	require.NoError(t, ms.DeleteBook(book.BID))
	_, err := ms.GetBook(book.BID)
	assert.True(t, errors.Is(err, storerrros.ErrBookNotFound))
	assert.ErrorIs(t, ms.DeleteBook(book.BID), storerrros.ErrBookNotFound)
}
