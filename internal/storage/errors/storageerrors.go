package storerrros

import "errors"

var (
	ErrBookNotFound    = errors.New("book does not exist")
	ErrEmptyCatalog    = errors.New("empty books list")
	ErrCartNotFound    = errors.New("cart does not exist")
	ErrItemNotFound    = errors.New("book not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOutOfStock      = errors.New("not enough stock")
	ErrInvalidDiscount = errors.New("invalid discount code")
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user does not exist")
	ErrInvalidPassword = errors.New("invalid password")
	ErrReviewNotFound  = errors.New("review does not exist")
	ErrOrderNotFound   = errors.New("order does not exist")
)
