package consts

import "time"

const (
	DBCtxTimeout = 5 * time.Second

	// CatalogPageSize is the fixed page size of the catalog search endpoint.
	CatalogPageSize = 8

	// DiscountCode is the only code the storefront honors; everything else
	// resets the discount and reports an error.
	DiscountCode = "SAVE10"
	DiscountRate = 0.10

	CatalogCacheTTL = 5 * time.Minute
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
