package models

import (
	"fmt"
	"math"

	"github.com/bookhaven/server/internal/domain/consts"
)

// Summarize computes the cart totals the storefront shows: subtotal over all
// line items, the flat discount for the applied code (zero for anything but
// the supported code), and the resulting total.
func Summarize(items []CartItem, code string) CartSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	var discount float64
	if code == consts.DiscountCode {
		discount = round2(subtotal * consts.DiscountRate)
	}
	return CartSummary{
		Items:        items,
		DiscountCode: code,
		Subtotal:     round2(subtotal),
		Discount:     discount,
		Total:        round2(subtotal - discount),
	}
}

// AverageRating renders the mean rating of approved reviews to one decimal
// place, or "N/A" when there are none. Unapproved reviews never count.
func AverageRating(reviews []Review) string {
	var sum, n int
	for _, r := range reviews {
		if !r.Approved {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(n))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
