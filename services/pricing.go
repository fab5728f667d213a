package services

import (
	"math"

	"github.com/dineshnaiduavula/moviesample/entity"
)

// Catalog is the read-only availability/price view checkout validates cart
// lines against. repository.CatalogSnapshot satisfies it.
type Catalog interface {
	IsEnabled(itemID uint) bool
	CurrentPrice(itemID uint) (int64, bool)
}

// FeePolicy holds the checkout fee rates. The active policy is a 4%
// handling charge; SGST/CGST (2.5% each historically) are kept as
// configuration but default to zero.
type FeePolicy struct {
	HandlingRate float64
	SGSTRate     float64
	CGSTRate     float64
}

func DefaultFeePolicy() FeePolicy {
	return FeePolicy{HandlingRate: 0.04}
}

// Breakdown is derived from a cart snapshot, never stored on its own.
// All amounts are integer paise.
type Breakdown struct {
	Subtotal       int64 `json:"subtotal"`
	HandlingCharge int64 `json:"handlingCharge"`
	SGST           int64 `json:"sgst"`
	CGST           int64 `json:"cgst"`
	Total          int64 `json:"total"`
}

// ComputeBreakdown prices a cart against one catalog snapshot. Lines whose
// item is disabled or gone are excluded from the subtotal and returned so
// the caller can purge them and warn the patron. Pure: same cart + same
// snapshot always yields the same breakdown, which is what lets the server
// re-derive the exact amount that was sent to the gateway.
func ComputeBreakdown(lines []entity.CartLine, cat Catalog, p FeePolicy) (Breakdown, []entity.CartLine) {
	var removed []entity.CartLine
	var subtotal int64
	for _, ln := range lines {
		if !cat.IsEnabled(ln.MenuItemID) {
			removed = append(removed, ln)
			continue
		}
		subtotal += ln.UnitPrice * int64(ln.Qty)
	}

	b := Breakdown{Subtotal: subtotal}
	b.HandlingCharge = roundFee(subtotal, p.HandlingRate)
	b.SGST = roundFee(subtotal, p.SGSTRate)
	b.CGST = roundFee(subtotal, p.CGSTRate)
	b.Total = subtotal + b.HandlingCharge + b.SGST + b.CGST
	return b, removed
}

// roundFee rounds to the nearest paisa.
func roundFee(subtotal int64, rate float64) int64 {
	if rate == 0 {
		return 0
	}
	return int64(math.Round(float64(subtotal) * rate))
}
