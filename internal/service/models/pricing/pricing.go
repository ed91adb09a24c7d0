package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/corray333/order-capture/internal/service/models/orderitem"
)

// VATRate is the flat VAT multiplier applied to the subtotal.
const VATRate = 0.21

var ErrNoValidItems = errors.New("no valid items")

// Quote holds the priced result for a submission: the surviving items
// with their line totals, and the rounded totals.
type Quote struct {
	Items        []orderitem.CleanItem
	Subtotal     float64
	TotalWithVAT float64
}

// Compute filters the submitted items and derives the totals.
// Items with a non-positive quantity or a negative price are dropped
// silently. Line totals are rounded to cents; the subtotal and the
// VAT total are each rounded exactly once, from the unrounded
// accumulation, so the rounding order of the reference totals is
// preserved.
func Compute(items []orderitem.OrderItem) (*Quote, error) {
	clean := make([]orderitem.CleanItem, 0, len(items))
	sum := 0.0

	for _, item := range items {
		if item.Quantity <= 0 || item.Price < 0 {
			continue
		}

		lineTotal := round2(item.Price * float64(item.Quantity))
		sum += lineTotal

		clean = append(clean, orderitem.CleanItem{
			Name:      item.Name,
			Price:     round2(item.Price),
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
	}

	if len(clean) == 0 {
		return nil, ErrNoValidItems
	}

	return &Quote{
		Items:        clean,
		Subtotal:     round2(sum),
		TotalWithVAT: round2(sum * (1 + VATRate)),
	}, nil
}

// FormattedTotal renders the human-readable total line shown to the
// customer after a successful submission.
func (q *Quote) FormattedTotal() string {
	return fmt.Sprintf("Total with VAT (21%%): € %.2f", q.TotalWithVAT)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
