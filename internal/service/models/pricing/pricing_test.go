package pricing

import (
	"errors"
	"testing"

	"github.com/corray333/order-capture/internal/service/models/orderitem"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		items        []orderitem.OrderItem
		wantErr      error
		wantItems    int
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name: "single valid item",
			items: []orderitem.OrderItem{
				{Name: "Widget", Price: 10, Quantity: 3},
			},
			wantItems:    1,
			wantSubtotal: 30,
			wantTotal:    36.3,
		},
		{
			name: "invalid items are dropped",
			items: []orderitem.OrderItem{
				{Name: "Widget", Price: 10, Quantity: 3},
				{Name: "Bad", Price: 5, Quantity: 0},
				{Name: "Worse", Price: -1, Quantity: 2},
			},
			wantItems:    1,
			wantSubtotal: 30,
			wantTotal:    36.3,
		},
		{
			name: "multiple valid items accumulate",
			items: []orderitem.OrderItem{
				{Name: "Widget", Price: 10, Quantity: 1},
				{Name: "Gadget", Price: 20, Quantity: 2},
			},
			wantItems:    2,
			wantSubtotal: 50,
			wantTotal:    60.5,
		},
		{
			name: "zero price is valid",
			items: []orderitem.OrderItem{
				{Name: "Freebie", Price: 0, Quantity: 1},
			},
			wantItems:    1,
			wantSubtotal: 0,
			wantTotal:    0,
		},
		{
			name: "all items invalid",
			items: []orderitem.OrderItem{
				{Name: "Bad", Price: 5, Quantity: 0},
				{Name: "Worse", Price: -1, Quantity: 1},
			},
			wantErr: ErrNoValidItems,
		},
		{
			name:    "no items",
			items:   []orderitem.OrderItem{},
			wantErr: ErrNoValidItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Compute(tt.items)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Compute() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Compute() unexpected error = %v", err)
			}

			if len(quote.Items) != tt.wantItems {
				t.Errorf("Compute() items count = %d, want %d", len(quote.Items), tt.wantItems)
			}
			if quote.Subtotal != tt.wantSubtotal {
				t.Errorf("Compute() subtotal = %v, want %v", quote.Subtotal, tt.wantSubtotal)
			}
			if quote.TotalWithVAT != tt.wantTotal {
				t.Errorf("Compute() total = %v, want %v", quote.TotalWithVAT, tt.wantTotal)
			}
		})
	}
}

func TestCompute_LineTotals(t *testing.T) {
	quote, err := Compute([]orderitem.OrderItem{
		{Name: "Widget", Price: 10, Quantity: 3},
		{Name: "Gizmo", Price: 0.1, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}

	if quote.Items[0].LineTotal != 30 {
		t.Errorf("line total = %v, want 30", quote.Items[0].LineTotal)
	}
	if quote.Items[1].LineTotal != 0.3 {
		t.Errorf("line total = %v, want 0.3", quote.Items[1].LineTotal)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := []orderitem.OrderItem{
		{Name: "Widget", Price: 10.99, Quantity: 7},
		{Name: "Gadget", Price: 24.5, Quantity: 2},
	}

	first, err := Compute(items)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	second, err := Compute(items)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}

	if first.Subtotal != second.Subtotal || first.TotalWithVAT != second.TotalWithVAT {
		t.Errorf("Compute() not idempotent: %v/%v vs %v/%v",
			first.Subtotal, first.TotalWithVAT, second.Subtotal, second.TotalWithVAT)
	}
}

func TestQuote_FormattedTotal(t *testing.T) {
	quote, err := Compute([]orderitem.OrderItem{
		{Name: "Widget", Price: 10, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}

	want := "Total with VAT (21%): € 36.30"
	if got := quote.FormattedTotal(); got != want {
		t.Errorf("FormattedTotal() = %q, want %q", got, want)
	}
}
