package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/corray333/order-capture/internal/service/models/orderitem"
)

func TestSubmission_Normalize(t *testing.T) {
	sub := Submission{
		OrderCode: "  A1  ",
		FullName:  " Jane Doe ",
		Email:     " jane @x.com ",
		Address:   " Main St 1 ",
		Phone:     " 555 ",
		Items: []orderitem.OrderItem{
			{Name: "  Widget  ", Price: 10, Quantity: 1},
			{Name: "", Price: 5, Quantity: 1},
			{Name: strings.Repeat("x", 250), Price: 1, Quantity: 1},
		},
	}

	sub.Normalize()

	if sub.OrderCode != "A1" {
		t.Errorf("OrderCode = %q, want %q", sub.OrderCode, "A1")
	}
	if sub.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, want %q", sub.FullName, "Jane Doe")
	}
	if sub.Email != "jane@x.com" {
		t.Errorf("Email = %q, want %q", sub.Email, "jane@x.com")
	}
	if sub.Items[0].Name != "Widget" {
		t.Errorf("item name = %q, want %q", sub.Items[0].Name, "Widget")
	}
	if sub.Items[1].Name != "Unknown" {
		t.Errorf("empty item name = %q, want %q", sub.Items[1].Name, "Unknown")
	}
	if len(sub.Items[2].Name) != 200 {
		t.Errorf("long item name length = %d, want 200", len(sub.Items[2].Name))
	}
}

func TestSubmission_Validate(t *testing.T) {
	validItems := []orderitem.OrderItem{{Name: "Widget", Price: 10, Quantity: 1}}

	tests := []struct {
		name    string
		sub     Submission
		wantErr error
	}{
		{
			name: "valid submission",
			sub: Submission{
				OrderCode: "A1",
				FullName:  "Jane Doe",
				Email:     "jane@x.com",
				Items:     validItems,
			},
			wantErr: nil,
		},
		{
			name: "empty order code",
			sub: Submission{
				FullName: "Jane Doe",
				Email:    "jane@x.com",
				Items:    validItems,
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "empty full name",
			sub: Submission{
				OrderCode: "A1",
				Email:     "jane@x.com",
				Items:     validItems,
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "empty email",
			sub: Submission{
				OrderCode: "A1",
				FullName:  "Jane Doe",
				Items:     validItems,
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "no items",
			sub: Submission{
				OrderCode: "A1",
				FullName:  "Jane Doe",
				Email:     "jane@x.com",
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "malformed email",
			sub: Submission{
				OrderCode: "A1",
				FullName:  "Jane Doe",
				Email:     "not-an-email",
				Items:     validItems,
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "missing fields win over bad email",
			sub: Submission{
				FullName: "Jane Doe",
				Email:    "not-an-email",
				Items:    validItems,
			},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane@x.com", "jane@x.com"},
		{"jane doe@x.com", "janedoe@x.com"},
		{"jane<script>@x.com", "janescript@x.com"},
		{"j.a-n_e+1@x.com", "j.a-n_e+1@x.com"},
	}

	for _, tt := range tests {
		if got := sanitizeEmail(tt.in); got != tt.want {
			t.Errorf("sanitizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
