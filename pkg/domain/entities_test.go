package domain

import (
	"encoding/json"
	"testing"
)

func mustPrice(t *testing.T, s string) Price {
	t.Helper()
	p, err := ParsePrice(s)
	if err != nil {
		t.Fatalf("parse price %q: %v", s, err)
	}
	return p
}

func TestPriceDiscountRounding(t *testing.T) {
	cases := []struct {
		price    string
		discount int
		want     string
	}{
		{"10.00", 10, "9.00"},
		{"9.99", 33, "6.69"},
		{"9.99", 0, "9.99"},
		{"5.00", 0, "5.00"},
		{"0.10", 50, "0.05"},
		{"1.25", 99, "0.01"},
	}
	for _, tc := range cases {
		got := mustPrice(t, tc.price).Discounted(tc.discount)
		if got.String() != tc.want {
			t.Fatalf("price %s discount %d: got %s, want %s", tc.price, tc.discount, got.String(), tc.want)
		}
	}
}

func TestPriceDiscountOutOfRangeIsNoop(t *testing.T) {
	p := mustPrice(t, "10.00")
	for _, d := range []int{-5, 100, 150} {
		if got := p.Discounted(d); got.String() != "10.00" {
			t.Fatalf("discount %d: got %s, want 10.00", d, got.String())
		}
	}
}

func TestPriceJSONRoundTrip(t *testing.T) {
	dish := Dish{
		Title: "Carbonara",
		Price: mustPrice(t, "12.5"),
	}
	payload, err := json.Marshal(dish)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Dish
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Price.String() != "12.50" {
		t.Fatalf("expected fixed two decimals, got %s", decoded.Price.String())
	}
}

func TestPriceScanVariants(t *testing.T) {
	var p Price
	if err := p.Scan([]byte("7.30")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if p.String() != "7.30" {
		t.Fatalf("scan bytes: got %s", p.String())
	}
	if err := p.Scan("0.5"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if p.String() != "0.50" {
		t.Fatalf("scan string: got %s", p.String())
	}
	if err := p.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if p.String() != "0.00" {
		t.Fatalf("scan nil: got %s", p.String())
	}
}

func TestEffectivePrice(t *testing.T) {
	dish := Dish{Price: mustPrice(t, "9.99"), Discount: 33}
	if got := dish.EffectivePrice().String(); got != "6.69" {
		t.Fatalf("effective price: got %s, want 6.69", got)
	}
}

func TestValidDiscount(t *testing.T) {
	for d, want := range map[int]bool{0: true, 50: true, 99: true, -1: false, 100: false} {
		if got := ValidDiscount(d); got != want {
			t.Fatalf("ValidDiscount(%d) = %v, want %v", d, got, want)
		}
	}
}
