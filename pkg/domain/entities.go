package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// RecordMeta captures identifiers and audit fields shared across entities.
type RecordMeta struct {
	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"-"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"-"`
}

// EnsureID assigns a UUID when the struct is about to be persisted.
func (m *RecordMeta) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// Menu is the root of the catalog tree. The counts are derived attributes
// populated by aggregate queries, never stored.
type Menu struct {
	bun.BaseModel `bun:"table:menus,alias:m"`

	RecordMeta
	Title       string `bun:"title,notnull" json:"title"`
	Description string `bun:"description" json:"description"`

	Submenus []*Submenu `bun:"rel:has-many,join:id=menu_id" json:"submenus,omitempty"`

	SubmenusCount int `bun:"submenus_count,scanonly" json:"submenus_count"`
	DishesCount   int `bun:"dishes_count,scanonly" json:"dishes_count"`
}

// Submenu belongs to exactly one Menu and owns zero or more Dishes.
type Submenu struct {
	bun.BaseModel `bun:"table:submenus,alias:s"`

	RecordMeta
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description"`
	MenuID      uuid.UUID `bun:"menu_id,notnull,type:uuid" json:"menu_id"`

	Dishes []*Dish `bun:"rel:has-many,join:id=submenu_id" json:"dishes,omitempty"`

	DishesCount int `bun:"dishes_count,scanonly" json:"dishes_count"`
}

// Dish is a leaf entity priced with fixed-point decimal semantics.
type Dish struct {
	bun.BaseModel `bun:"table:dishes,alias:d"`

	RecordMeta
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description"`
	Price       Price     `bun:"price,notnull,type:decimal(10,2)" json:"price"`
	Discount    int       `bun:"discount,notnull,default:0" json:"discount"`
	SubmenuID   uuid.UUID `bun:"submenu_id,notnull,type:uuid" json:"submenu_id"`
}

// EffectivePrice applies the dish discount, rounding half-up to two digits.
func (d Dish) EffectivePrice() Price {
	return d.Price.Discounted(d.Discount)
}

// Price is a fixed-point amount with two implied fraction digits. It always
// renders with exactly two decimals so cached payloads and API responses
// agree byte for byte.
type Price struct {
	amount decimal.Decimal
}

// NewPrice builds a Price from a raw decimal.
func NewPrice(d decimal.Decimal) Price {
	return Price{amount: d}
}

// ParsePrice parses a decimal string such as "12.50".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("price: %w", err)
	}
	return Price{amount: d}, nil
}

// Decimal exposes the underlying amount.
func (p Price) Decimal() decimal.Decimal { return p.amount }

// String renders the amount with two fraction digits.
func (p Price) String() string { return p.amount.StringFixed(2) }

// Equal reports whether two prices represent the same amount.
func (p Price) Equal(other Price) bool { return p.amount.Equal(other.amount) }

// IsNegative reports whether the amount is below zero.
func (p Price) IsNegative() bool { return p.amount.IsNegative() }

// Discounted returns price × (1 − discount/100) rounded half-up to two
// digits. Out-of-range discounts leave the price untouched.
func (p Price) Discounted(discount int) Price {
	if discount <= 0 || discount >= 100 {
		return Price{amount: p.amount.Round(2)}
	}
	factor := decimal.NewFromInt(100 - int64(discount)).Div(decimal.NewFromInt(100))
	return Price{amount: p.amount.Mul(factor).Round(2)}
}

// MarshalJSON renders the price as a fixed two-decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts both quoted and bare decimal literals.
func (p *Price) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("price: UnmarshalJSON on nil pointer")
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		p.amount = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	p.amount = d
	return nil
}

// Value implements driver.Valuer.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner.
func (p *Price) Scan(value any) error {
	if p == nil {
		return errors.New("price: Scan on nil pointer")
	}
	switch v := value.(type) {
	case nil:
		p.amount = decimal.Zero
		return nil
	case []byte:
		return p.scanString(string(v))
	case string:
		return p.scanString(v)
	case float64:
		p.amount = decimal.NewFromFloat(v)
		return nil
	case int64:
		p.amount = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("price: unsupported type %T", value)
	}
}

func (p *Price) scanString(s string) error {
	if strings.TrimSpace(s) == "" {
		p.amount = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	p.amount = d
	return nil
}

// ValidDiscount reports whether d is inside the accepted [0, 100) range.
func ValidDiscount(d int) bool {
	return d >= 0 && d < 100
}
