package schema

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Lifecycle states an order may be in. Status is matched exactly, not
// case-insensitively.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderItem is one line of an order. Quantity must be strictly positive.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Total is the line total: quantity times unit price, kept at full decimal
// precision. Rounding happens only when the value is rendered.
func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Map converts the line item to its plain key-value form.
func (i OrderItem) Map() map[string]any {
	return map[string]any{
		"product_id": i.ProductID,
		"quantity":   i.Quantity,
		"unit_price": i.UnitPrice.String(),
	}
}

// OrderItemFromMap rebuilds a line item from its map form. The item is
// validated as part of its enclosing order.
func OrderItemFromMap(m map[string]any) (OrderItem, error) {
	r := newMapReader(m)
	i := OrderItem{
		ProductID: r.int64("product_id"),
		Quantity:  r.intOr("quantity", 0),
		UnitPrice: r.money("unit_price"),
	}
	return i, r.err()
}

// Order is a validated purchase: an ordered sequence of line items plus a
// lifecycle status. Validation dives into every item.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Items     []OrderItem `json:"items" validate:"dive"`
	CreatedAt time.Time   `json:"created_at"`
	Status    string      `json:"status" validate:"oneof=pending confirmed shipped delivered cancelled"`
}

// NewOrder builds an order with CreatedAt defaulted to now and Status to
// "pending".
func NewOrder(id, userID int64, items []OrderItem) (*Order, error) {
	o := &Order{
		ID:        id,
		UserID:    userID,
		Items:     items,
		CreatedAt: time.Now(),
		Status:    StatusPending,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate runs the order rules and every line-item rule, aggregated.
func (o *Order) Validate() error {
	return check(o)
}

// Total is the order total: the exact decimal sum of all line totals.
func (o *Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// Map converts the order to its plain key-value form; the creation
// timestamp travels as RFC 3339, items as a list of maps.
func (o *Order) Map() map[string]any {
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.Map())
	}
	return map[string]any{
		"id":         o.ID,
		"user_id":    o.UserID,
		"items":      items,
		"created_at": isoTime(o.CreatedAt),
		"status":     o.Status,
	}
}

// OrderFromMap rebuilds an order from its map form, re-running all rules.
// Absent keys take the construction defaults (status "pending", created_at
// now).
func OrderFromMap(m map[string]any) (*Order, error) {
	r := newMapReader(m)
	o := &Order{
		ID:        r.int64("id"),
		UserID:    r.int64("user_id"),
		CreatedAt: r.timeOr("created_at", time.Now()),
		Status:    r.strOr("status", StatusPending),
	}
	for idx, raw := range r.slice("items") {
		im, err := castItemMap(raw)
		if err != nil {
			r.fail("items", "item "+strconv.Itoa(idx)+" is not a mapping")
			continue
		}
		it, err := OrderItemFromMap(im)
		if err != nil {
			if errs, ok := err.(Errors); ok {
				r.errs = append(r.errs, errs...)
			} else {
				r.fail("items", err.Error())
			}
			continue
		}
		o.Items = append(o.Items, it)
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
