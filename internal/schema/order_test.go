package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItem_Total(t *testing.T) {
	it := OrderItem{ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromFloat(9.99)}
	assert.True(t, it.Total().Equal(decimal.RequireFromString("29.97")))
}

func TestOrder_Total(t *testing.T) {
	items := []OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(29.99)},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(99.99)},
	}
	o, err := NewOrder(1, 1, items)
	require.NoError(t, err)
	assert.True(t, o.Total().Equal(decimal.RequireFromString("159.97")),
		"got %s", o.Total())
	assert.Equal(t, "159.97", MoneyString(o.Total()))
}

func TestNewOrder_Defaults(t *testing.T) {
	o, err := NewOrder(1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.WithinDuration(t, time.Now(), o.CreatedAt, time.Minute)
}

func TestOrder_StatusEnum(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled} {
		o := &Order{ID: 1, UserID: 1, CreatedAt: time.Now(), Status: s}
		assert.NoError(t, o.Validate(), "status %q", s)
	}

	// Exact match only: no case folding for status.
	for _, s := range []string{"Pending", "extraviada", ""} {
		o := &Order{ID: 1, UserID: 1, CreatedAt: time.Now(), Status: s}
		err := o.Validate()
		require.Error(t, err, "status %q", s)
		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "status", errs[0].Field)
		assert.Contains(t, errs[0].Msg, "pending, confirmed, shipped, delivered, cancelled")
	}
}

func TestOrder_ItemQuantityPositive(t *testing.T) {
	items := []OrderItem{{ProductID: 1, Quantity: 0, UnitPrice: decimal.NewFromInt(5)}}
	_, err := NewOrder(1, 1, items)
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "quantity", errs[0].Field)
}

func TestOrder_MapRoundTrip(t *testing.T) {
	items := []OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(29.99)},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(99.99)},
	}
	o, err := NewOrder(1, 1, items)
	require.NoError(t, err)
	o.Status = StatusConfirmed
	require.NoError(t, o.Validate())

	raw, err := json.Marshal(o.Map())
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	back, err := OrderFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, o.ID, back.ID)
	assert.Equal(t, o.UserID, back.UserID)
	assert.Equal(t, o.Status, back.Status)
	assert.True(t, o.CreatedAt.Equal(back.CreatedAt),
		"timestamps survive the round trip: %s vs %s", o.CreatedAt, back.CreatedAt)
	require.Len(t, back.Items, len(o.Items))
	for i := range o.Items {
		assert.Equal(t, o.Items[i].ProductID, back.Items[i].ProductID)
		assert.Equal(t, o.Items[i].Quantity, back.Items[i].Quantity)
		assert.True(t, o.Items[i].UnitPrice.Equal(back.Items[i].UnitPrice))
	}
	assert.True(t, o.Total().Equal(back.Total()))
}

func TestOrderFromMap_Defaults(t *testing.T) {
	back, err := OrderFromMap(map[string]any{"id": 1, "user_id": 2})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, back.Status)
	assert.WithinDuration(t, time.Now(), back.CreatedAt, time.Minute)
	assert.Empty(t, back.Items)
}

func TestOrderFromMap_RejectsBadItem(t *testing.T) {
	m := map[string]any{
		"id":      1,
		"user_id": 2,
		"items": []any{
			map[string]any{"product_id": 1, "quantity": 0, "unit_price": "5"},
		},
	}
	_, err := OrderFromMap(m)
	assert.Error(t, err, "item rules re-run on deserialization")
}
