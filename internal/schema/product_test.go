package schema

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_PriceMustBePositive(t *testing.T) {
	for _, p := range []float64{0, -0.01, -50} {
		_, err := NewProduct(1, "X", decimal.NewFromFloat(p), "books")
		require.Error(t, err, "price %v", p)
		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "price", errs[0].Field)
	}
}

func TestProduct_PriceRoundedToTwoDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1299.989, "1299.99"},
		{29.99, "29.99"},
		{10, "10"},
		{0.005, "0.01"},
	}
	for _, tt := range tests {
		p, err := NewProduct(1, "X", decimal.NewFromFloat(tt.in), "books")
		require.NoError(t, err, "price %v", tt.in)
		assert.Equal(t, tt.want, p.Price.String(), "price %v", tt.in)
	}
}

func TestProduct_CategoryEnum(t *testing.T) {
	for _, c := range []string{"electronics", "Electronics", "CLOTHING", "Books", "home", "SpOrTs"} {
		p, err := NewProduct(1, "X", decimal.NewFromInt(5), c)
		require.NoError(t, err, "category %q", c)
		assert.Contains(t, []string{
			CategoryElectronics, CategoryClothing, CategoryBooks, CategoryHome, CategorySports,
		}, p.Category, "stored lowercase")
	}

	_, err := NewProduct(1, "X", decimal.NewFromInt(5), "groceries")
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "category", errs[0].Field)
	assert.Contains(t, errs[0].Msg, "electronics, clothing, books, home, sports",
		"message lists the allowed values")
}

func TestProduct_StockNonNegative(t *testing.T) {
	p := &Product{ID: 1, Name: "X", Price: decimal.NewFromInt(5), Category: "books", Stock: -5}
	err := p.Validate()
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "stock", errs[0].Field)

	p.Stock = 0
	assert.NoError(t, p.Validate(), "zero stock is fine")
}

func TestProduct_AggregatesViolations(t *testing.T) {
	p := &Product{
		ID:       2,
		Name:     "Producto Inválido",
		Price:    decimal.NewFromInt(-50),
		Category: "categoria_invalida",
		Stock:    -5,
	}
	err := p.Validate()
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 3)
	fields := make([]string, 0, 3)
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"price", "category", "stock"}, fields)
}

func TestProduct_MapRoundTrip(t *testing.T) {
	desc := "Laptop para gaming"
	p := &Product{
		ID:          1,
		Name:        "Laptop Gaming",
		Price:       decimal.NewFromFloat(1299.99),
		Category:    "Electronics",
		Stock:       10,
		Description: &desc,
	}
	require.NoError(t, p.Validate())

	raw, err := json.Marshal(p.Map())
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	back, err := ProductFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Name, back.Name)
	assert.True(t, p.Price.Equal(back.Price), "price %s vs %s", p.Price, back.Price)
	assert.Equal(t, p.Category, back.Category)
	assert.Equal(t, p.Stock, back.Stock)
	require.NotNil(t, back.Description)
	assert.Equal(t, desc, *back.Description)
}

func TestProductFromMap_StockDefault(t *testing.T) {
	back, err := ProductFromMap(map[string]any{"id": 1, "name": "X", "price": "5", "category": "books"})
	require.NoError(t, err)
	assert.Equal(t, 0, back.Stock)
	assert.Nil(t, back.Description)
}
