package schema

import "github.com/shopspring/decimal"

// Categories a product may belong to. The category field is matched
// case-insensitively and stored lowercase.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryBooks       = "books"
	CategoryHome        = "home"
	CategorySports      = "sports"
)

// Product is a validated catalog entry. Price must be strictly positive and
// is stored rounded to two decimal places; stock may not go negative.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Category    string          `json:"category" validate:"oneof=electronics clothing books home sports"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Description *string         `json:"description"`
}

// NewProduct builds a product with Stock defaulted to 0 and no description.
func NewProduct(id int64, name string, price decimal.Decimal, category string) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price, Category: category}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate normalizes the record in place (category lowercased, price
// rounded to 2dp) and reports every violated rule.
func (p *Product) Validate() error {
	p.Category = normLower(p.Category)
	p.Price = roundMoney(p.Price)
	if p.Description != nil {
		p.Description = trimSpacePtr(*p.Description)
	}
	return check(p)
}

// Map converts the product to its plain key-value form; the price travels
// as its canonical decimal string.
func (p *Product) Map() map[string]any {
	m := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price.String(),
		"category":    p.Category,
		"stock":       p.Stock,
		"description": nil,
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	return m
}

// ProductFromMap rebuilds a product from its map form, re-running all rules.
func ProductFromMap(m map[string]any) (*Product, error) {
	r := newMapReader(m)
	p := &Product{
		ID:          r.int64("id"),
		Name:        r.str("name"),
		Price:       r.money("price"),
		Category:    r.str("category"),
		Stock:       r.intOr("stock", 0),
		Description: r.strPtr("description"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
