package dto

import "github.com/qyinm/shoptui/types"

// FromProduct keeps the price as a decimal string so no precision is lost
// on the wire.
func FromProduct(p types.Product) Product {
	return Product{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Thumbnail:   p.Thumbnail(),
		Price:       p.Price().String(),
		Rating:      p.Rating(),
	}
}

func FromProducts(products []types.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromTabs(tabs []types.Tab) []Tab {
	out := make([]Tab, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, Tab{Index: int(t), Label: t.String()})
	}
	return out
}
