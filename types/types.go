package types

import (
	"context"

	"github.com/shopspring/decimal"
)

// Tab represents one of the catalog category labels shown above the grid
type Tab int

const (
	ForYou Tab = iota
	Scenes
	Featured
	Groups
)

// AllTabs lists the tabs in display order
var AllTabs = []Tab{ForYou, Scenes, Featured, Groups}

// String returns the display label of the tab
func (t Tab) String() string {
	switch t {
	case ForYou:
		return "For You"
	case Scenes:
		return "Scenes"
	case Featured:
		return "Featured"
	case Groups:
		return "Groups"
	default:
		return "unknown"
	}
}

// Next returns the tab after t, wrapping around
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(AllTabs))
}

// Prev returns the tab before t, wrapping around
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(AllTabs) - 1) % len(AllTabs))
}

// Valid reports whether t is one of AllTabs
func (t Tab) Valid() bool {
	return t >= ForYou && int(t) < len(AllTabs)
}

// Product represents a catalog entry
type Product struct {
	id          int
	title       string
	description string
	thumbnail   string
	price       decimal.Decimal
	rating      float64
}

// NewProduct creates a new Product with the given fields
func NewProduct(id int, title, description, thumbnail string, price decimal.Decimal, rating float64) Product {
	return Product{
		id:          id,
		title:       title,
		description: description,
		thumbnail:   thumbnail,
		price:       price,
		rating:      rating,
	}
}

// Getters for Product fields
func (p Product) ID() int                { return p.id }
func (p Product) Title() string          { return p.title }
func (p Product) Description() string    { return p.description }
func (p Product) Thumbnail() string      { return p.thumbnail }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) Rating() float64        { return p.rating }

// Page is one slice of the remote catalog together with the server-reported total
type Page struct {
	products []Product
	total    int
}

// NewPage creates a new Page
func NewPage(products []Product, total int) Page {
	return Page{products: products, total: total}
}

func (p Page) Products() []Product { return p.products }
func (p Page) Total() int          { return p.total }

// ProductSource is the core abstraction for data access.
// No bubbletea dependency; the MCP server calls it directly.
type ProductSource interface {
	GetProducts(ctx context.Context, skip, limit int) (Page, error)
}
