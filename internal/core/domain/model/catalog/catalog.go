package catalog

// Catalog is the product list fetched for one storefront view. It is never
// mutated after construction, so it may be read from any goroutine.
type Catalog struct {
	products []*Product
	byID     map[string]*Product
}

// NewCatalog keeps products in the order the backend returned them.
// Nil entries are skipped; for duplicate identifiers the first entry wins.
func NewCatalog(products []*Product) *Catalog {
	c := &Catalog{
		products: make([]*Product, 0, len(products)),
		byID:     make(map[string]*Product, len(products)),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, seen := c.byID[p.ID()]; seen {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID()] = p
	}
	return c
}

// Products returns a copy of the product list.
func (c *Catalog) Products() []*Product {
	if c == nil {
		return nil
	}
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks a product up by identifier.
func (c *Catalog) Find(id string) (*Product, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}
