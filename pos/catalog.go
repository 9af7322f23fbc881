package pos

import (
	"strings"

	"taphoa/models"
)

// ProductInput is the admin form for creating or editing a product.
type ProductInput struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Cost     int64  `json:"cost"`
	Stock    int64  `json:"stock"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// Catalog lists products for the POS grid, filtered by a
// case-insensitive name substring and by category. An empty category or
// CategoryAll matches everything; products without a category count as
// CategoryOther.
func (a *App) Catalog(search, category string) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	search = strings.ToLower(search)
	out := make([]models.Product, 0, len(a.products))
	for _, p := range a.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && category != models.CategoryAll && p.CategoryOf() != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Inventory returns every product. Admin only; the gate check lives at
// the transport layer.
func (a *App) Inventory() []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Product, len(a.products))
	copy(out, a.products)
	return out
}

// Categories returns the POS filter list.
func (a *App) Categories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]string, len(a.categories))
	copy(out, a.categories)
	return out
}

// SelectCategory sets the active catalog filter.
func (a *App) SelectCategory(category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selectedCategory = category
}

// SelectedCategory returns the active catalog filter.
func (a *App) SelectedCategory() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedCategory
}

// CreateProduct adds a product with a fresh ID and persists.
func (a *App) CreateProduct(in ProductInput) models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := models.Product{
		ID:       a.nextID(),
		Name:     in.Name,
		Price:    in.Price,
		Cost:     in.Cost,
		Stock:    in.Stock,
		Unit:     in.Unit,
		Category: in.Category,
	}
	if p.Category == "" {
		p.Category = models.CategoryOther
	}

	a.products = append(a.products, p)
	a.persist()
	return p
}

// UpdateProduct overwrites the editable fields of an existing product
// and persists. The ID never changes.
func (a *App) UpdateProduct(id int64, in ProductInput) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.findProduct(id)
	if p == nil {
		return models.Product{}, ErrProductNotFound
	}

	p.Name = in.Name
	p.Price = in.Price
	p.Cost = in.Cost
	p.Stock = in.Stock
	p.Unit = in.Unit
	p.Category = in.Category
	if p.Category == "" {
		p.Category = models.CategoryOther
	}

	a.persist()
	return *p, nil
}

// DeleteProduct removes a product from the catalog and persists. Cart
// lines referencing it stay put; checkout simply skips their stock
// decrement.
func (a *App) DeleteProduct(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.products {
		if a.products[i].ID == id {
			a.products = append(a.products[:i], a.products[i+1:]...)
			a.persist()
			return nil
		}
	}
	return ErrProductNotFound
}
