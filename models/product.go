package models

// Product is a sellable item in the catalog. Price and cost are in the
// smallest currency unit (VND has no subunit).
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Cost     int64  `json:"cost"`
	Stock    int64  `json:"stock"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// CategoryOther is assigned when a product has no category.
const CategoryOther = "Khác"

// CategoryAll is the filter value that matches every category.
const CategoryAll = "Tất cả"

// CategoryOf returns the product category, defaulting to CategoryOther.
func (p Product) CategoryOf() string {
	if p.Category == "" {
		return CategoryOther
	}
	return p.Category
}

// DefaultProducts is the demo catalog used when no saved state exists.
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Nước Ngọt Coca", Price: 10000, Cost: 7000, Stock: 45, Unit: "Lon", Category: "Đồ uống"},
		{ID: 2, Name: "Snack Khoai Tây", Price: 6000, Cost: 4500, Stock: 20, Unit: "Gói", Category: "Đồ ăn"},
		{ID: 3, Name: "Bánh Mì Ngọt", Price: 12000, Cost: 8000, Stock: 10, Unit: "Cái", Category: "Đồ ăn"},
		{ID: 4, Name: "Nước Suối", Price: 5000, Cost: 3000, Stock: 100, Unit: "Chai", Category: "Đồ uống"},
	}
}

// DefaultCategories returns the filter list shown on the POS screen.
func DefaultCategories() []string {
	return []string{CategoryAll, "Đồ ăn", "Đồ uống", CategoryOther}
}
