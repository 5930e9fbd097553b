package domain

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Product struct {
	ID          string `db:"id"`
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	NameHindi   string `db:"name_hindi"`
	Description string `db:"description"`
	Unit        string `db:"unit"`  // e.g. "1 kg", "250 g pack"
	Price       int64  `db:"price"` // whole rupees
	Image       string `db:"image"`
	InStock     bool   `db:"in_stock"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | OUT_OF_STOCK
}
