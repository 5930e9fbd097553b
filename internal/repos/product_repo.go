package repos

import (
	"superstar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category_id, name, COALESCE(name_hindi,'') AS name_hindi,
  COALESCE(description,'') AS description, unit, price,
  COALESCE(image,'') AS image, in_stock,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY created_at, id
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *ProductRepo) ListByCategory(catID string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE category_id = ?
	  ORDER BY created_at, id
	  LIMIT ? OFFSET ?
	`, catID, limit, offset)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Search(q, catID string, limit, offset int) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	// name_hindi is matched too: the catalog is bilingual and
	// customers search in either script.
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR COALESCE(name_hindi,'') LIKE ? OR LOWER(description) LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like, like)
	}
	if catID != "" {
		where += ` AND category_id = ?`
		args = append(args, catID)
	}

	sql := `
	  SELECT ` + productCols + `
	  FROM products
	  WHERE ` + where + `
	  ORDER BY created_at, id
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// SetStock flips the availability flag the storefront gates add-to-cart on.
func (r *ProductRepo) SetStock(id string, inStock bool) error {
	_, err := r.db.Exec(`UPDATE products SET in_stock=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, inStock, id)
	return err
}
