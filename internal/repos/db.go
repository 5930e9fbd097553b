package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the catalog if the DB is empty (categories/products)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the admin account exists (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products (catalog reference data; read-only to the cart)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  name_hindi TEXT,
  description TEXT,
  unit TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  image TEXT,
  in_stock INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Users & Sessions (admin stock console only)
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting catalog categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('namkeen','Namkeen'),
	  ('chips','Chips & Wafers'),
	  ('sweets','Sweets'),
	  ('farsan','Farsan')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,name_hindi,description,unit,price,image,in_stock) VALUES
	  ('chips-salted','chips','Salted Potato Chips','आलू चिप्स','Crispy salted wafers, wholesale pack','250 g',50,'products/chips-salted/main.jpg',1),
	  ('chips-banana','chips','Banana Chips','केले के चिप्स','Kerala-style banana wafers fried in coconut oil','1 kg',180,'products/chips-banana/main.jpg',1),
	  ('namkeen-sev','namkeen','Nylon Sev','नायलॉन सेव','Fine crunchy sev for chaat and bhel','1 kg',160,'products/namkeen-sev/main.jpg',1),
	  ('namkeen-chivda','namkeen','Poha Chivda','पोहा चिवड़ा','Roasted flattened-rice mix with peanuts','1 kg',140,'products/namkeen-chivda/main.jpg',1),
	  ('farsan-gathiya','farsan','Bhavnagari Gathiya','गाठिया','Soft thick gathiya, fresh stock weekly','1 kg',150,'products/farsan-gathiya/main.jpg',1),
	  ('sweets-soan','sweets','Soan Papdi','सोन पापड़ी','Flaky gram-flour sweet, box of 500 g','500 g',120,'products/sweets-soan/main.jpg',0)`)

	return tx.Commit()
}

// seedUsers ensures the admin account exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin','admin@superstaragencies.test','Admin',?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
