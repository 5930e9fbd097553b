package services_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"superstar/internal/order"
	"superstar/internal/repos"
	"superstar/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE categories(id TEXT PRIMARY KEY, name TEXT, created_at TEXT, updated_at TEXT);
	CREATE TABLE products(id TEXT PRIMARY KEY, category_id TEXT, name TEXT, name_hindi TEXT,
	  description TEXT, unit TEXT, price INTEGER, image TEXT, in_stock INTEGER,
	  created_at TEXT, updated_at TEXT);

	INSERT INTO categories(id,name) VALUES ('chips','Chips & Wafers');
	INSERT INTO products(id,category_id,name,name_hindi,description,unit,price,image,in_stock,created_at)
	  VALUES ('chips-salted','chips','Chips','आलू चिप्स','Crispy salted wafers','250 g',50,'',1,'now'),
	         ('sweets-soan','chips','Soan Papdi','','Flaky sweet','500 g',120,'',0,'now');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestOrderFlow_AddGenerate(t *testing.T) {
	db := memdb(t)
	cartSvc := services.NewCartService(repos.NewProductRepo(db))
	orderSvc := services.NewOrderService(cartSvc, order.Config{Recipient: "918007835556", Business: "Super Star Agencies"})

	sid := "test-session"
	if err := cartSvc.Add(sid, "chips-salted"); err != nil {
		t.Fatal(err)
	}
	if err := cartSvc.Add(sid, "chips-salted"); err != nil {
		t.Fatal(err)
	}

	cv := cartSvc.View(sid)
	if len(cv.Lines) != 1 || cv.TotalItems != 2 || cv.TotalAmount != 100 {
		t.Fatalf("bad cart view: %+v", cv)
	}

	d := order.CustomerDetails{Name: "Raj Kumar", Mobile: "9876543210", Address: "12 Main Street, City, 400001"}
	msg, err := orderSvc.Generate(sid, d)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(msg.Text, "Qty: 2 × ₹50 = ₹100") {
		t.Fatalf("message missing line subtotal:\n%s", msg.Text)
	}
	if !strings.HasPrefix(msg.DeepLink, "https://wa.me/918007835556?text=") {
		t.Fatalf("bad deep link: %s", msg.DeepLink)
	}

	// The cart stays as-is: delivery cannot be confirmed from here.
	if cartSvc.View(sid).TotalItems != 2 {
		t.Fatal("cart must not auto-clear on generation")
	}

	// A details edit invalidates the composed message.
	orderSvc.Invalidate(sid)
	if _, ok := orderSvc.Current(sid); ok {
		t.Fatal("stale message still current after edit")
	}
}

// Generation must stay consistent while another goroutine is editing
// the same session's cart: every composed message balances, and the
// race detector stays quiet.
func TestOrderFlow_GenerateDuringCartUpdates(t *testing.T) {
	db := memdb(t)
	cartSvc := services.NewCartService(repos.NewProductRepo(db))
	orderSvc := services.NewOrderService(cartSvc, order.Config{Recipient: "918007835556", Business: "Super Star Agencies"})

	sid := "busy-session"
	if err := cartSvc.Add(sid, "chips-salted"); err != nil {
		t.Fatal(err)
	}
	d := order.CustomerDetails{Name: "Raj Kumar", Mobile: "9876543210", Address: "12 Main Street, City, 400001"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			cartSvc.UpdateQuantity(sid, "chips-salted", i%5+1)
		}
	}()

	reLine := regexp.MustCompile(`= ₹(\d+)`)
	reTotal := regexp.MustCompile(`\*Total Amount: ₹(\d+)\*`)
	for i := 0; i < 2000; i++ {
		msg, err := orderSvc.Generate(sid, d)
		if err != nil {
			t.Fatal(err)
		}
		var sum int64
		for _, m := range reLine.FindAllStringSubmatch(msg.Text, -1) {
			n, _ := strconv.ParseInt(m[1], 10, 64)
			sum += n
		}
		tm := reTotal.FindStringSubmatch(msg.Text)
		if tm == nil {
			t.Fatalf("no total in message:\n%s", msg.Text)
		}
		if total, _ := strconv.ParseInt(tm[1], 10, 64); total != sum {
			t.Fatalf("total ₹%d does not match line sum ₹%d:\n%s", total, sum, msg.Text)
		}
	}
	<-done
}

func TestOrderFlow_EmptyCart(t *testing.T) {
	db := memdb(t)
	cartSvc := services.NewCartService(repos.NewProductRepo(db))
	orderSvc := services.NewOrderService(cartSvc, order.Config{Recipient: "918007835556", Business: "Super Star Agencies"})

	d := order.CustomerDetails{Name: "Raj Kumar", Mobile: "9876543210", Address: "12 Main Street, City, 400001"}
	if _, err := orderSvc.Generate("s1", d); err != order.ErrEmptyCart {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestCartService_OutOfStockGate(t *testing.T) {
	db := memdb(t)
	cartSvc := services.NewCartService(repos.NewProductRepo(db))

	if err := cartSvc.Add("s1", "sweets-soan"); err != services.ErrOutOfStock {
		t.Fatalf("want ErrOutOfStock, got %v", err)
	}
	if err := cartSvc.Add("s1", "no-such-product"); err == nil {
		t.Fatal("unknown product should error")
	}
	if cv := cartSvc.View("s1"); len(cv.Lines) != 0 {
		t.Fatalf("gated adds reached the cart: %+v", cv)
	}
}

func TestCartService_SessionsIsolated(t *testing.T) {
	db := memdb(t)
	cartSvc := services.NewCartService(repos.NewProductRepo(db))

	if err := cartSvc.Add("s1", "chips-salted"); err != nil {
		t.Fatal(err)
	}
	if cv := cartSvc.View("s2"); cv.TotalItems != 0 {
		t.Fatalf("sessions leaked: %+v", cv)
	}

	cartSvc.UpdateQuantity("s1", "chips-salted", 0)
	if cv := cartSvc.View("s1"); cv.TotalItems != 0 {
		t.Fatalf("qty 0 should remove the line: %+v", cv)
	}
}

func TestCatalogService_SearchMatchesHindiNames(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	got, err := svc.Search("आलू", "", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "chips-salted" {
		t.Fatalf("hindi search missed the product: %+v", got)
	}

	got, err = svc.Search("chips", "", 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "chips-salted" {
		t.Fatalf("english search regressed: %+v", got)
	}
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	db := memdb(t)
	svc := services.NewInventoryService(repos.NewProductRepo(db))

	a, err := svc.CheckAvailability("chips-salted")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "IN_STOCK" {
		t.Fatalf("want IN_STOCK, got %+v", a)
	}

	a, err = svc.CheckAvailability("sweets-soan")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "OUT_OF_STOCK" {
		t.Fatalf("want OUT_OF_STOCK, got %+v", a)
	}

	// no row
	a, err = svc.CheckAvailability("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "OUT_OF_STOCK" {
		t.Fatalf("want OUT_OF_STOCK for unknown id, got %+v", a)
	}

	if err := svc.SetStock("chips-salted", false); err != nil {
		t.Fatal(err)
	}
	a, _ = svc.CheckAvailability("chips-salted")
	if a.Status != "OUT_OF_STOCK" {
		t.Fatalf("stock toggle not applied: %+v", a)
	}
}
