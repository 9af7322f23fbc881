package pos

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"taphoa/models"
	"taphoa/store"
)

// User-recoverable conditions. Handlers surface these as notices; none
// of them mutate state.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("out of stock")
	ErrStockLimit      = errors.New("stock limit reached")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrLineIndex       = errors.New("cart line index out of range")
	ErrLocked          = errors.New("admin locked")
	ErrWrongPin        = errors.New("wrong PIN")
	ErrBadDigit        = errors.New("PIN input must be a single digit")
	ErrUnknownView     = errors.New("unknown view")
)

// Views the UI can sit on. Inventory is behind the admin gate.
const (
	ViewPOS       = "pos"
	ViewReports   = "reports"
	ViewInventory = "inventory"
	ViewSettings  = "settings"
)

// Options configures a new App. Store may be nil (state is then held in
// memory only, which the tests use). Now defaults to time.Now.
type Options struct {
	PIN   string
	Store store.Store
	Now   func() time.Time
}

// App owns all POS state. Every exported method takes the mutex and runs
// to completion before the next one starts, which is the whole
// concurrency story: no operation ever observes another half done.
// Persistence happens inside the same critical section, one full
// snapshot per mutation.
type App struct {
	mu sync.Mutex

	products     []models.Product
	cart         []models.CartLine
	transactions []models.Transaction
	categories   []string

	selectedCategory string
	view             string

	gate   gate
	lastID int64
	st     store.Store
	now    func() time.Time
}

func New(opts Options) *App {
	a := &App{
		categories:       models.DefaultCategories(),
		selectedCategory: models.CategoryAll,
		view:             ViewPOS,
		gate:             gate{pin: opts.PIN},
		st:               opts.Store,
		now:              opts.Now,
	}
	if a.now == nil {
		a.now = time.Now
	}

	a.restore()
	return a
}

// restore loads the saved snapshot and falls back field by field: missing
// products mean the demo catalog, missing transactions mean an empty log.
func (a *App) restore() {
	var snap models.Snapshot
	found := false

	if a.st != nil {
		var err error
		snap, found, err = a.st.Load(context.Background())
		if err != nil {
			log.Printf("pos: load failed, starting from defaults: %v", err)
		}
	}

	if !found || snap.Products == nil {
		snap.Products = models.DefaultProducts()
	}
	if snap.Transactions == nil {
		snap.Transactions = []models.Transaction{}
	}

	a.products = snap.Products
	a.transactions = snap.Transactions

	for _, p := range a.products {
		if p.ID > a.lastID {
			a.lastID = p.ID
		}
	}
	for _, t := range a.transactions {
		if t.ID > a.lastID {
			a.lastID = t.ID
		}
	}
}

// persist writes the full snapshot. Called with the lock held. A failed
// write is logged and life goes on; nothing in this system is fatal.
func (a *App) persist() {
	if a.st == nil {
		return
	}
	snap := models.Snapshot{
		Products:     a.products,
		Transactions: a.transactions,
	}
	if err := a.st.Save(context.Background(), snap); err != nil {
		log.Printf("pos: save failed: %v", err)
	}
}

// nextID hands out identifiers for products and transactions. Millisecond
// wall clock, bumped past the last issued ID so two calls in the same
// tick still come out strictly increasing.
func (a *App) nextID() int64 {
	id := a.now().UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id
	return id
}

// Snapshot returns a deep copy of the persisted state, for exports.
func (a *App) Snapshot() models.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := models.Snapshot{
		Products:     make([]models.Product, len(a.products)),
		Transactions: cloneTransactions(a.transactions),
	}
	copy(snap.Products, a.products)
	return snap
}

// cloneTransactions copies log entries including their Items arrays.
// Every transaction handed out of the App goes through here: the log is
// append-only and immutable, and a caller holding a result must not be
// able to reach back into it.
func cloneTransactions(src []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(src))
	for i, t := range src {
		items := make([]models.CartLine, len(t.Items))
		copy(items, t.Items)
		t.Items = items
		out[i] = t
	}
	return out
}

func (a *App) findProduct(id int64) *models.Product {
	for i := range a.products {
		if a.products[i].ID == id {
			return &a.products[i]
		}
	}
	return nil
}
