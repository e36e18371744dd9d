// Package cart implements the in-memory shopping cart ledger: an ordered
// list of product lines with derived totals that observers can subscribe
// to. One Ledger instance is shared by all consumers for the life of the
// process; it is never persisted.
package cart

import (
	"log/slog"
	"sync"

	"bottleshop/internal/models"
)

// Line pairs a product with the quantity of it in the cart.
// A stored line always has Quantity >= 1; lines that reach zero are
// removed rather than kept at zero.
type Line struct {
	Product  models.Product
	Quantity int
}

// Totals are the derived aggregates over all lines, recomputed after
// every mutation.
type Totals struct {
	Items int     // sum of all line quantities
	Price float64 // sum of price * quantity over all lines
}

// Subscriber receives the recomputed totals after a mutation. It is
// invoked synchronously inside the mutation, so it must return quickly
// and must not call back into the Ledger.
type Subscriber func(Totals)

// Ledger is the single source of truth for the current cart contents.
// All methods are safe for concurrent use: each mutation updates the
// lines, recomputes totals, and notifies subscribers as one atomic step,
// so an observer never sees mutated lines with stale totals.
type Ledger struct {
	mu     sync.Mutex
	lines  []Line
	totals Totals
	subs   map[int]Subscriber
	nextID int
}

// NewLedger returns an empty cart ledger.
func NewLedger() *Ledger {
	return &Ledger{subs: make(map[int]Subscriber)}
}

// Add puts quantity units of product into the cart. If a line for the
// same product ID already exists its quantity is increased in place
// (merge-by-id, exact string match); otherwise a new line is appended,
// preserving insertion order. Quantities below 1 are treated as 1.
// Add cannot fail.
func (l *Ledger) Add(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	merged := false
	for i := range l.lines {
		if l.lines[i].Product.ID == product.ID {
			l.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		l.lines = append(l.lines, Line{Product: product, Quantity: quantity})
	}

	l.recomputeAndPublish()
	slog.Debug("cart add", "product", product.ID, "quantity", quantity, "total_items", l.totals.Items)
}

// Remove deletes the line for productID. Removing an absent product is
// a defined no-op, not an error; totals are still republished.
func (l *Ledger) Remove(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.removeLocked(productID)
	l.recomputeAndPublish()
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less behaves exactly like Remove. Setting the quantity of a
// product that is not in the cart is a no-op: only Add creates lines.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		l.removeLocked(productID)
		l.recomputeAndPublish()
		return
	}

	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines[i].Quantity = quantity
			break
		}
	}
	l.recomputeAndPublish()
}

// Clear empties the cart. Totals drop to zero and are published.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	l.recomputeAndPublish()
	slog.Debug("cart cleared")
}

// Line returns the line for productID, if present. It has no side effects.
func (l *Ledger) Line(productID string) (Line, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range l.lines {
		if line.Product.ID == productID {
			return line, true
		}
	}
	return Line{}, false
}

// Lines returns a copy of the current lines in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Totals returns the current derived totals.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals
}

// Subscribe registers fn to be called with the new totals after every
// mutation, whether or not the numeric values changed. It returns an
// unsubscribe function. The current totals are not replayed on
// subscription; call Totals for the initial value.
func (l *Ledger) Subscribe(fn Subscriber) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.subs[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// removeLocked drops the line for productID if present. Caller holds mu.
func (l *Ledger) removeLocked(productID string) {
	for i, line := range l.lines {
		if line.Product.ID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// recomputeAndPublish folds totals over all lines and notifies every
// subscriber exactly once. The cart is human-sized, so the full O(n)
// fold per mutation is fine. Caller holds mu.
func (l *Ledger) recomputeAndPublish() {
	var t Totals
	for _, line := range l.lines {
		t.Items += line.Quantity
		t.Price += line.Product.Price * float64(line.Quantity)
	}
	l.totals = t

	for _, fn := range l.subs {
		fn(t)
	}
}
