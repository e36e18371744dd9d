package cart

import (
	"math"
	"sync"
	"testing"

	"bottleshop/internal/models"
)

func testProduct(id, name string, price float64) models.Product {
	return models.Product{
		ID:         id,
		Name:       name,
		Price:      price,
		CategoryID: "1",
		InStock:    true,
	}
}

// priceEq compares float totals with a tolerance well below one cent.
func priceEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddMergesByID(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Cabernet Sauvignon", 24.99)

	l.Add(p, 2)
	l.Add(p, 3)

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after merge, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("merged quantity: got %d, want 5", lines[0].Quantity)
	}
	if got := l.Totals().Items; got != 5 {
		t.Errorf("total items: got %d, want 5", got)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	l := NewLedger()
	a := testProduct("a", "Corona Extra", 8.99)
	b := testProduct("b", "Heineken", 9.99)
	c := testProduct("c", "Budweiser", 7.99)

	l.Add(a, 1)
	l.Add(b, 1)
	l.Add(c, 1)
	l.Add(a, 1) // merge must update in place, not reorder

	lines := l.Lines()
	wantOrder := []string{"a", "b", "c"}
	if len(lines) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d", len(wantOrder), len(lines))
	}
	for i, id := range wantOrder {
		if lines[i].Product.ID != id {
			t.Errorf("line %d: got product %q, want %q", i, lines[i].Product.ID, id)
		}
	}
	if lines[0].Quantity != 2 {
		t.Errorf("merged first line quantity: got %d, want 2", lines[0].Quantity)
	}
}

func TestAddCoercesQuantityBelowOne(t *testing.T) {
	l := NewLedger()
	l.Add(testProduct("p1", "Jameson", 27.99), 0)

	line, ok := l.Line("p1")
	if !ok {
		t.Fatal("expected line for p1")
	}
	if line.Quantity != 1 {
		t.Errorf("quantity: got %d, want 1", line.Quantity)
	}
}

func TestTotalsScenario(t *testing.T) {
	// addToCart(A,1), addToCart(B,2), addToCart(A,1)
	// -> [A x2, B x2], 4 items, 2*12.99 + 2*24.99 = 75.96.
	l := NewLedger()
	a := testProduct("a", "Lager", 12.99)
	b := testProduct("b", "Merlot", 24.99)

	l.Add(a, 1)
	l.Add(b, 2)
	l.Add(a, 1)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != "a" || lines[0].Quantity != 2 {
		t.Errorf("line 0: got %s x%d, want a x2", lines[0].Product.ID, lines[0].Quantity)
	}
	if lines[1].Product.ID != "b" || lines[1].Quantity != 2 {
		t.Errorf("line 1: got %s x%d, want b x2", lines[1].Product.ID, lines[1].Quantity)
	}

	totals := l.Totals()
	if totals.Items != 4 {
		t.Errorf("total items: got %d, want 4", totals.Items)
	}
	if !priceEq(totals.Price, 75.96) {
		t.Errorf("total price: got %v, want 75.96", totals.Price)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	l := NewLedger()
	l.Add(testProduct("p1", "Stout", 7.99), 1)

	l.Remove("missing")

	if got := len(l.Lines()); got != 1 {
		t.Errorf("expected 1 line after removing absent id, got %d", got)
	}
	if got := l.Totals().Items; got != 1 {
		t.Errorf("total items: got %d, want 1", got)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		l := NewLedger()
		l.Add(testProduct("p1", "Grey Goose", 32.99), 2)

		l.SetQuantity("p1", quantity)

		if _, ok := l.Line("p1"); ok {
			t.Errorf("SetQuantity(%d): expected line removed", quantity)
		}
		totals := l.Totals()
		if totals.Items != 0 || totals.Price != 0 {
			t.Errorf("SetQuantity(%d): totals not zeroed: %+v", quantity, totals)
		}
	}
}

func TestSetQuantityUnknownIsNoOp(t *testing.T) {
	l := NewLedger()
	l.Add(testProduct("p1", "Absolut", 24.99), 2)
	before := l.Totals()

	l.SetQuantity("unknown", 5)

	if got := len(l.Lines()); got != 1 {
		t.Fatalf("expected ledger unchanged, got %d lines", got)
	}
	if after := l.Totals(); after != before {
		t.Errorf("totals changed: before %+v, after %+v", before, after)
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	l := NewLedger()
	l.Add(testProduct("p1", "Belvedere", 36.99), 2)

	l.SetQuantity("p1", 7)

	line, _ := l.Line("p1")
	if line.Quantity != 7 {
		t.Errorf("quantity: got %d, want 7", line.Quantity)
	}
	if got := l.Totals().Items; got != 7 {
		t.Errorf("total items: got %d, want 7", got)
	}
}

func TestClear(t *testing.T) {
	l := NewLedger()
	l.Add(testProduct("a", "Captain Morgan", 19.99), 3)
	l.Add(testProduct("b", "Malibu", 17.99), 1)

	l.Clear()

	if got := len(l.Lines()); got != 0 {
		t.Errorf("expected empty cart, got %d lines", got)
	}
	totals := l.Totals()
	if totals.Items != 0 || totals.Price != 0 {
		t.Errorf("totals after clear: %+v, want zeros", totals)
	}
}

func TestEveryMutationNotifiesOnce(t *testing.T) {
	l := NewLedger()
	var calls int
	unsubscribe := l.Subscribe(func(Totals) { calls++ })
	defer unsubscribe()

	l.Add(testProduct("p1", "Havana Club", 23.99), 1)
	l.SetQuantity("unknown", 5) // value-unchanged mutation still publishes
	l.Remove("missing")         // so does a no-op remove
	l.Clear()

	if calls != 4 {
		t.Errorf("subscriber calls: got %d, want 4", calls)
	}
}

func TestSubscriberSeesConsistentTotals(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Jack Daniel's", 29.99)

	var last Totals
	unsubscribe := l.Subscribe(func(t Totals) { last = t })
	defer unsubscribe()

	l.Add(p, 2)
	if last.Items != 2 || !priceEq(last.Price, 59.98) {
		t.Errorf("published totals: %+v, want {2 59.98}", last)
	}

	l.Remove("p1")
	if last.Items != 0 || last.Price != 0 {
		t.Errorf("published totals after remove: %+v, want zeros", last)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	l := NewLedger()
	var calls int
	unsubscribe := l.Subscribe(func(Totals) { calls++ })

	l.Add(testProduct("p1", "Glenfiddich", 45.99), 1)
	unsubscribe()
	l.Clear()

	if calls != 1 {
		t.Errorf("subscriber calls: got %d, want 1", calls)
	}
}

func TestConcurrentMutationsStayConsistent(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Chardonnay", 19.99)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				l.Add(p, 1)
			}
		}()
	}
	wg.Wait()

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	want := workers * perWorker
	if lines[0].Quantity != want {
		t.Errorf("quantity: got %d, want %d", lines[0].Quantity, want)
	}
	totals := l.Totals()
	if totals.Items != want {
		t.Errorf("total items: got %d, want %d", totals.Items, want)
	}
	if !priceEq(totals.Price, 19.99*float64(want)) {
		t.Errorf("total price: got %v, want %v", totals.Price, 19.99*float64(want))
	}
}
