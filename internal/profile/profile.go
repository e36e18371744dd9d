// Package profile serves the account screens of the demo app: saved
// addresses, order history, and payment methods. All data is mock data
// held in memory, and every call simulates network latency so the UI
// loading states stay exercised.
package profile

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// DefaultLatency is the simulated network delay applied to each call.
const DefaultLatency = 500 * time.Millisecond

// Address is a saved delivery address.
type Address struct {
	ID         string
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Default    bool
}

// Formatted renders the address the way the UI displays it.
func (a Address) Formatted() string {
	return fmt.Sprintf("%s\n%s, %s %s", a.Street, a.City, a.State, a.PostalCode)
}

// Order is one entry in the order history.
type Order struct {
	OrderID   string
	Date      string
	Total     float64
	ItemCount int
	Status    string
}

// PaymentMethod is a saved card.
type PaymentMethod struct {
	ID       string
	CardType string
	LastFour string
	Expiry   string
	Default  bool
}

// Service holds the mock profile data. Safe for concurrent use.
type Service struct {
	latency time.Duration

	mu        sync.Mutex
	addresses []Address
	orders    []Order
	payments  []PaymentMethod
}

// NewService creates a profile service with the built-in demo data.
// latency <= 0 disables the simulated delay.
func NewService(latency time.Duration) *Service {
	return &Service{
		latency: latency,
		addresses: []Address{
			{ID: "1", Label: "Home", Street: "1633 Hampton Rd", City: "Toronto", State: "ON", PostalCode: "M4C 6Q2", Default: true},
			{ID: "2", Label: "Work", Street: "2200 Yonge St", City: "Toronto", State: "ON", PostalCode: "M4S 2C6"},
			{ID: "3", Label: "Cottage", Street: "45 Lake Shore Rd", City: "Huntsville", State: "ON", PostalCode: "P1H 0B8"},
		},
		orders: []Order{
			{OrderID: "ORD10045", Date: "2023-04-01", Total: 86.97, ItemCount: 3, Status: "Delivered"},
			{OrderID: "ORD10032", Date: "2023-03-15", Total: 45.99, ItemCount: 1, Status: "Delivered"},
			{OrderID: "ORD10018", Date: "2023-02-28", Total: 132.45, ItemCount: 5, Status: "Delivered"},
			{OrderID: "ORD10005", Date: "2023-02-14", Total: 75.50, ItemCount: 2, Status: "Cancelled"},
		},
		payments: []PaymentMethod{
			{ID: "1", CardType: "Visa", LastFour: "4242", Expiry: "04/27", Default: true},
			{ID: "2", CardType: "Mastercard", LastFour: "8210", Expiry: "11/26"},
		},
	}
}

// wait blocks for the configured latency or until ctx is cancelled.
func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Addresses returns the saved addresses.
func (s *Service) Addresses(ctx context.Context) ([]Address, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Address, len(s.addresses))
	copy(out, s.addresses)
	return out, nil
}

// DefaultAddress returns the address marked as default, or nil when
// none is.
func (s *Service) DefaultAddress(ctx context.Context) (*Address, error) {
	addresses, err := s.Addresses(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range addresses {
		if a.Default {
			return &a, nil
		}
	}
	return nil, nil
}

// AddAddress stores a new address, assigning it the next id. Marking it
// default clears the flag on every other address.
func (s *Service) AddAddress(ctx context.Context, a Address) (Address, error) {
	if err := s.wait(ctx); err != nil {
		return Address{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = strconv.Itoa(len(s.addresses) + 1)
	s.addresses = append(s.addresses, a)
	if a.Default {
		s.setDefaultLocked(a.ID)
	}
	return a, nil
}

// UpdateAddress replaces the address with the same id. Unknown ids are
// a no-op.
func (s *Service) UpdateAddress(ctx context.Context, a Address) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == a.ID {
			s.addresses[i] = a
			break
		}
	}
	if a.Default {
		s.setDefaultLocked(a.ID)
	}
	return nil
}

// DeleteAddress removes an address. If the default address is deleted,
// the first remaining address becomes the new default.
func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wasDefault := false
	kept := s.addresses[:0]
	for _, a := range s.addresses {
		if a.ID == id {
			wasDefault = a.Default
			continue
		}
		kept = append(kept, a)
	}
	s.addresses = kept

	if wasDefault && len(s.addresses) > 0 {
		s.setDefaultLocked(s.addresses[0].ID)
	}
	return nil
}

// SetDefaultAddress marks one address default and clears the rest.
func (s *Service) SetDefaultAddress(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setDefaultLocked(id)
	return nil
}

// setDefaultLocked flips the default flag so only id carries it.
// Caller must hold s.mu.
func (s *Service) setDefaultLocked(id string) {
	for i := range s.addresses {
		s.addresses[i].Default = s.addresses[i].ID == id
	}
}

// OrderHistory returns the past orders, newest first.
func (s *Service) OrderHistory(ctx context.Context) ([]Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// PaymentMethods returns the saved cards.
func (s *Service) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PaymentMethod, len(s.payments))
	copy(out, s.payments)
	return out, nil
}
