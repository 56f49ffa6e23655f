package server

import (
	"context"
	"sync"

	"github.com/estately/estately/core"
)

// stubStore is an in-memory core.Store for handler tests. Same shape as the
// domain-level fake: maps plus error fields for behavior injection.
type stubStore struct {
	mu         sync.RWMutex
	users      map[string]*core.User
	properties map[string]*core.Property
	offers     map[string]*core.Offer
	bookings   map[string]*core.Booking

	cascadeErr error
}

func newStubStore() *stubStore {
	return &stubStore{
		users:      make(map[string]*core.User),
		properties: make(map[string]*core.Property),
		offers:     make(map[string]*core.Offer),
		bookings:   make(map[string]*core.Booking),
	}
}

func (f *stubStore) UpsertUser(_ context.Context, u *core.User) (*core.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[u.Email]; ok {
		return existing, false, nil
	}
	stored := *u
	f.users[u.Email] = &stored
	return &stored, true, nil
}

func (f *stubStore) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[email]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *stubStore) ListUsers(_ context.Context) ([]*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var users []*core.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *stubStore) SetUserRole(_ context.Context, email string, role core.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return core.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *stubStore) DeleteUser(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; !ok {
		return core.ErrUserNotFound
	}
	delete(f.users, email)
	return nil
}

func (f *stubStore) InsertProperty(_ context.Context, p *core.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *p
	f.properties[p.ID] = &stored
	return nil
}

func (f *stubStore) GetProperty(_ context.Context, id string) (*core.Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.properties[id]
	if !ok {
		return nil, core.ErrPropertyNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *stubStore) ListProperties(_ context.Context) ([]*core.Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var properties []*core.Property
	for _, p := range f.properties {
		properties = append(properties, p)
	}
	return properties, nil
}

func (f *stubStore) ListPropertiesByAgent(_ context.Context, agentEmail string) ([]*core.Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var properties []*core.Property
	for _, p := range f.properties {
		if p.AgentEmail == agentEmail {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func (f *stubStore) UpdateProperty(_ context.Context, p *core.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[p.ID]; !ok {
		return core.ErrPropertyNotFound
	}
	stored := *p
	f.properties[p.ID] = &stored
	return nil
}

func (f *stubStore) SetPropertyFlags(_ context.Context, id string, verified, advertised bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return core.ErrPropertyNotFound
	}
	p.Verified = verified
	p.Advertised = advertised
	return nil
}

func (f *stubStore) DeleteProperty(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[id]; !ok {
		return core.ErrPropertyNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *stubStore) SetStatusByAgent(_ context.Context, agentEmail, status string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cascadeErr != nil {
		return 0, f.cascadeErr
	}
	count := 0
	for _, p := range f.properties {
		if p.AgentEmail == agentEmail {
			p.Status = status
			count++
		}
	}
	return count, nil
}

func (f *stubStore) InsertOfferIfAbsent(_ context.Context, o *core.Offer) (*core.Offer, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.offers {
		if existing.PropertyID == o.PropertyID && existing.UserEmail == o.UserEmail {
			return existing, false, nil
		}
	}
	stored := *o
	f.offers[o.ID] = &stored
	return &stored, true, nil
}

func (f *stubStore) GetOffer(_ context.Context, id string) (*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	o, ok := f.offers[id]
	if !ok {
		return nil, core.ErrOfferNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *stubStore) SetOfferTerms(_ context.Context, id string, price float64, message, buyingDate *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return core.ErrOfferNotFound
	}
	status := core.StatusPending
	o.OfferPrice = &price
	o.Message = message
	o.BuyingDate = buyingDate
	o.Status = &status
	return nil
}

func (f *stubStore) SetOfferStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return core.ErrOfferNotFound
	}
	o.Status = &status
	return nil
}

func (f *stubStore) ListSavedByUser(_ context.Context, userEmail string) ([]*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*core.Offer
	for _, o := range f.offers {
		if o.UserEmail == userEmail && o.Status == nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *stubStore) ListOfferedByUser(_ context.Context, userEmail string) ([]*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*core.Offer
	for _, o := range f.offers {
		if o.UserEmail == userEmail && o.Status != nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *stubStore) ListOffersForAgent(_ context.Context, agentEmail string) ([]*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*core.Offer
	for _, o := range f.offers {
		if o.AgentEmail == agentEmail && o.Status != nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *stubStore) DeleteOffer(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.offers[id]; !ok {
		return core.ErrOfferNotFound
	}
	delete(f.offers, id)
	return nil
}

func (f *stubStore) InsertBooking(_ context.Context, b *core.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *stubStore) ListBookingsByUser(_ context.Context, userEmail string) ([]*core.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var bookings []*core.Booking
	for _, b := range f.bookings {
		if b.UserEmail == userEmail {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *stubStore) ListBookingsByAgent(_ context.Context, agentEmail string) ([]*core.Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var bookings []*core.Booking
	for _, b := range f.bookings {
		if b.AgentEmail == agentEmail {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *stubStore) SetBookingStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return core.ErrBookingNotFound
	}
	b.Status = &status
	return nil
}

func (f *stubStore) SumOfferPriceByAgent(_ context.Context, agentEmail string) (float64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var total float64
	for _, b := range f.bookings {
		if b.AgentEmail == agentEmail {
			total += b.OfferPrice
		}
	}
	return total, nil
}

type stubAuthority struct {
	err error
}

func (f *stubAuthority) CreateIntent(_ context.Context, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}
