package core

import (
	"context"
	"sync"
	"time"
)

// fakeStore is a test-only in-memory Store. Maps plus error fields for
// behavior injection, same pattern for every port.
type fakeStore struct {
	mu         sync.RWMutex
	users      map[string]*User
	properties map[string]*Property
	offers     map[string]*Offer
	bookings   map[string]*Booking

	userErr     error
	propertyErr error
	offerErr    error
	bookingErr  error
	cascadeErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]*User),
		properties: make(map[string]*Property),
		offers:     make(map[string]*Offer),
		bookings:   make(map[string]*Booking),
	}
}

// UserStore

func (f *fakeStore) UpsertUser(_ context.Context, u *User) (*User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userErr != nil {
		return nil, false, f.userErr
	}
	if existing, ok := f.users[u.Email]; ok {
		return existing, false, nil
	}
	stored := *u
	stored.CreatedAt = time.Now()
	f.users[u.Email] = &stored
	return &stored, true, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.userErr != nil {
		return nil, f.userErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var users []*User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeStore) SetUserRole(_ context.Context, email string, role Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userErr != nil {
		return f.userErr
	}
	u, ok := f.users[email]
	if !ok {
		return ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; !ok {
		return ErrUserNotFound
	}
	delete(f.users, email)
	return nil
}

// PropertyStore

func (f *fakeStore) InsertProperty(_ context.Context, p *Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.propertyErr != nil {
		return f.propertyErr
	}
	stored := *p
	f.properties[p.ID] = &stored
	return nil
}

func (f *fakeStore) GetProperty(_ context.Context, id string) (*Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.propertyErr != nil {
		return nil, f.propertyErr
	}
	p, ok := f.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStore) ListProperties(_ context.Context) ([]*Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.propertyErr != nil {
		return nil, f.propertyErr
	}
	var properties []*Property
	for _, p := range f.properties {
		properties = append(properties, p)
	}
	return properties, nil
}

func (f *fakeStore) ListPropertiesByAgent(_ context.Context, agentEmail string) ([]*Property, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var properties []*Property
	for _, p := range f.properties {
		if p.AgentEmail == agentEmail {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func (f *fakeStore) UpdateProperty(_ context.Context, p *Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[p.ID]; !ok {
		return ErrPropertyNotFound
	}
	stored := *p
	f.properties[p.ID] = &stored
	return nil
}

func (f *fakeStore) SetPropertyFlags(_ context.Context, id string, verified, advertised bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return ErrPropertyNotFound
	}
	p.Verified = verified
	p.Advertised = advertised
	return nil
}

func (f *fakeStore) DeleteProperty(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[id]; !ok {
		return ErrPropertyNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakeStore) SetStatusByAgent(_ context.Context, agentEmail, status string) (int, error) {
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

// OfferStore

func (f *fakeStore) InsertOfferIfAbsent(_ context.Context, o *Offer) (*Offer, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.offerErr != nil {
		return nil, false, f.offerErr
	}
	for _, existing := range f.offers {
		if existing.PropertyID == o.PropertyID && existing.UserEmail == o.UserEmail {
			return existing, false, nil
		}
	}
	stored := *o
	stored.CreatedAt = time.Now()
	f.offers[o.ID] = &stored
	return &stored, true, nil
}

func (f *fakeStore) GetOffer(_ context.Context, id string) (*Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.offerErr != nil {
		return nil, f.offerErr
	}
	o, ok := f.offers[id]
	if !ok {
		return nil, ErrOfferNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeStore) SetOfferTerms(_ context.Context, id string, price float64, message, buyingDate *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return ErrOfferNotFound
	}
	status := StatusPending
	o.OfferPrice = &price
	o.Message = message
	o.BuyingDate = buyingDate
	o.Status = &status
	return nil
}

func (f *fakeStore) SetOfferStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return ErrOfferNotFound
	}
	o.Status = &status
	return nil
}

func (f *fakeStore) ListSavedByUser(_ context.Context, userEmail string) ([]*Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*Offer
	for _, o := range f.offers {
		if o.UserEmail == userEmail && o.Status == nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *fakeStore) ListOfferedByUser(_ context.Context, userEmail string) ([]*Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*Offer
	for _, o := range f.offers {
		if o.UserEmail == userEmail && o.Status != nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *fakeStore) ListOffersForAgent(_ context.Context, agentEmail string) ([]*Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var offers []*Offer
	for _, o := range f.offers {
		if o.AgentEmail == agentEmail && o.Status != nil {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (f *fakeStore) DeleteOffer(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.offers[id]; !ok {
		return ErrOfferNotFound
	}
	delete(f.offers, id)
	return nil
}

// BookingStore

func (f *fakeStore) InsertBooking(_ context.Context, b *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bookingErr != nil {
		return f.bookingErr
	}
	stored := *b
	stored.CreatedAt = time.Now()
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeStore) ListBookingsByUser(_ context.Context, userEmail string) ([]*Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var bookings []*Booking
	for _, b := range f.bookings {
		if b.UserEmail == userEmail {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *fakeStore) ListBookingsByAgent(_ context.Context, agentEmail string) ([]*Booking, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var bookings []*Booking
	for _, b := range f.bookings {
		if b.AgentEmail == agentEmail {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *fakeStore) SetBookingStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = &status
	return nil
}

func (f *fakeStore) SumOfferPriceByAgent(_ context.Context, agentEmail string) (float64, error) {
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

// fakeAuthority records the exchange and returns a canned handle.
type fakeAuthority struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (f *fakeAuthority) CreateIntent(_ context.Context, amountMinor int64, currency string) (string, error) {
	f.amount = amountMinor
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	if f.secret == "" {
		return "pi_test_secret", nil
	}
	return f.secret, nil
}
