package client

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"

	"elysianshores/utils"
)

var (
	// ErrDatesRequired means a query must not be issued yet.
	ErrDatesRequired = errors.New("select both check-in and check-out")
	// ErrInvalidDateRange covers checkout on or before checkin, including the
	// zero-night case.
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
)

// SearchView holds the room-search page state: the current filters, the last
// applied result set, and a generation counter so a stale response can never
// overwrite the result of a newer query.
type SearchView struct {
	api *Client

	mu       sync.Mutex
	gen      uint64
	checkin  string
	checkout string
	guests   int

	rooms []RoomListing
}

func NewSearchView(api *Client) *SearchView {
	return &SearchView{api: api, guests: 1}
}

// SetFilters updates the filter fields. Changing any field invalidates every
// in-flight query.
func (v *SearchView) SetFilters(checkin, checkout string, guests int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.checkin = checkin
	v.checkout = checkout
	v.guests = guests
	v.gen++
}

// Validate reports whether a query may be issued for the current filters.
func (v *SearchView) Validate() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.validateLocked()
}

func (v *SearchView) validateLocked() error {
	if v.checkin == "" || v.checkout == "" {
		return ErrDatesRequired
	}
	checkin, err := utils.ParseDate(v.checkin)
	if err != nil {
		return ErrDatesRequired
	}
	checkout, err := utils.ParseDate(v.checkout)
	if err != nil {
		return ErrDatesRequired
	}
	if utils.Nights(checkin, checkout) <= 0 {
		return ErrInvalidDateRange
	}
	return nil
}

// Refresh issues the filter query for the current filters and applies the
// result only when no newer query superseded it meanwhile. Invalid filters
// fail before any request goes out.
func (v *SearchView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if err := v.validateLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	gen := v.gen
	filter := RoomFilter{Checkin: v.checkin, Checkout: v.checkout, Guests: v.guests}
	v.mu.Unlock()

	rooms, err := v.api.FilterRooms(ctx, filter)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		// a newer query owns the view now; drop this result
		return nil
	}
	v.rooms = rooms
	return nil
}

// Rooms returns the last applied result set.
func (v *SearchView) Rooms() []RoomListing {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]RoomListing, len(v.rooms))
	copy(out, v.rooms)
	return out
}

// Query mirrors the current filters into a shareable URL query.
func (v *SearchView) Query() url.Values {
	v.mu.Lock()
	defer v.mu.Unlock()
	q := url.Values{}
	q.Set("guests", strconv.Itoa(v.guests))
	q.Set("checkin", v.checkin)
	q.Set("checkout", v.checkout)
	return q
}

// ApplyQuery restores filters from a shared/bookmarked URL query.
func (v *SearchView) ApplyQuery(q url.Values) {
	guests, err := strconv.Atoi(q.Get("guests"))
	if err != nil || guests < 1 {
		guests = 1
	}
	v.SetFilters(q.Get("checkin"), q.Get("checkout"), guests)
}
