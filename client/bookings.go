package client

import (
	"context"

	"elysianshores/utils"
)

// Nights is the calendar-day difference between checkout and checkin. Both
// instants are reduced to their date component first so a UTC offset cannot
// skew the count.
func (b Booking) Nights() int {
	return utils.Nights(b.CheckinDate, b.CheckoutDate)
}

// RoomName resolves the display name from the static catalog.
func (b Booking) RoomName() string {
	return NameFor(b.RoomTypeID)
}

// BookingsView is the my-bookings page state: the fetched list plus the last
// cancellation error, if any.
type BookingsView struct {
	api *Client

	bookings  []Booking
	cancelErr string
}

func NewBookingsView(api *Client) *BookingsView {
	return &BookingsView{api: api}
}

// Refresh fetches the authenticated user's bookings.
func (v *BookingsView) Refresh(ctx context.Context) error {
	bookings, err := v.api.ListBookings(ctx)
	if err != nil {
		return err
	}
	v.bookings = bookings
	v.cancelErr = ""
	return nil
}

// Bookings returns the currently displayed list.
func (v *BookingsView) Bookings() []Booking {
	out := make([]Booking, len(v.bookings))
	copy(out, v.bookings)
	return out
}

// Cancel deletes one booking. On success exactly that row leaves the list,
// without refetching; on failure the row is retained and the error message
// kept for inline display.
func (v *BookingsView) Cancel(ctx context.Context, id uint) error {
	if err := v.api.CancelBooking(ctx, id); err != nil {
		v.cancelErr = DetailOr(err, "Failed to cancel booking")
		return err
	}

	kept := v.bookings[:0]
	for _, b := range v.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	v.bookings = kept
	v.cancelErr = ""
	return nil
}

// CancelError returns the inline error from the last failed cancellation.
func (v *BookingsView) CancelError() string {
	return v.cancelErr
}
