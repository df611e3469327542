package client

import (
	"context"
	"errors"
)

// ErrRoomUnavailable means the requested room type has no entry in the
// filtered listing for the chosen dates.
var ErrRoomUnavailable = errors.New("This room is not available.")

// FindRoom fetches the filtered listing for the given dates and locates the
// entry for one room type.
func (c *Client) FindRoom(ctx context.Context, typeID string, f RoomFilter) (RoomListing, error) {
	listings, err := c.FilterRooms(ctx, f)
	if err != nil {
		return RoomListing{}, err
	}
	for _, listing := range listings {
		if listing.TypeID == typeID {
			return listing, nil
		}
	}
	return RoomListing{}, ErrRoomUnavailable
}

// AddToCart appends a cart line for the listing, stamping in the static
// nightly price. No uniqueness check: adding the same room twice makes two
// lines.
func AddToCart(cart *Cart, listing RoomListing, f RoomFilter) (CartItem, error) {
	item := CartItem{
		TypeID:   listing.TypeID,
		Type:     listing.Type,
		Checkin:  f.Checkin,
		Checkout: f.Checkout,
		Guests:   f.Guests,
		Price:    PriceFor(listing.TypeID),
	}
	if err := cart.Add(item); err != nil {
		return CartItem{}, err
	}
	return item, nil
}
