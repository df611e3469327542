package client

// Static per-night price table, keyed by room-type slug. Prices are
// client-side display data, mirrored into cart lines at add time.
var RoomPrices = map[string]int{
	"room_1": 3500,
	"room_2": 5500,
	"room_3": 7500,
}

// Static display-name lookup used when a listing is not at hand (bookings
// page).
var RoomNames = map[string]string{
	"room_1": "Classic Room",
	"room_2": "Deluxe Suite",
	"room_3": "Executive Suite",
}

// PriceFor returns the nightly price for a room type, 0 for unknown slugs.
func PriceFor(typeID string) int {
	return RoomPrices[typeID]
}

// NameFor returns the display name for a room type, falling back to the slug.
func NameFor(typeID string) string {
	if name, ok := RoomNames[typeID]; ok {
		return name
	}
	return typeID
}
