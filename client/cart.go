package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"elysianshores/utils"
)

const cartFile = "cart.json"

// CartItem is one prospective booking line. Duplicates are allowed; each add
// is its own line.
type CartItem struct {
	TypeID   string `json:"type_id"`
	Type     string `json:"type"`
	Checkin  string `json:"checkin"`  // YYYY-MM-DD
	Checkout string `json:"checkout"` // YYYY-MM-DD
	Guests   int    `json:"guests"`
	Price    int    `json:"price"` // per night
}

// Nights is the whole-day difference between the line's dates.
func (i CartItem) Nights() int {
	checkin, err := utils.ParseDate(i.Checkin)
	if err != nil {
		return 0
	}
	checkout, err := utils.ParseDate(i.Checkout)
	if err != nil {
		return 0
	}
	return utils.Nights(checkin, checkout)
}

// LineTotal is nights × nightly price, exact.
func (i CartItem) LineTotal() int {
	return i.Nights() * i.Price
}

// Cart is the client-local unconfirmed booking list, persisted as a JSON file
// with explicit load/save boundaries.
type Cart struct {
	dir   string
	items []CartItem
}

// LoadCart reads the persisted cart from dir. A missing file is an empty
// cart, not an error.
func LoadCart(dir string) (*Cart, error) {
	cart := &Cart{dir: dir}
	raw, err := os.ReadFile(filepath.Join(dir, cartFile))
	if err != nil {
		if os.IsNotExist(err) {
			return cart, nil
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if err := json.Unmarshal(raw, &cart.items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// NewCart returns an in-memory cart that is never persisted.
func NewCart() *Cart {
	return &Cart{}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Add appends a line and persists.
func (c *Cart) Add(item CartItem) error {
	c.items = append(c.items, item)
	return c.save()
}

// Remove deletes the line at idx and persists.
func (c *Cart) Remove(idx int) error {
	if idx < 0 || idx >= len(c.items) {
		return fmt.Errorf("cart index %d out of range", idx)
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return c.save()
}

// Clear empties the cart and persists.
func (c *Cart) Clear() error {
	c.items = nil
	return c.save()
}

// GrandTotal is the exact sum of all line totals.
func (c *Cart) GrandTotal() int {
	total := 0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ConfirmItems translates every cart line into a booking request item, with
// checkin/checkout pinned to the fixed 17:00:00.000Z check-in hour on their
// calendar dates.
func (c *Cart) ConfirmItems() ([]BookingItem, error) {
	items := make([]BookingItem, 0, len(c.items))
	for _, line := range c.items {
		checkin, err := utils.ParseDate(line.Checkin)
		if err != nil {
			return nil, fmt.Errorf("invalid checkin date %q: %w", line.Checkin, err)
		}
		checkout, err := utils.ParseDate(line.Checkout)
		if err != nil {
			return nil, fmt.Errorf("invalid checkout date %q: %w", line.Checkout, err)
		}
		items = append(items, BookingItem{
			TypeID:   line.TypeID,
			Checkin:  utils.AtCheckInHour(checkin).Format("2006-01-02T15:04:05.000Z07:00"),
			Checkout: utils.AtCheckInHour(checkout).Format("2006-01-02T15:04:05.000Z07:00"),
			Guests:   line.Guests,
		})
	}
	return items, nil
}

// Checkout submits the whole cart as one confirm request. On success the
// cart is cleared; on failure it is left intact and the error carries the
// server's detail.
func (c *Cart) Checkout(ctx context.Context, api *Client) error {
	if len(c.items) == 0 {
		return fmt.Errorf("cart is empty")
	}
	items, err := c.ConfirmItems()
	if err != nil {
		return err
	}
	if _, err := api.ConfirmBookings(ctx, items); err != nil {
		return err
	}
	return c.Clear()
}

func (c *Cart) save() error {
	if c.dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, cartFile), raw, 0o644); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
