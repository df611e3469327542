package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicLine() CartItem {
	return CartItem{
		TypeID:   "room_1",
		Type:     "Classic Room",
		Checkin:  "2025-06-01",
		Checkout: "2025-06-04",
		Guests:   2,
		Price:    3500,
	}
}

func TestCartLineMath(t *testing.T) {
	line := classicLine()
	assert.Equal(t, 3, line.Nights())
	assert.Equal(t, 10500, line.LineTotal())
}

func TestGrandTotalIsExactSum(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(classicLine()))
	require.NoError(t, cart.Add(CartItem{
		TypeID: "room_3", Type: "Executive Suite",
		Checkin: "2025-06-10", Checkout: "2025-06-12", Guests: 1, Price: 7500,
	}))

	assert.Equal(t, 10500+15000, cart.GrandTotal())
}

func TestCartAllowsDuplicateLines(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(classicLine()))
	require.NoError(t, cart.Add(classicLine()))
	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 21000, cart.GrandTotal())
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	cart, err := LoadCart(dir)
	require.NoError(t, err)
	assert.Zero(t, cart.Len())

	require.NoError(t, cart.Add(classicLine()))

	reloaded, err := LoadCart(dir)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, classicLine(), reloaded.Items()[0])

	require.NoError(t, reloaded.Remove(0))
	again, err := LoadCart(dir)
	require.NoError(t, err)
	assert.Zero(t, again.Len())
}

func TestCartRemoveOutOfRange(t *testing.T) {
	cart := NewCart()
	assert.Error(t, cart.Remove(0))
}

func TestConfirmItemsPinCheckInHour(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(classicLine()))

	items, err := cart.ConfirmItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "room_1", items[0].TypeID)
	assert.Equal(t, "2025-06-01T17:00:00.000Z", items[0].Checkin)
	assert.Equal(t, "2025-06-04T17:00:00.000Z", items[0].Checkout)
	assert.Equal(t, 2, items[0].Guests)
}

func TestCheckoutClearsCartOnSuccess(t *testing.T) {
	var got struct {
		Items []BookingItem `json:"items"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings/confirm", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cart, err := LoadCart(dir)
	require.NoError(t, err)
	require.NoError(t, cart.Add(classicLine()))

	api := New(srv.URL, NewSession())
	require.NoError(t, cart.Checkout(context.Background(), api))

	require.Len(t, got.Items, 1)
	assert.Zero(t, cart.Len())

	reloaded, err := LoadCart(dir)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Len())
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"No room_1 rooms left on 2025-06-02"}`))
	}))
	defer srv.Close()

	cart := NewCart()
	require.NoError(t, cart.Add(classicLine()))

	api := New(srv.URL, NewSession())
	err := cart.Checkout(context.Background(), api)
	require.Error(t, err)
	assert.Equal(t, "No room_1 rooms left on 2025-06-02", DetailOr(err, "Booking failed"))
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	cart := NewCart()
	err := cart.Checkout(context.Background(), New("http://unused", NewSession()))
	assert.Error(t, err)
}
