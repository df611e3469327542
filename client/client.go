// Package client is an HTTP client for the booking API plus the view-model
// layer the pages are built on (search, room detail, cart, bookings).
// Page-crossing state (token, cart) is held by explicit Session and Cart
// objects with load/save boundaries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8080"

// APIError is any non-2xx response, with the server's human-readable detail
// when it sent one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// DetailOr returns the server-provided detail of err when err is an
// *APIError carrying one, else the fallback. This is the page convention for
// turning a failure into a user-visible message.
func DetailOr(err error, fallback string) string {
	var apiErr *APIError
	if asAPIError(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

func asAPIError(err error, target **APIError) bool {
	for err != nil {
		if e, ok := err.(*APIError); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

// New builds a client for the given base URL; a trailing slash is stripped.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// NewFromEnv resolves the base URL from API_URL with a localhost fallback.
func NewFromEnv(session *Session) *Client {
	base := strings.TrimSpace(os.Getenv("API_URL"))
	if base == "" {
		base = DefaultBaseURL
	}
	return New(base, session)
}

type SignupRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type RoomListing struct {
	TypeID      string `json:"type_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Remaining   int    `json:"remaining"`
}

type RoomFilter struct {
	Checkin  string `json:"checkin"`  // YYYY-MM-DD
	Checkout string `json:"checkout"` // YYYY-MM-DD
	Guests   int    `json:"guests"`
}

type BookingItem struct {
	TypeID   string `json:"type_id"`
	Checkin  string `json:"checkin"`  // RFC3339, fixed 17:00:00.000Z
	Checkout string `json:"checkout"` // RFC3339, fixed 17:00:00.000Z
	Guests   int    `json:"guests"`
}

type Booking struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	RoomTypeID   string    `json:"roomTypeId"`
	CheckinDate  time.Time `json:"checkinDate"`
	CheckoutDate time.Time `json:"checkoutDate"`
	Guests       int       `json:"guests"`
	CreatedAt    time.Time `json:"createdAt"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup registers a new account and stores the returned token on the
// session.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	var tok tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", req, &tok); err != nil {
		return err
	}
	return c.session.SetToken(tok.AccessToken)
}

// Login authenticates with the form-encoded body the API expects and stores
// the returned token on the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tok tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &tok)
	if err != nil {
		return err
	}
	return c.session.SetToken(tok.AccessToken)
}

// Me fetches the authenticated user's profile projection.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/auth/users/me", "", nil, &user)
	return user, err
}

// FilterRooms lists room types available for every night of the range.
func (c *Client) FilterRooms(ctx context.Context, f RoomFilter) ([]RoomListing, error) {
	var listings []RoomListing
	err := c.doJSON(ctx, http.MethodPost, "/rooms/filter", f, &listings)
	return listings, err
}

// ConfirmBookings submits the whole batch in one request; the backend treats
// it as all-or-nothing.
func (c *Client) ConfirmBookings(ctx context.Context, items []BookingItem) ([]Booking, error) {
	payload := struct {
		Items []BookingItem `json:"items"`
	}{Items: items}

	var created []Booking
	err := c.doJSON(ctx, http.MethodPost, "/bookings/confirm", payload, &created)
	return created, err
}

// ListBookings fetches all bookings owned by the authenticated user.
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := c.do(ctx, http.MethodGet, "/bookings", "", nil, &bookings)
	return bookings, err
}

// CancelBooking deletes one booking by id.
func (c *Client) CancelBooking(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), "", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(raw), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail struct {
			Detail string `json:"detail"`
		}
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &detail)
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
