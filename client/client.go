// Package client is the typed façade over The Menu's REST API. It maps
// parameters to request bodies and unwraps responses; it does not cache and
// it does not persist tokens (the session package owns both).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ray-remotestate/themenu/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client against baseURL. tokens may be nil for a client that
// only ever touches public endpoints.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &Transport{Tokens: tokens},
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates an account. The response must carry a token; a 2xx
// without one is a hard failure because the session store has nothing to
// persist.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, endpointRegister, req, &auth); err != nil {
		return nil, err
	}
	if strings.TrimSpace(auth.Token) == "" {
		return nil, ErrMissingToken
	}
	return &auth, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, endpointLogin, req, &auth); err != nil {
		return nil, err
	}
	if strings.TrimSpace(auth.Token) == "" {
		return nil, ErrMissingToken
	}
	return &auth, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, endpointCurrentUser, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, endpointCurrentUser, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.do(ctx, http.MethodGet, endpointRestaurants, nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) Restaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	path := withParam(endpointRestaurantByID, ":id", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// RestaurantByOwner resolves the caller's own restaurant. A 404 means the
// user simply has no restaurant yet and is translated to (nil, nil) so
// callers can tell "none yet" apart from a real failure.
func (c *Client) RestaurantByOwner(ctx context.Context) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.do(ctx, http.MethodGet, endpointRestaurantByOwner, nil, &restaurant); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.do(ctx, http.MethodPost, endpointRestaurants, req, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id string, req models.UpdateRestaurantRequest) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	path := withParam(endpointRestaurantByID, ":id", id)
	if err := c.do(ctx, http.MethodPatch, path, req, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) FoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	path := withParam(endpointFoodItemsByRestaurant, ":restaurantId", restaurantID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FoodItem(ctx context.Context, id string) (*models.FoodItem, error) {
	var item models.FoodItem
	path := withParam(endpointFoodItemByID, ":id", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateFoodItem(ctx context.Context, req models.CreateFoodItemRequest) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := c.do(ctx, http.MethodPost, endpointFoodItems, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateFoodItem(ctx context.Context, id string, req models.UpdateFoodItemRequest) (*models.FoodItem, error) {
	var item models.FoodItem
	path := withParam(endpointFoodItemByID, ":id", id)
	if err := c.do(ctx, http.MethodPatch, path, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteFoodItem(ctx context.Context, id string) error {
	path := withParam(endpointFoodItemByID, ":id", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) Cart(ctx context.Context) (*models.Cart, error) {
	var cart *models.Cart
	if err := c.do(ctx, http.MethodGet, endpointCart, nil, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, req models.AddCartItemRequest) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, endpointCartItems, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, req models.UpdateCartItemRequest) (*models.Cart, error) {
	var cart models.Cart
	path := withParam(endpointCartItemByID, ":itemId", itemID)
	if err := c.do(ctx, http.MethodPatch, path, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	path := withParam(endpointCartItemByID, ":itemId", itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) Checkout(ctx context.Context) (*models.CheckoutResponse, error) {
	var out models.CheckoutResponse
	if err := c.do(ctx, http.MethodPost, endpointCheckout, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
