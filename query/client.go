// Package query wraps the API client with key-addressed caching, in-flight
// request deduplication, retry policies, and the mutation invalidation
// table. The UI layer reads entities only through here.
package query

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/ray-remotestate/themenu/client"
	"github.com/ray-remotestate/themenu/models"
)

// ErrNoSession gates authenticated queries: with no token the request would
// always come back 401, so it is never sent.
var ErrNoSession = errors.New("no session token")

// TokenSource is the session dependency; satisfied by *session.Store.
type TokenSource interface {
	Token() string
}

type Client struct {
	api    *client.Client
	cache  *Cache
	tokens TokenSource
	group  singleflight.Group
}

func NewClient(api *client.Client, tokens TokenSource) *Client {
	return &Client{
		api:    api,
		cache:  NewCache(),
		tokens: tokens,
	}
}

// Cache exposes the underlying cache, mainly so logout can clear it.
func (c *Client) Cache() *Cache { return c.cache }

// fetch runs one cached query: a fresh hit returns the cached value,
// anything else becomes a single deduplicated network fetch under the
// query's retry policy. When a refetch fails but a stale copy is still
// within MaxAge, the stale copy is returned and the failure logged;
// display paths prefer old data over no data.
func fetch[T any](ctx context.Context, c *Client, key Key, opts QueryOptions, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	var staleCopy []byte
	if !opts.ForceFresh {
		data, state := c.cache.get(key)
		switch state {
		case entryFresh:
			var value T
			if err := json.Unmarshal(data, &value); err == nil {
				return value, nil
			}
			c.cache.Evict(key)
		case entryStale:
			staleCopy = data
		}
	}

	// The flight is detached from the caller's context: other callers may be
	// sharing it, and a caller that navigates away only discards the result,
	// it does not abort the request.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(string(key), func() (any, error) {
		for attempt := 0; ; attempt++ {
			value, err := fn(flightCtx)
			if err == nil {
				c.cache.set(key, value, opts.StaleTime, opts.MaxAge)
				return value, nil
			}
			if opts.Retry == nil || !opts.Retry(attempt, err) {
				return nil, err
			}
		}
	})

	var result any
	var err error
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		result, err = res.Val, res.Err
	}
	if err != nil {
		if staleCopy != nil {
			var value T
			if uerr := json.Unmarshal(staleCopy, &value); uerr == nil {
				logrus.WithError(err).WithField("key", key).Warn("refetch failed, serving stale cache entry")
				return value, nil
			}
		}
		return zero, err
	}
	return result.(T), nil
}

func (c *Client) requireSession() error {
	if c.tokens == nil || c.tokens.Token() == "" {
		return ErrNoSession
	}
	return nil
}

// ---- queries ----

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	return fetch(ctx, c, CurrentUserKey(), defaultOptions(), c.api.CurrentUser)
}

func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	return fetch(ctx, c, RestaurantsKey(), defaultOptions(), c.api.ListRestaurants)
}

func (c *Client) Restaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return fetch(ctx, c, RestaurantKey(id), defaultOptions(), func(ctx context.Context) (*models.Restaurant, error) {
		return c.api.Restaurant(ctx, id)
	})
}

// RestaurantByOwner returns the caller's restaurant, nil when none exists
// yet. Gated on the session token; see ownerRetry for the retry policy.
func (c *Client) RestaurantByOwner(ctx context.Context) (*models.Restaurant, error) {
	return c.restaurantByOwner(ctx, false)
}

// RefreshOwnedRestaurant bypasses the cache. Dashboards call this on entry
// so a restaurant created or edited in another flow shows up immediately.
func (c *Client) RefreshOwnedRestaurant(ctx context.Context) (*models.Restaurant, error) {
	return c.restaurantByOwner(ctx, true)
}

func (c *Client) restaurantByOwner(ctx context.Context, forceFresh bool) (*models.Restaurant, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	opts := defaultOptions()
	opts.Retry = ownerRetry
	opts.ForceFresh = forceFresh
	return fetch(ctx, c, RestaurantByOwnerKey(), opts, c.api.RestaurantByOwner)
}

func (c *Client) FoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	return fetch(ctx, c, FoodItemsKey(restaurantID), defaultOptions(), func(ctx context.Context) ([]models.FoodItem, error) {
		return c.api.FoodItems(ctx, restaurantID)
	})
}

func (c *Client) FoodItem(ctx context.Context, id string) (*models.FoodItem, error) {
	return fetch(ctx, c, FoodItemKey(id), defaultOptions(), func(ctx context.Context) (*models.FoodItem, error) {
		return c.api.FoodItem(ctx, id)
	})
}

func (c *Client) CartContents(ctx context.Context) (*models.Cart, error) {
	return fetch(ctx, c, CartKey(), defaultOptions(), c.api.Cart)
}

// ---- mutations ----

func (c *Client) CreateFoodItem(ctx context.Context, req models.CreateFoodItemRequest) (*models.FoodItem, error) {
	item, err := c.api.CreateFoodItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opCreateFoodItem, mutationEvent{restaurantID: item.RestaurantID, foodItemID: item.ID})
	return item, nil
}

func (c *Client) UpdateFoodItem(ctx context.Context, id string, req models.UpdateFoodItemRequest) (*models.FoodItem, error) {
	item, err := c.api.UpdateFoodItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opUpdateFoodItem, mutationEvent{restaurantID: item.RestaurantID, foodItemID: item.ID})
	return item, nil
}

func (c *Client) DeleteFoodItem(ctx context.Context, id string) error {
	if err := c.api.DeleteFoodItem(ctx, id); err != nil {
		return err
	}
	c.applyEffects(opDeleteFoodItem, mutationEvent{foodItemID: id})
	return nil
}

func (c *Client) CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := c.api.CreateRestaurant(ctx, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opCreateRestaurant, mutationEvent{restaurantID: restaurant.ID, restaurant: restaurant})
	return restaurant, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id string, req models.UpdateRestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := c.api.UpdateRestaurant(ctx, id, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opUpdateRestaurant, mutationEvent{restaurantID: restaurant.ID, restaurant: restaurant})
	return restaurant, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	user, err := c.api.UpdateCurrentUser(ctx, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opUpdateUser, mutationEvent{})
	return user, nil
}

func (c *Client) AddCartItem(ctx context.Context, req models.AddCartItemRequest) (*models.Cart, error) {
	cart, err := c.api.AddCartItem(ctx, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opAddCartItem, mutationEvent{})
	return cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, req models.UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := c.api.UpdateCartItem(ctx, itemID, req)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opUpdateCartItem, mutationEvent{})
	return cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	if err := c.api.RemoveCartItem(ctx, itemID); err != nil {
		return err
	}
	c.applyEffects(opRemoveCartItem, mutationEvent{})
	return nil
}

func (c *Client) Checkout(ctx context.Context) (*models.CheckoutResponse, error) {
	out, err := c.api.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	c.applyEffects(opCheckout, mutationEvent{})
	return out, nil
}
