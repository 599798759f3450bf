package query

import "github.com/ray-remotestate/themenu/models"

// Every mutation's cache consequences live in one table so the dependency
// graph between write operations and cached keys can be read, and tested,
// in one place instead of being scattered through the mutation methods.

type mutationOp string

const (
	opCreateFoodItem   mutationOp = "createFoodItem"
	opUpdateFoodItem   mutationOp = "updateFoodItem"
	opDeleteFoodItem   mutationOp = "deleteFoodItem"
	opCreateRestaurant mutationOp = "createRestaurant"
	opUpdateRestaurant mutationOp = "updateRestaurant"
	opUpdateUser       mutationOp = "updateUser"
	opAddCartItem      mutationOp = "addCartItem"
	opUpdateCartItem   mutationOp = "updateCartItem"
	opRemoveCartItem   mutationOp = "removeCartItem"
	opCheckout         mutationOp = "checkout"
)

// mutationEvent carries the identifiers an effect needs to build keys, plus
// the mutation's result when a key can be seeded instead of invalidated.
type mutationEvent struct {
	restaurantID string
	foodItemID   string
	restaurant   *models.Restaurant
}

type keyFunc func(mutationEvent) Key

type effect struct {
	// invalidate marks exact keys stale.
	invalidate []keyFunc
	// invalidatePrefix marks every parameter variant of an operation stale.
	invalidatePrefix []Key
	// evict removes keys outright (no stale fallback).
	evict []keyFunc
	// seedOwner stores ev.restaurant under the owner-lookup key, sparing the
	// dashboard a round trip for a value the mutation already returned.
	seedOwner bool
}

func foodItemsKey(ev mutationEvent) Key { return FoodItemsKey(ev.restaurantID) }

func foodItemKey(ev mutationEvent) Key { return FoodItemKey(ev.foodItemID) }

func restaurantKey(ev mutationEvent) Key { return RestaurantKey(ev.restaurantID) }

func currentUserKey(mutationEvent) Key { return CurrentUserKey() }

func cartKey(mutationEvent) Key { return CartKey() }

func restaurantsKey(mutationEvent) Key { return RestaurantsKey() }

var mutationEffects = map[mutationOp]effect{
	opCreateFoodItem: {
		invalidate: []keyFunc{foodItemsKey},
	},
	opUpdateFoodItem: {
		invalidate: []keyFunc{foodItemKey, foodItemsKey},
	},
	opDeleteFoodItem: {
		// The owner lookup may embed food items, so it goes stale too.
		invalidatePrefix: []Key{opFoodItems},
		invalidate:       []keyFunc{func(mutationEvent) Key { return RestaurantByOwnerKey() }},
		evict:            []keyFunc{foodItemKey},
	},
	opCreateRestaurant: {
		seedOwner:  true,
		invalidate: []keyFunc{restaurantsKey},
	},
	opUpdateRestaurant: {
		seedOwner:  true,
		invalidate: []keyFunc{restaurantKey, restaurantsKey},
	},
	opUpdateUser: {
		invalidate: []keyFunc{currentUserKey},
	},
	opAddCartItem:    {invalidate: []keyFunc{cartKey}},
	opUpdateCartItem: {invalidate: []keyFunc{cartKey}},
	opRemoveCartItem: {invalidate: []keyFunc{cartKey}},
	opCheckout:       {invalidate: []keyFunc{cartKey}},
}

func (c *Client) applyEffects(op mutationOp, ev mutationEvent) {
	eff, ok := mutationEffects[op]
	if !ok {
		return
	}
	for _, fn := range eff.evict {
		c.cache.Evict(fn(ev))
	}
	for _, prefix := range eff.invalidatePrefix {
		c.cache.InvalidatePrefix(prefix)
	}
	for _, fn := range eff.invalidate {
		c.cache.Invalidate(fn(ev))
	}
	if eff.seedOwner && ev.restaurant != nil {
		c.cache.Seed(RestaurantByOwnerKey(), ev.restaurant, defaultStaleTime, defaultMaxAge)
	}
}
