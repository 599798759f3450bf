package client

import "strings"

const (
	// authentication
	endpointRegister = "/api/auth/register"
	endpointLogin    = "/api/auth/login"

	// user
	endpointCurrentUser = "/api/user/me"

	// restaurants
	endpointRestaurants       = "/api/restaurants"
	endpointRestaurantByID    = "/api/restaurants/:id"
	endpointRestaurantByOwner = "/api/restaurants/me"

	// food items
	endpointFoodItemsByRestaurant = "/api/food-items/restaurant/:restaurantId"
	endpointFoodItemByID          = "/api/food-items/:id"
	endpointFoodItems             = "/api/food-items"

	// shopping cart
	endpointCart         = "/api/carts"
	endpointCartItems    = "/api/carts/items"
	endpointCartItemByID = "/api/carts/items/:itemId"
	endpointCheckout     = "/api/carts/checkout"
)

func withParam(endpoint, placeholder, value string) string {
	return strings.Replace(endpoint, placeholder, value, 1)
}
