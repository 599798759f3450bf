package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/themenu/client"
	"github.com/ray-remotestate/themenu/models"
)

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "r1", OwnerID: "u1", Name: "Alpha"},
		{ID: "r2", OwnerID: "u2", Name: "Beta"},
		{ID: "r3", OwnerID: "u3", Name: "Gamma"},
		{ID: "r4", OwnerID: "u4", Name: "Delta"},
		{ID: "r5", OwnerID: "u5", Name: "Epsilon"},
	}
}

func TestFindRestaurantByOwner(t *testing.T) {
	restaurants := sampleRestaurants()

	found := FindRestaurantByOwner(restaurants, "u2")
	require.NotNil(t, found)
	assert.Equal(t, "r2", found.ID)

	assert.Nil(t, FindRestaurantByOwner(restaurants, "nobody"))
	assert.Nil(t, FindRestaurantByOwner(restaurants, ""))
	assert.Nil(t, FindRestaurantByOwner(nil, "u1"))
}

func TestFindRestaurantByOwnerFirstMatchWins(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "first", OwnerID: "u1"},
		{ID: "second", OwnerID: "u1"},
	}
	found := FindRestaurantByOwner(restaurants, "u1")
	require.NotNil(t, found)
	assert.Equal(t, "first", found.ID)
}

func TestUsername(t *testing.T) {
	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", Username(user, "cached name"))
	assert.Equal(t, "cached name", Username(nil, "cached name"))
	assert.Equal(t, "User", Username(nil, ""))
}

func TestGreetings(t *testing.T) {
	assert.Equal(t, "Hello Restaurant Owner!", Greeting(models.AccountTypeRestaurant))
	assert.Equal(t, "Hello Customer!", Greeting(models.AccountTypeCustomer))
	assert.Equal(t, "Your customers are ready to order", GreetingPhrase(models.AccountTypeRestaurant))
	assert.Equal(t, "What would you like to order?", GreetingPhrase(models.AccountTypeCustomer))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(12.5))
	assert.Equal(t, "$12.50", FormatPrice("12.5"))
	assert.Equal(t, "$5.00", FormatPrice(5))
	assert.Equal(t, "$0.00", FormatPrice("abc"))
	assert.Equal(t, "$0.00", FormatPrice(nil))
	assert.Equal(t, "$0.00", FormatPrice(struct{}{}))
}

func TestValidateDishForm(t *testing.T) {
	result := ValidateDishForm(DishForm{Name: "", Price: "5"})
	assert.False(t, result.Valid)
	assert.Equal(t, "Dish name is required.", result.Error)

	result = ValidateDishForm(DishForm{Name: "Soup", Price: "  "})
	assert.False(t, result.Valid)
	assert.Equal(t, "Dish price is required.", result.Error)

	result = ValidateDishForm(DishForm{Name: "Soup", Price: "0"})
	assert.False(t, result.Valid)
	assert.Equal(t, "Please enter a valid price (greater than 0).", result.Error)

	result = ValidateDishForm(DishForm{Name: "Soup", Price: "not a number"})
	assert.False(t, result.Valid)

	result = ValidateDishForm(DishForm{Name: "Soup", Price: "5.50"})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
}

func TestRestaurantSlices(t *testing.T) {
	restaurants := sampleRestaurants()

	recent := RecentlyViewedRestaurants(restaurants, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "r1", recent[0].ID)
	assert.Equal(t, "r3", recent[2].ID)

	recommended := RecommendedRestaurants(restaurants, 3, 3)
	require.Len(t, recommended, 2)
	assert.Equal(t, "r4", recommended[0].ID)
	assert.Equal(t, "r5", recommended[1].ID)

	assert.Nil(t, RecommendedRestaurants(restaurants, 10, 3))
	assert.Nil(t, RecentlyViewedRestaurants(nil, 3))
	assert.Nil(t, RecentlyViewedRestaurants(restaurants, 0))
}

func TestInitializeRestaurantForm(t *testing.T) {
	restaurant := &models.Restaurant{Name: "Alpha", Address: "1 Main St"}
	user := &models.User{Email: "owner@example.com"}

	form := InitializeRestaurantForm(restaurant, user)
	assert.Equal(t, "Alpha", form.RestaurantName)
	assert.Equal(t, "1 Main St", form.Address)
	assert.Equal(t, "owner@example.com", form.Email)

	empty := InitializeRestaurantForm(nil, nil)
	assert.Equal(t, RestaurantForm{}, empty)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "email already in use", ErrorMessage(&client.APIError{Status: 400, Message: "email already in use"}))
	assert.Equal(t, "Request failed with status 500.", ErrorMessage(&client.APIError{Status: 500}))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}
