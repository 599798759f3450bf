// Package utils holds the pure view helpers: no I/O, no network, just
// shaping raw entities into display-ready values.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/themenu/client"
	"github.com/ray-remotestate/themenu/models"
)

const defaultDisplayName = "User"

// FindRestaurantByOwner returns the first restaurant owned by userID, nil
// when userID is empty or nothing matches. The backend promises at most one
// restaurant per owner; a second match means that invariant broke, so it is
// logged before first-match semantics hide it.
func FindRestaurantByOwner(restaurants []models.Restaurant, userID string) *models.Restaurant {
	if userID == "" || len(restaurants) == 0 {
		return nil
	}
	var found *models.Restaurant
	for i := range restaurants {
		if restaurants[i].OwnerID != userID {
			continue
		}
		if found != nil {
			logrus.WithField("userId", userID).Warn("multiple restaurants share one owner")
			return found
		}
		found = &restaurants[i]
	}
	return found
}

// Username renders "first last" from the user when present, else the cached
// display name, else a default literal.
func Username(user *models.User, cached string) string {
	if user != nil {
		return user.FirstName + " " + user.LastName
	}
	if cached != "" {
		return cached
	}
	return defaultDisplayName
}

func Greeting(accountType models.AccountType) string {
	if accountType == models.AccountTypeRestaurant {
		return "Hello Restaurant Owner!"
	}
	return "Hello Customer!"
}

func GreetingPhrase(accountType models.AccountType) string {
	if accountType == models.AccountTypeRestaurant {
		return "Your customers are ready to order"
	}
	return "What would you like to order?"
}

// FormatPrice renders any numeric-ish value as a two-decimal dollar string.
// Non-numeric input renders "$0.00": display paths must still render when
// handed partial or invalid data, and ValidateDishForm is the strict gate on
// the input side.
func FormatPrice(value any) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", v)
	case float32:
		return fmt.Sprintf("$%.2f", v)
	case int:
		return fmt.Sprintf("$%.2f", float64(v))
	case int64:
		return fmt.Sprintf("$%.2f", float64(v))
	case json.Number:
		if parsed, err := v.Float64(); err == nil {
			return fmt.Sprintf("$%.2f", parsed)
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return fmt.Sprintf("$%.2f", parsed)
		}
	}
	return "$0.00"
}

type DishForm struct {
	Name        string
	Price       string
	Description string
}

type DishValidation struct {
	Valid bool
	Error string
}

// ValidateDishForm checks a dish form before any request is sent. Checks are
// ordered and the first failure wins: name presence, price presence, price
// numeric and positive.
func ValidateDishForm(form DishForm) DishValidation {
	if strings.TrimSpace(form.Name) == "" {
		return DishValidation{Error: "Dish name is required."}
	}
	if strings.TrimSpace(form.Price) == "" {
		return DishValidation{Error: "Dish price is required."}
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || price <= 0 {
		return DishValidation{Error: "Please enter a valid price (greater than 0)."}
	}
	return DishValidation{Valid: true}
}

// RecentlyViewedRestaurants returns the first count restaurants in list
// order. Positional only; nothing here tracks actual viewing history.
func RecentlyViewedRestaurants(restaurants []models.Restaurant, count int) []models.Restaurant {
	return sliceRange(restaurants, 0, count)
}

// RecommendedRestaurants returns count restaurants starting at start, in
// list order. Positional only; not a recommendation algorithm.
func RecommendedRestaurants(restaurants []models.Restaurant, start, count int) []models.Restaurant {
	return sliceRange(restaurants, start, count)
}

// sliceRange clamps to the list bounds; no wraparound.
func sliceRange(restaurants []models.Restaurant, start, count int) []models.Restaurant {
	if start < 0 {
		start = 0
	}
	if start >= len(restaurants) || count <= 0 {
		return nil
	}
	end := start + count
	if end > len(restaurants) {
		end = len(restaurants)
	}
	return restaurants[start:end]
}

type RestaurantForm struct {
	RestaurantName string
	Address        string
	Email          string
}

// InitializeRestaurantForm prefills the profile form from whatever data is
// already loaded.
func InitializeRestaurantForm(restaurant *models.Restaurant, user *models.User) RestaurantForm {
	var form RestaurantForm
	if restaurant != nil {
		form.RestaurantName = restaurant.Name
		form.Address = restaurant.Address
	}
	if user != nil {
		form.Email = user.Email
	}
	return form
}

// ErrorMessage converts any failure into a user-facing string: the server's
// message when there is one, then the HTTP status text, then a generic
// fallback. Errors never surface raw to the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("Request failed with status %d.", apiErr.Status)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}
