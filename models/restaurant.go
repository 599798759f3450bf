package models

type Restaurant struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Owner     *User      `json:"owner,omitempty"`
	FoodItems []FoodItem `json:"foodItems,omitempty"`
}

type FoodItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	InStock      bool    `json:"inStock"`
}

type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateRestaurantRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

type CreateFoodItemRequest struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	InStock      *bool   `json:"inStock,omitempty"`
}

type UpdateFoodItemRequest struct {
	Name    *string  `json:"name,omitempty"`
	Price   *float64 `json:"price,omitempty"`
	InStock *bool    `json:"inStock,omitempty"`
}
