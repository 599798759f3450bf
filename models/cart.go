package models

// Cart is scoped to a single restaurant at a time; the backend enforces it,
// the client just carries the association.
type Cart struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	RestaurantID string     `json:"restaurantId,omitempty"`
	Items        []CartItem `json:"items"`
}

type CartItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	FoodID       string `json:"foodId"`
	Quantity     int    `json:"quantity"`
	UserNote     string `json:"userNote,omitempty"`
}

type AddCartItemRequest struct {
	RestaurantID string `json:"restaurantId"`
	FoodID       string `json:"foodId"`
	Quantity     int    `json:"quantity"`
	UserNote     string `json:"userNote,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity *int    `json:"quantity,omitempty"`
	UserNote *string `json:"userNote,omitempty"`
}

type CheckoutResponse struct {
	Message string `json:"message"`
}
