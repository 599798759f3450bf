package query

// Key addresses one cached query result: operation name plus parameters,
// joined with "/" so a bare operation name doubles as an invalidation prefix
// for every parameter variant.
type Key string

const (
	opCurrentUser       Key = "getCurrentUser"
	opRestaurants       Key = "getRestaurants"
	opRestaurant        Key = "getRestaurant"
	opRestaurantByOwner Key = "getRestaurantByOwner"
	opFoodItems         Key = "getFoodItems"
	opFoodItem          Key = "getFoodItem"
	opCart              Key = "getCart"
)

func CurrentUserKey() Key { return opCurrentUser }

func RestaurantsKey() Key { return opRestaurants }

func RestaurantByOwnerKey() Key { return opRestaurantByOwner }

func CartKey() Key { return opCart }

func RestaurantKey(id string) Key { return opRestaurant + "/" + Key(id) }

func FoodItemsKey(restaurantID string) Key { return opFoodItems + "/" + Key(restaurantID) }

func FoodItemKey(id string) Key { return opFoodItem + "/" + Key(id) }
