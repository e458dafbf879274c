package sqlite

// Table and column names of the restaurants table.
const (
	RestaurantsTable            = "restaurants"
	RestaurantColumnID          = "_id"
	RestaurantColumnName        = "name"
	RestaurantColumnDescription = "description"
	RestaurantColumnImageResID  = "image_res_id"
	RestaurantColumnImagePath   = "image_path"
	RestaurantColumnAddress     = "address"
)

// Table and column names of the products table.
const (
	ProductsTable             = "products"
	ProductColumnID           = "_id"
	ProductColumnName         = "name"
	ProductColumnRestaurantID = "restaurant_id"
	ProductColumnUnit         = "unit"
	ProductColumnQuantity     = "quantity"
)
