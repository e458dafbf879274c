package api

// Restaurant is the wire form of a restaurant.
type Restaurant struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageResId  int64  `json:"image_res_id"`
	ImagePath   string `json:"image_path,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Product is the wire form of a product. LowStock is set by the server.
type Product struct {
	Id           int64   `json:"id"`
	RestaurantId int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	LowStock     bool    `json:"low_stock"`
}

type ListRestaurantsRequest struct{}

type ListRestaurantsResponse struct {
	Restaurants []*Restaurant `json:"restaurants"`
}

type GetRestaurantRequest struct {
	RestaurantId int64 `json:"restaurant_id"`
}

type GetRestaurantResponse struct {
	Restaurant *Restaurant `json:"restaurant"`
}

type AddRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	ImagePath   string `json:"image_path,omitempty"`
}

type AddRestaurantResponse struct {
	Restaurant *Restaurant `json:"restaurant"`
}

type DeleteRestaurantRequest struct {
	RestaurantId int64 `json:"restaurant_id"`
}

type DeleteRestaurantResponse struct{}

// RestoreRestaurantRequest re-inserts a deleted restaurant under a new id.
// Its id names the deleted row; products left behind by it move to the new one.
type RestoreRestaurantRequest struct {
	Restaurant *Restaurant `json:"restaurant"`
}

type RestoreRestaurantResponse struct {
	Restaurant *Restaurant `json:"restaurant"`
}

// UploadPhotoRequest carries JPEG bytes (base64 in JSON).
type UploadPhotoRequest struct {
	Data []byte `json:"data"`
}

type UploadPhotoResponse struct {
	Path string `json:"path"`
}

type ListProductsRequest struct {
	RestaurantId int64 `json:"restaurant_id"`
}

type ListProductsResponse struct {
	Products          []*Product `json:"products"`
	LowStockThreshold float64    `json:"low_stock_threshold"`
	AlertsRaised      int32      `json:"alerts_raised"`
}

type AddProductRequest struct {
	RestaurantId int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
}

type AddProductResponse struct {
	Product *Product `json:"product"`
}

// AddProductsRequest inserts every product or none.
type AddProductsRequest struct {
	RestaurantId int64      `json:"restaurant_id"`
	Products     []*Product `json:"products"`
}

type AddProductsResponse struct {
	Products []*Product `json:"products"`
}

// AdjustQuantityRequest changes a quantity by Delta, which must be +1 or -1.
type AdjustQuantityRequest struct {
	ProductId int64   `json:"product_id"`
	Delta     float64 `json:"delta"`
}

type AdjustQuantityResponse struct {
	Product *Product `json:"product"`
}

type DeleteProductRequest struct {
	ProductId int64 `json:"product_id"`
}

type DeleteProductResponse struct{}

type GeocodeRequest struct {
	Address string `json:"address"`
}

type GeocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
	Uri         string  `json:"uri"`
}

// MapRestaurantsRequest carries the restaurants to show on one map.
type MapRestaurantsRequest struct {
	Restaurants []*Restaurant `json:"restaurants"`
}

type MapRestaurantsResponse struct {
	Uri     string `json:"uri"`
	Markers int32  `json:"markers"`
}
