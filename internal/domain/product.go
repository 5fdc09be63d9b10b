package domain

// Product is the catalog resource as returned to clients. The id is the
// formatted form of the store-generated document id.
//
// swagger:model
type Product struct {
	// The store-generated id of the product
	//
	// required: true
	// example: 66f2a9c3b4de0a7c9d1f2e3a
	ID string `json:"id"`

	// The title of the product
	//
	// required: true
	// example: Wireless Headphones
	Title string `json:"title"`

	// The description of the product, null when none was given
	Description *string `json:"description"`

	// The price of the product
	//
	// required: true
	// min: 0
	// example: 99.99
	Price float64 `json:"price"`

	// The category of the product
	//
	// required: true
	// example: Electronics
	Category string `json:"category"`

	// Whether the product is currently in stock
	InStock bool `json:"in_stock"`

	// The main image URL of the product, null when none was given
	Image *string `json:"image"`

	// The average rating of the product
	//
	// min: 0
	// max: 5
	Rating float64 `json:"rating"`
}

// CreateProduct is the payload accepted when adding a product to the
// catalog. The id is assigned by the store and cannot be supplied here.
// InStock is a pointer so that an omitted field can default to true
// instead of false.
type CreateProduct struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	InStock     *bool   `json:"in_stock"`
	Image       *string `json:"image"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

// ProductFilter narrows a catalog listing. Query matches the title as a
// case-insensitive substring, Category is an exact match; both apply
// together when set. A Limit of zero or less means "use the default".
type ProductFilter struct {
	Query    string
	Category string
	Limit    int64
}
