package app

// MediaAttachment represents one media file attached to a product.
// Its lifecycle is owned entirely by the media service; the gateway only reads it.
type MediaAttachment struct {
	// Unique id of the attachment in the media service.
	ID string `json:"id"`

	// Public URL of the stored file.
	ImagePath string `json:"imagePath"`

	// The product this attachment belongs to (many-to-one).
	ProductID string `json:"productId"`
}

// Product represents a catalog product with a one-to-many relationship to MediaAttachments.
type Product struct {
	// Unique product id in the product service.
	ID string `json:"id"`

	Name string `json:"name"`

	Price float64 `json:"price"`

	Quantity int `json:"quantity"`

	Description string `json:"description"`

	// The seller that owns this product.
	UserID string `json:"userId"`

	// Attachments fetched from the media service, populated in memory by the
	// Aggregator for the duration of one page view. Never sent back to any service.
	Images []MediaAttachment `json:"images"`
}

// ProductInput carries the fields a seller may set when creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}
