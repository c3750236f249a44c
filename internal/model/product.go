package model

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultProductImage is the placeholder shown for products without an upload.
const DefaultProductImage = "https://cdn.shopify.com/s/files/1/0483/7484/1507/products/KodoMillet2_1080x.jpg?v=1667813393"

// Image is a product's image attribute. It is either the default placeholder
// URL (no upload yet) or the metadata of an uploaded file. On the wire and in
// the database it serialises as a bare URL string in the first case and as an
// object in the second.
type Image struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
	FileSize string `json:"fileSize"`
}

// IsZero reports whether no file has been attached.
func (img Image) IsZero() bool {
	return img == Image{}
}

// MarshalJSON emits the placeholder URL when no file is attached.
func (img Image) MarshalJSON() ([]byte, error) {
	if img.IsZero() {
		return json.Marshal(DefaultProductImage)
	}
	type alias Image
	return json.Marshal(alias(img))
}

// UnmarshalJSON accepts both the bare URL form and the object form.
func (img *Image) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*img = Image{}
		return nil
	}
	type alias Image
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*img = Image(a)
	return nil
}

// Product represents an inventory item owned by a user.
type Product struct {
	ID              uuid.UUID `json:"_id" db:"id"`
	UserID          uuid.UUID `json:"userId" db:"user_id"`
	Name            string    `json:"name" db:"name"`
	SKU             string    `json:"sku" db:"sku"`
	Category        string    `json:"category" db:"category"`
	Quantity        string    `json:"quantity" db:"quantity"`
	PackSize        string    `json:"packSize" db:"pack_size"`
	Unit            string    `json:"unit" db:"unit"`
	Price           string    `json:"price" db:"price"`
	Discount        string    `json:"discount,omitempty" db:"discount"`
	DiscountedPrice string    `json:"discountedPrice" db:"discounted_price"`
	Description     string    `json:"description" db:"description"`
	Image           Image     `json:"image" db:"image"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// ComputeDiscountedPrice derives the discounted price from the price and
// discount fields. An absent discount counts as zero. Called on every write
// that persists a product.
func (p *Product) ComputeDiscountedPrice() {
	price, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		p.DiscountedPrice = p.Price
		return
	}

	discount := 0.0
	if p.Discount != "" {
		discount, err = strconv.ParseFloat(p.Discount, 64)
		if err != nil {
			discount = 0
		}
	}

	p.DiscountedPrice = strconv.FormatFloat(price*(1-discount/100), 'f', -1, 64)
}

// ProductInput carries the writable product fields from a multipart form.
// Update treats an empty field as "leave unchanged".
type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Quantity    string
	PackSize    string
	Unit        string
	Price       string
	Discount    string
	Description string
	Image       *Image
}

// DeleteProductResponse confirms a hard delete and returns the removed record.
type DeleteProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// UpdateProductResponse wraps the updated record.
type UpdateProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
