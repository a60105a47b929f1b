package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000

	// DefaultImageURL stands in for listings posted without a picture.
	DefaultImageURL = "https://via.placeholder.com/300"
)

var (
	ErrTitleRequired      = errors.New("product title is required")
	ErrTitleTooLong       = fmt.Errorf("product title cannot exceed %d characters", MaxTitleLength)
	ErrNegativePrice      = errors.New("product price cannot be negative")
	ErrDescriptionTooLong = fmt.Errorf("product description cannot exceed %d characters", MaxDescriptionLength)
)

// Product is a marketplace listing. Seller name is denormalized at creation
// so listings render without a join.
type Product struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	ImageURL    string    `db:"image_url"`
	SellerID    string    `db:"seller_id"`
	SellerName  string    `db:"seller_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewProduct validates and normalizes a listing. The id is assigned by the
// store on insert.
func NewProduct(sellerID, sellerName, title, description string, price float64, imageURL string) (Product, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	imageURL = strings.TrimSpace(imageURL)

	if err := validate(title, description, price); err != nil {
		return Product{}, err
	}
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	return Product{
		Title:       title,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		SellerID:    sellerID,
		SellerName:  sellerName,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ApplyUpdate merges a partial edit into the listing, revalidating the
// result. Nil fields are left untouched.
func (p *Product) ApplyUpdate(title, description *string, price *float64, imageURL *string) error {
	next := *p
	if title != nil {
		next.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		next.Description = strings.TrimSpace(*description)
	}
	if price != nil {
		next.Price = *price
	}
	if imageURL != nil {
		next.ImageURL = strings.TrimSpace(*imageURL)
		if next.ImageURL == "" {
			next.ImageURL = DefaultImageURL
		}
	}
	if err := validate(next.Title, next.Description, next.Price); err != nil {
		return err
	}
	*p = next
	return nil
}

func validate(title, description string, price float64) error {
	switch {
	case title == "":
		return ErrTitleRequired
	case len(title) > MaxTitleLength:
		return ErrTitleTooLong
	case price < 0:
		return ErrNegativePrice
	case len(description) > MaxDescriptionLength:
		return ErrDescriptionTooLong
	}
	return nil
}
