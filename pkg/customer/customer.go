package customer

import (
	"context"
	"time"
)

// Customer is a customer record as returned by the Customer API.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is one page of a paginated customer listing.
type Page struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Customer `json:"results"`
}

// Stats holds aggregate customer counts.
type Stats struct {
	TotalCustomers    int `json:"total_customers"`
	ActiveCustomers   int `json:"active_customers"`
	InactiveCustomers int `json:"inactive_customers"`
}

// ListParams filters and paginates a customer listing.
// Zero values are omitted from the upstream request.
type ListParams struct {
	Page     int    `query:"page"`
	Search   string `query:"search"`
	IsActive *bool  `query:"is_active"`
	Ordering string `query:"ordering"`
}

// Client is the Customer API.
type Client interface {
	List(ctx context.Context, params ListParams) (*Page, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, fields FormFields) (*Customer, error)
	Update(ctx context.Context, id int64, fields FormFields) (*Customer, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*Stats, error)
	Activate(ctx context.Context, id int64) (*Customer, error)
	Deactivate(ctx context.Context, id int64) (*Customer, error)
}
