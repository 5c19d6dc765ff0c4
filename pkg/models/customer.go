package models

import "time"

// Customer is a person or account a sales rep is working
type Customer struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Company   string     `json:"company,omitempty"`
	Role      string     `json:"role,omitempty"`
	Industry  string     `json:"industry,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Wechat    string     `json:"wechat,omitempty"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// InTrash reports whether the customer has been soft-deleted
func (c *Customer) InTrash() bool {
	return c.DeletedAt != nil
}

// CreateCustomerRequest represents a request to add a customer
type CreateCustomerRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Company  string   `json:"company,omitempty" validate:"max=200"`
	Role     string   `json:"role,omitempty" validate:"max=200"`
	Industry string   `json:"industry,omitempty" validate:"max=200"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty" validate:"max=50"`
	Wechat   string   `json:"wechat,omitempty" validate:"max=100"`
	Address  string   `json:"address,omitempty" validate:"max=500"`
	Notes    string   `json:"notes,omitempty" validate:"max=5000"`
	Tags     []string `json:"tags,omitempty" validate:"max=50,dive,max=50"`
}

// UpdateCustomerRequest is a partial update; nil fields are left untouched
type UpdateCustomerRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Company  *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Role     *string   `json:"role,omitempty" validate:"omitempty,max=200"`
	Industry *string   `json:"industry,omitempty" validate:"omitempty,max=200"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	Wechat   *string   `json:"wechat,omitempty" validate:"omitempty,max=100"`
	Address  *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes    *string   `json:"notes,omitempty" validate:"omitempty,max=5000"`
	Tags     *[]string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=50"`
}

// CustomerFilter narrows a customer listing
type CustomerFilter struct {
	Deleted bool
	Query   string
}

// CustomerWithStage pairs a customer with its resolved pipeline stage
type CustomerWithStage struct {
	Customer
	Stage string `json:"stage"`
}

// CustomerListResponse represents a list of customers
type CustomerListResponse struct {
	Customers []CustomerWithStage `json:"customers"`
	Total     int                 `json:"total"`
}

// CustomerDraft is a customer parsed from free text or voice, not yet saved
type CustomerDraft struct {
	Name     string   `json:"name"`
	Company  string   `json:"company,omitempty"`
	Role     string   `json:"role,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}
