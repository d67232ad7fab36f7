package identity

import (
	"time"

	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// RegisterRequest represents a request to create a user account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=200"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh attempt
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// CheckEmailRequest asks whether an email is already registered
type CheckEmailRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// EmailExistsResponse reports the result of an email lookup
type EmailExistsResponse struct {
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}

// CountResponse reports the total number of records for an entity
type CountResponse struct {
	TotalCount int64 `json:"total_count"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse carries the authenticated user and the issued token pair
type LoginResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// CreateAddressRequest represents a request to create a shipping address
type CreateAddressRequest struct {
	Street    string    `json:"street" binding:"required,min=1,max=200"`
	City      string    `json:"city" binding:"max=100"`
	StateID   uuid.UUID `json:"state_id" binding:"required"`
	CountryID uuid.UUID `json:"country_id" binding:"required"`
	Zipcode   string    `json:"zipcode" binding:"max=20"`
	Phones    string    `json:"phones" binding:"max=100"`
}

// UpdateAddressRequest represents a request to update a shipping address
type UpdateAddressRequest struct {
	Street    *string    `json:"street" binding:"omitempty,min=1,max=200"`
	City      *string    `json:"city" binding:"omitempty,max=100"`
	StateID   *uuid.UUID `json:"state_id"`
	CountryID *uuid.UUID `json:"country_id"`
	Zipcode   *string    `json:"zipcode" binding:"omitempty,max=20"`
	Phones    *string    `json:"phones" binding:"omitempty,max=100"`
}

// AddressResponse represents a shipping address in API responses
type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	StateID   uuid.UUID `json:"state_id"`
	CountryID uuid.UUID `json:"country_id"`
	Zipcode   string    `json:"zipcode"`
	Phones    string    `json:"phones"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilter represents filter options for identity listings
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (f ListFilter) domainFilter() shared.Filter {
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}.Normalize()
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain Users to UserResponses
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(&u)
	}
	return responses
}

// ToAddressResponse converts a domain Address to AddressResponse
func ToAddressResponse(a *identity.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Street:    a.Street,
		City:      a.City,
		StateID:   a.StateID,
		CountryID: a.CountryID,
		Zipcode:   a.Zipcode,
		Phones:    a.Phones,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAddressResponses converts a slice of domain Addresses to AddressResponses
func ToAddressResponses(addresses []identity.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i, a := range addresses {
		responses[i] = ToAddressResponse(&a)
	}
	return responses
}
