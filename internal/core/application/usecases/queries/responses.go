package queries

import (
	"time"

	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/core/domain/model/user"
)

// UserResponse represents user information in query results.
type UserResponse struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// DestinationResponse represents a destination catalog entry in query results.
type DestinationResponse struct {
	ID       string
	City     string
	IataCode string
	Country  string
}

// OrderResponse represents a trip order in query results, with its owner and
// destination resolved.
type OrderResponse struct {
	ID            string
	Owner         UserResponse
	Destination   DestinationResponse
	DepartureDate time.Time
	ReturnDate    time.Time
	ApprovedAt    *time.Time
	Status        string
}

// NewUserResponse maps a user entity to its query representation.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID().String(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

// NewDestinationResponse maps a destination entity to its query representation.
func NewDestinationResponse(d *destination.Destination) DestinationResponse {
	return DestinationResponse{
		ID:       d.ID().String(),
		City:     d.City(),
		IataCode: d.IataCode(),
		Country:  d.Country(),
	}
}

// NewOrderResponse maps an order aggregate to its query representation.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID().String(),
		Owner:         NewUserResponse(o.Owner()),
		Destination:   NewDestinationResponse(o.Destination()),
		DepartureDate: o.DepartureDate(),
		ReturnDate:    o.ReturnDate(),
		ApprovedAt:    o.ApprovedAt(),
		Status:        o.Status().String(),
	}
}
