package order

import (
	"time"

	"tripmanager/internal/core/domain/model/kernel"
)

// Filter is the query shape used when listing order collections.
// Every field is optional; a nil field places no constraint. Listing results
// are always ordered by identifier ascending, whatever the filter.
//
// The date fields are inclusive-overlap filters: StartDate matches an order
// whose departure OR return date is on or after it, EndDate matches an order
// whose return OR departure date is on or before it.
type Filter struct {
	Status        *Status
	StartDate     *time.Time
	EndDate       *time.Time
	DestinationID *kernel.UUID
	OwnerID       *kernel.UUID
}

// WithOwner returns a copy of the filter scoped to the given owner.
// Used to force solicitors onto their own orders regardless of the filters
// they supplied.
func (f Filter) WithOwner(ownerID kernel.UUID) Filter {
	f.OwnerID = &ownerID
	return f
}

// Matches reports whether the given order satisfies every constraint of the
// filter. The storage adapter expresses the same predicate in SQL; this form
// exists for in-memory collections.
func (f Filter) Matches(o *Order) bool {
	if f.Status != nil && o.Status() != *f.Status {
		return false
	}

	if f.StartDate != nil &&
		o.DepartureDate().Before(*f.StartDate) && o.ReturnDate().Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil &&
		o.ReturnDate().After(*f.EndDate) && o.DepartureDate().After(*f.EndDate) {
		return false
	}

	if f.DestinationID != nil && !o.DestinationID().IsEqual(*f.DestinationID) {
		return false
	}

	if f.OwnerID != nil && !o.OwnerID().IsEqual(*f.OwnerID) {
		return false
	}

	return true
}
