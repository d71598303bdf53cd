// Package destination contains the Destination reference entity.
// Destinations are administered externally and are read-only to this core:
// orders reference them, nothing here mutates them.
package destination

import (
	"errors"
	"fmt"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/errs"
)

var (
	// ErrDestinationIsNotConstructed is returned when a Destination instance
	// was not created through the NewDestination factory method.
	ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination constructor")
)

const iataCodeLength = 3

// Destination is an immutable reference value attached to orders: a city, its
// IATA airport code, and the country.
type Destination struct {
	id       kernel.UUID
	city     string
	iataCode string
	country  string

	isConstructed bool
}

// NewDestination creates a new Destination instance with validation.
// The IATA code must be exactly three characters.
func NewDestination(id kernel.UUID, city string, iataCode string, country string) (*Destination, error) {
	d := &Destination{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCity(city),
		d.setIataCode(iataCode),
		d.setCountry(country),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Destination instance was properly constructed through NewDestination.
func (d *Destination) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDestinationIsNotConstructed
	}

	return nil
}

// IsEqual compares two destinations by their unique identifiers.
func (d *Destination) IsEqual(other *Destination) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the destination's unique identifier.
func (d *Destination) ID() kernel.UUID {
	return d.id
}

// City returns the destination city.
func (d *Destination) City() string {
	return d.city
}

// IataCode returns the three-letter IATA airport code.
func (d *Destination) IataCode() string {
	return d.iataCode
}

// Country returns the destination country.
func (d *Destination) Country() string {
	return d.country
}

func (d *Destination) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Destination) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	d.city = city
	return nil
}

func (d *Destination) setIataCode(iataCode string) error {
	if len(iataCode) != iataCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"iata code is invalid",
			fmt.Errorf("%q is not a three-letter IATA code", iataCode),
		)
	}
	d.iataCode = iataCode
	return nil
}

func (d *Destination) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	d.country = country
	return nil
}
