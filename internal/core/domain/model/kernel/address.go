package kernel

import (
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created via the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// addressSeparator joins address components into the single formatted string
// that delivery records persist and downstream services consume.
const addressSeparator = ", "

// Address is an immutable value object describing a delivery destination.
// It holds the raw street/city/state/postal components received from order
// events and knows how to render them as the single formatted address string
// used everywhere downstream.
//
// The zero value of Address is invalid and will fail validation.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Galle Rd", "Colombo", "Western", "00300")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(addr.Format()) // "12 Galle Rd, Colombo, Western, 00300"
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address from its components.
// Street and city are required; state and postal code may be empty since some
// upstream order sources omit them.
func NewAddress(street, city, state, postalCode string) (Address, error) {
	if strings.TrimSpace(street) == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// City returns the city component. Driver directory lookups key on this value.
func (a Address) City() string {
	return a.city
}

// State returns the state component.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code component.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Format renders the address as the canonical single-line form
// "street, city, state, postalCode".
func (a Address) Format() string {
	return strings.Join([]string{a.street, a.city, a.state, a.postalCode}, addressSeparator)
}

// CityOf extracts the city component back out of a formatted address string.
// The formatted form always carries the city as the second comma-separated
// segment; anything shorter is not an address this system produced.
func CityOf(formatted string) (string, error) {
	parts := strings.Split(formatted, addressSeparator)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return "", errs.NewValueIsInvalidError("deliveryAddress")
	}
	return strings.TrimSpace(parts[1]), nil
}
