package order

import "fmt"

// ValidationError describes a checkout precondition failure
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCheckout enforces the checkout preconditions. Contact fields are
// checked before cart emptiness, so a direct checkout call on an empty cart
// still reports missing contact info first.
func ValidateCheckout(contactPhone, contactLocation string, cartEmpty bool) error {
	if contactPhone == "" {
		return ValidationError{
			Field:   "contact_phone",
			Message: "contact phone is required",
		}
	}

	if contactLocation == "" {
		return ValidationError{
			Field:   "contact_location",
			Message: "contact location is required",
		}
	}

	if cartEmpty {
		return ValidationError{
			Field:   "items",
			Message: "cart is empty",
		}
	}

	return nil
}
