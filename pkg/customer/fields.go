package customer

import "fmt"

// Form field names. General is the slot for errors not tied to a single field.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldGeneral   = "general"
)

// Fields lists the input fields in display order.
var Fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone}

// FormFields is the customer form input. Values are kept exactly as entered.
type FormFields struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
}

// Get returns the value of the named field.
func (f FormFields) Get(field string) (string, error) {
	switch field {
	case FieldFirstName:
		return f.FirstName, nil
	case FieldLastName:
		return f.LastName, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPhone:
		return f.Phone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// Set assigns value to the named field.
func (f *FormFields) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}
