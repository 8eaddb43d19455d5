// Package customer holds the customer domain: the form fields, the field
// validation rules, the form session and the service that forwards accepted
// submissions to the Customer API.
//
// Each field is checked by an ordered rule group and reports at most one
// message. Required comes first, then length, then format:
//
//	err := customer.Validate(customer.FormFields{FirstName: "A"})
//	var fe customer.FieldErrors
//	if errors.As(err, &fe) {
//		fe.Get(customer.FieldFirstName) // "First name must be at least 2 characters"
//	}
//
// Upstream failures are reported in the general slot with the upstream
// detail HTML-encoded, so the message can be displayed without further
// escaping.
package customer
