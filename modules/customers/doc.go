// Package customers is the HTTP module for customer management.
//
// Routes, relative to the /customers mount point:
//
//	GET    /                  list (query: page, search, is_active, ordering)
//	POST   /                  create (JSON or urlencoded form)
//	GET    /stats             aggregate counts
//	POST   /validate          validate the form, or one field with ?field=
//	GET    /{id}              fetch one customer
//	PUT    /{id}              update (JSON or urlencoded form)
//	DELETE /{id}              delete
//	POST   /{id}/activate     mark active
//	POST   /{id}/deactivate   mark inactive
//
// Validation failures answer 422 with per-field messages in error.details
// and per-field aria-invalid / aria-describedby hints in meta.aria.
// Upstream failures while saving answer 502 with the HTML-encoded upstream
// detail in error.details.general.
package customers
