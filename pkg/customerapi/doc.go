// Package customerapi is the REST client for the external Customer API.
//
//	client, err := customerapi.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	c, err := client.Create(ctx, fields)
//	var apiErr *customerapi.APIError
//	if errors.As(err, &apiErr) {
//		// apiErr.Detail is the "detail" message, apiErr.FieldErrors the per-field lists
//	}
//
// Reads (List, Get, Stats) are retried with capped exponential backoff on
// transport errors, 429 and 5xx answers. Writes are sent once. A 404 answer
// matches customer.ErrNotFound with errors.Is.
package customerapi
