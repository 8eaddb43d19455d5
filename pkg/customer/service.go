package customer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/customerdesk/pkg/logger"
)

// Service validates customer input and forwards accepted submissions to the
// Customer API.
type Service struct {
	client    Client
	validator *Validator
	log       *slog.Logger
}

// NewService creates a Service. A nil validator uses the default deny-list
// and a nil logger discards output.
func NewService(client Client, v *Validator, log *slog.Logger) *Service {
	if v == nil {
		v = defaultValidator
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{client: client, validator: v, log: log}
}

// Validator returns the validator used for submissions.
func (s *Service) Validator() *Validator {
	return s.validator
}

// Create validates fields and creates the customer.
// It returns FieldErrors on validation failure and *SubmissionError when the
// Customer API rejects the request.
func (s *Service) Create(ctx context.Context, fields FormFields) (*Customer, error) {
	var created *Customer
	err := NewForm(s.validator, fields).Submit(ctx, MsgCreateFailed, func(ctx context.Context, f FormFields) error {
		var err error
		created, err = s.client.Create(ctx, f)
		return err
	})
	if err != nil {
		s.logSubmission(ctx, "create_customer", nil, err)
		return nil, err
	}
	return created, nil
}

// Update validates fields and replaces the customer identified by id.
func (s *Service) Update(ctx context.Context, id int64, fields FormFields) (*Customer, error) {
	var updated *Customer
	err := NewForm(s.validator, fields).Submit(ctx, MsgUpdateFailed, func(ctx context.Context, f FormFields) error {
		var err error
		updated, err = s.client.Update(ctx, id, f)
		return err
	})
	if err != nil {
		s.logSubmission(ctx, "update_customer", id, err)
		return nil, err
	}
	return updated, nil
}

// List returns one page of customers.
func (s *Service) List(ctx context.Context, params ListParams) (*Page, error) {
	page, err := s.client.List(ctx, params)
	if err != nil {
		s.logFailure(ctx, "list_customers", nil, err)
		return nil, err
	}
	return page, nil
}

// Get returns a single customer.
func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	c, err := s.client.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "get_customer", id, err)
		return nil, err
	}
	return c, nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "delete_customer", id, err)
		return err
	}
	return nil
}

// Stats returns aggregate customer counts.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats, err := s.client.Stats(ctx)
	if err != nil {
		s.logFailure(ctx, "customer_stats", nil, err)
		return nil, err
	}
	return stats, nil
}

// Activate marks a customer as active.
func (s *Service) Activate(ctx context.Context, id int64) (*Customer, error) {
	c, err := s.client.Activate(ctx, id)
	if err != nil {
		s.logFailure(ctx, "activate_customer", id, err)
		return nil, err
	}
	return c, nil
}

// Deactivate marks a customer as inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (*Customer, error) {
	c, err := s.client.Deactivate(ctx, id)
	if err != nil {
		s.logFailure(ctx, "deactivate_customer", id, err)
		return nil, err
	}
	return c, nil
}

// logSubmission logs upstream failures only; validation errors are the
// client's problem and are not logged.
func (s *Service) logSubmission(ctx context.Context, op string, id any, err error) {
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		return
	}
	s.logFailure(ctx, op, id, subErr.Err)
}

func (s *Service) logFailure(ctx context.Context, op string, id any, err error) {
	level := slog.LevelError
	if errors.Is(err, ErrNotFound) {
		level = slog.LevelWarn
	}
	s.log.LogAttrs(ctx, level, "customer api request failed",
		logger.Operation(op),
		logger.CustomerID(id),
		logger.Error(err),
		logger.Component("customer_service"),
	)
}
