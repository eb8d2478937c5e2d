package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// Service wraps one entity repository behind the uniform response envelope.
// Every public method logs a business event before acting and never returns a
// Go error: failures come back as a typed ServiceError.
type Service[T any] struct {
	entity    string
	repo      *repository.Repository[T]
	validator validation.Validator
	logger    *zap.Logger
}

// New creates a service envelope for one entity type.
func New[T any](entity string, repo *repository.Repository[T], validator validation.Validator, logger *zap.Logger) *Service[T] {
	return &Service[T]{
		entity:    entity,
		repo:      repo,
		validator: validator,
		logger:    logger.With(zap.String("entity", entity)),
	}
}

// EntityType returns the entity key this service serves.
func (s *Service[T]) EntityType() string { return s.entity }

// List returns rows matching the query options plus the pre-pagination count.
func (s *Service[T]) List(ctx context.Context, opts query.Options) ListResponse[T] {
	s.logger.Info("business event",
		zap.String("method", "List"),
		zap.Int("filters", len(opts.Filters)))

	data, count, err := s.repo.FindAll(ctx, opts)
	if err != nil {
		return ListResponse[T]{Error: s.logRepoError("List", err)}
	}
	return ListResponse[T]{Data: data, Count: count}
}

// Get fetches one record by id.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) ServiceResponse[T] {
	s.logger.Info("business event",
		zap.String("method", "Get"),
		zap.String("id", id.String()))

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fail[T](s.logRepoError("Get", err))
	}
	return ok(record)
}

// Create validates the full payload and inserts the record.
func (s *Service[T]) Create(ctx context.Context, payload map[string]interface{}) ServiceResponse[T] {
	s.logger.Info("business event",
		zap.String("method", "Create"),
		zap.Int("fields", len(payload)))

	if result := s.validator.ValidateCreate(payload); !result.Valid {
		return fail[T](validationError(result))
	}

	record, err := decodePayload[T](payload)
	if err != nil {
		return fail[T](&ServiceError{Code: ErrCodeValidation, Message: "payload does not match the entity shape", Details: err.Error()})
	}

	created, rerr := s.repo.Create(ctx, record)
	if rerr != nil {
		return fail[T](s.logRepoError("Create", rerr))
	}
	return ok(created)
}

// Update validates the supplied fields only and applies the partial payload.
// A status change riding along in the payload is gated against the entity's
// transition graph, exactly as ChangeStatus gates it.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, payload map[string]interface{}) ServiceResponse[T] {
	s.logger.Info("business event",
		zap.String("method", "Update"),
		zap.String("id", id.String()),
		zap.Int("fields", len(payload)))

	if result := s.validator.ValidateUpdate(payload); !result.Valid {
		return fail[T](validationError(result))
	}

	fields := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		// Identity and bookkeeping columns are never caller-writable.
		if k == "id" || k == "created_at" || k == "updated_at" {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return fail[T](&ServiceError{Code: ErrCodeValidation, Message: "no updatable fields in payload"})
	}

	if next, hasStatus := fields["status"].(string); hasStatus {
		record, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return fail[T](s.logRepoError("Update", err))
		}
		current, cerr := statusOf(record)
		if cerr != nil {
			return fail[T](&ServiceError{Code: ErrCodeInternal, Message: "entity has no status field", Details: cerr.Error()})
		}
		if next != current {
			if result := s.validator.ValidateStatusTransition(current, next); !result.Valid {
				return fail[T](transitionError(result))
			}
		}
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return fail[T](s.logRepoError("Update", err))
	}
	return ok(updated)
}

// ChangeStatus validates the hop against the entity's transition graph and
// persists the new status.
func (s *Service[T]) ChangeStatus(ctx context.Context, id uuid.UUID, next string) ServiceResponse[T] {
	s.logger.Info("business event",
		zap.String("method", "ChangeStatus"),
		zap.String("id", id.String()),
		zap.String("next_status", next))

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fail[T](s.logRepoError("ChangeStatus", err))
	}
	current, cerr := statusOf(record)
	if cerr != nil {
		return fail[T](&ServiceError{Code: ErrCodeInternal, Message: "entity has no status field", Details: cerr.Error()})
	}

	if result := s.validator.ValidateStatusTransition(current, next); !result.Valid {
		return fail[T](transitionError(result))
	}

	updated, uerr := s.repo.Update(ctx, id, map[string]interface{}{"status": next})
	if uerr != nil {
		return fail[T](s.logRepoError("ChangeStatus", uerr))
	}
	return ok(updated)
}

// Delete removes one record. Deletion is unconditional at this layer.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) ServiceResponse[struct{}] {
	s.logger.Info("business event",
		zap.String("method", "Delete"),
		zap.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		return fail[struct{}](s.logRepoError("Delete", err))
	}
	return ok(&struct{}{})
}

// Count returns the number of records matching the filters.
func (s *Service[T]) Count(ctx context.Context, filters []query.Filter) ServiceResponse[int64] {
	s.logger.Info("business event",
		zap.String("method", "Count"),
		zap.Int("filters", len(filters)))

	count, err := s.repo.Count(ctx, filters)
	if err != nil {
		return fail[int64](s.logRepoError("Count", err))
	}
	return ok(&count)
}

func (s *Service[T]) logRepoError(method string, err error) *ServiceError {
	serr := handleRepositoryError(err)
	s.logger.Warn("repository error",
		zap.String("method", method),
		zap.String("code", string(serr.Code)),
		zap.Error(err))
	return serr
}

// decodePayload converts a validated payload map into the entity struct via
// its JSON field names.
func decodePayload[T any](payload map[string]interface{}) (*T, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// statusOf reads the status field of an entity through its JSON shape.
func statusOf[T any](record *T) (string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	status, okStatus := fields["status"].(string)
	if !okStatus {
		return "", fmt.Errorf("record has no string status field")
	}
	return status, nil
}
