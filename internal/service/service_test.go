package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// sampleRecord is a minimal statusful entity for exercising the envelope
// against an in-memory database.
type sampleRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) EntityType() string { return "sample" }

func (m *MockValidator) ValidateCreate(payload map[string]interface{}) validation.Result {
	args := m.Called(payload)
	return args.Get(0).(validation.Result)
}

func (m *MockValidator) ValidateUpdate(payload map[string]interface{}) validation.Result {
	args := m.Called(payload)
	return args.Get(0).(validation.Result)
}

func (m *MockValidator) ValidateStatusTransition(current, next string) validation.Result {
	args := m.Called(current, next)
	return args.Get(0).(validation.Result)
}

func failedResult(field, code string) validation.Result {
	return validation.Result{
		Valid:  false,
		Errors: []validation.ValidationError{{Field: field, Message: field + " rejected", Code: code}},
	}
}

func newTestService(t *testing.T) (*Service[sampleRecord], *MockValidator) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&sampleRecord{}))

	validator := new(MockValidator)
	svc := New("sample", repository.New[sampleRecord](db), validator, zap.NewNop())
	return svc, validator
}

func seedRecord(t *testing.T, svc *Service[sampleRecord], record sampleRecord) sampleRecord {
	t.Helper()
	created, err := svc.repo.Create(context.Background(), &record)
	assert.NoError(t, err)
	return *created
}

func TestServiceCreate(t *testing.T) {
	svc, validator := newTestService(t)
	payload := map[string]interface{}{
		"id":     uuid.New().String(),
		"name":   "maize listing",
		"status": "pending",
		"price":  120.5,
	}
	validator.On("ValidateCreate", payload).Return(validation.OK())

	resp := svc.Create(context.Background(), payload)

	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, "maize listing", resp.Data.Name)
	assert.Equal(t, 120.5, resp.Data.Price)
	validator.AssertExpectations(t)
}

func TestServiceCreateValidationFailure(t *testing.T) {
	svc, validator := newTestService(t)
	payload := map[string]interface{}{"name": ""}
	validator.On("ValidateCreate", payload).Return(failedResult("name", validation.CodeRequired))

	resp := svc.Create(context.Background(), payload)

	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)

	count, err := svc.repo.Count(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceCreateShapeMismatch(t *testing.T) {
	svc, validator := newTestService(t)
	payload := map[string]interface{}{"price": "not a number"}
	validator.On("ValidateCreate", payload).Return(validation.OK())

	resp := svc.Create(context.Background(), payload)

	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
}

func TestServiceGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	resp := svc.Get(context.Background(), uuid.New())

	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestServiceUpdatePartial(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending", Price: 100})
	payload := map[string]interface{}{"price": 90.0}
	validator.On("ValidateUpdate", payload).Return(validation.OK())

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.Nil(t, resp.Error)
	assert.Equal(t, 90.0, resp.Data.Price)
	assert.Equal(t, "maize", resp.Data.Name)
}

func TestServiceUpdateStripsImmutableFields(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending"})
	payload := map[string]interface{}{"id": uuid.New().String(), "created_at": "2020-01-01"}
	validator.On("ValidateUpdate", payload).Return(validation.OK())

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "no updatable fields in payload", resp.Error.Message)
}

func TestServiceUpdateValidationFailure(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending", Price: 100})
	payload := map[string]interface{}{"price": -5.0}
	validator.On("ValidateUpdate", payload).Return(failedResult("price", validation.CodeAmountTooLow))

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.Equal(t, ErrCodeValidation, resp.Error.Code)

	unchanged := svc.Get(context.Background(), record.ID)
	assert.Equal(t, 100.0, unchanged.Data.Price)
}

func TestServiceUpdateGatesStatusChange(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "delivered"})
	payload := map[string]interface{}{"status": "pending"}
	validator.On("ValidateUpdate", payload).Return(validation.OK())
	validator.On("ValidateStatusTransition", "delivered", "pending").
		Return(failedResult("status", validation.CodeInvalidTransition))

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidTransition, resp.Error.Code)
	validator.AssertExpectations(t)

	unchanged := svc.Get(context.Background(), record.ID)
	assert.Equal(t, "delivered", unchanged.Data.Status)
}

func TestServiceUpdateAllowsValidStatusChange(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending", Price: 100})
	payload := map[string]interface{}{"status": "active", "price": 110.0}
	validator.On("ValidateUpdate", payload).Return(validation.OK())
	validator.On("ValidateStatusTransition", "pending", "active").Return(validation.OK())

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.Nil(t, resp.Error)
	assert.Equal(t, "active", resp.Data.Status)
	assert.Equal(t, 110.0, resp.Data.Price)
	validator.AssertExpectations(t)
}

func TestServiceUpdateSameStatusSkipsTransitionCheck(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "active", Price: 100})
	payload := map[string]interface{}{"status": "active", "price": 95.0}
	validator.On("ValidateUpdate", payload).Return(validation.OK())

	resp := svc.Update(context.Background(), record.ID, payload)

	assert.Nil(t, resp.Error)
	assert.Equal(t, 95.0, resp.Data.Price)
	validator.AssertNotCalled(t, "ValidateStatusTransition", mock.Anything, mock.Anything)
}

func TestServiceChangeStatus(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending"})
	validator.On("ValidateStatusTransition", "pending", "active").Return(validation.OK())

	resp := svc.ChangeStatus(context.Background(), record.ID, "active")

	assert.Nil(t, resp.Error)
	assert.Equal(t, "active", resp.Data.Status)
	validator.AssertExpectations(t)
}

func TestServiceChangeStatusRejected(t *testing.T) {
	svc, validator := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "sold_out"})
	validator.On("ValidateStatusTransition", "sold_out", "pending").
		Return(failedResult("status", validation.CodeInvalidTransition))

	resp := svc.ChangeStatus(context.Background(), record.ID, "pending")

	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidTransition, resp.Error.Code)

	unchanged := svc.Get(context.Background(), record.ID)
	assert.Equal(t, "sold_out", unchanged.Data.Status)
}

func TestServiceChangeStatusMissingRecord(t *testing.T) {
	svc, _ := newTestService(t)

	resp := svc.ChangeStatus(context.Background(), uuid.New(), "active")

	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestServiceDelete(t *testing.T) {
	svc, _ := newTestService(t)
	record := seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "maize", Status: "pending"})

	resp := svc.Delete(context.Background(), record.ID)
	assert.Nil(t, resp.Error)

	again := svc.Delete(context.Background(), record.ID)
	assert.Equal(t, ErrCodeNotFound, again.Error.Code)
}

func TestServiceListWithPagination(t *testing.T) {
	svc, _ := newTestService(t)
	for i := 0; i < 5; i++ {
		seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "crop", Status: "pending", Price: float64(i)})
	}

	resp := svc.List(context.Background(), query.Options{
		Sorts:      []query.Sort{{Column: "price", Ascending: true}},
		Pagination: &query.Pagination{Page: 1, Limit: 2},
	})

	assert.Nil(t, resp.Error)
	assert.Equal(t, int64(5), resp.Count)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2.0, resp.Data[0].Price)
}

func TestServiceCount(t *testing.T) {
	svc, _ := newTestService(t)
	seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "a", Status: "pending"})
	seedRecord(t, svc, sampleRecord{ID: uuid.New(), Name: "b", Status: "active"})

	resp := svc.Count(context.Background(), []query.Filter{query.Eq("status", "pending")})

	assert.Nil(t, resp.Error)
	assert.Equal(t, int64(1), *resp.Data)
}
