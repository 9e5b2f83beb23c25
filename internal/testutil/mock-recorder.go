package testutil

import (
	"time"

	"github.com/stretchr/testify/mock"

	"viscosity-service/internal/core/domain"
)

// MockCalculationRecorder is a mock of CalculationRecorder.
type MockCalculationRecorder struct {
	mock.Mock
}

func (m *MockCalculationRecorder) RecordSuccess(medium domain.MediumID, formula domain.Formula, elapsed time.Duration) {
	m.Called(medium, formula, elapsed)
}

func (m *MockCalculationRecorder) RecordFailure(kind domain.ErrorKind, field string) {
	m.Called(kind, field)
}
