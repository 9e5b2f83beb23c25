package ports

import (
	"time"

	"viscosity-service/internal/core/domain"
)

// CalculationRecorder receives the outcome of every calculation request.
type CalculationRecorder interface {
	// RecordSuccess is called once per produced result
	RecordSuccess(medium domain.MediumID, formula domain.Formula, elapsed time.Duration)

	// RecordFailure is called once per rejected request
	RecordFailure(kind domain.ErrorKind, field string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordSuccess(domain.MediumID, domain.Formula, time.Duration) {}
func (NopRecorder) RecordFailure(domain.ErrorKind, string) {}
