package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"viscosity-service/internal/core/domain"
	ports "viscosity-service/internal/core/ports/output"
)

// ViscosityService evaluates viscosity requests against an immutable media catalog.
type ViscosityService struct {
	catalog        *domain.MediumCatalog
	defaultFormula domain.Formula
	recorder       ports.CalculationRecorder
	now            func() time.Time
}

// NewViscosityService creates a new viscosity service. A nil recorder disables recording.
func NewViscosityService(
	catalog *domain.MediumCatalog,
	defaultFormula domain.Formula,
	recorder ports.CalculationRecorder,
) (*ViscosityService, error) {
	if catalog == nil {
		return nil, domain.ErrEmptyCatalog
	}
	if _, ok := domain.ModelFor(defaultFormula); !ok {
		return nil, domain.ErrUnknownFormula
	}
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &ViscosityService{
		catalog:        catalog,
		defaultFormula: defaultFormula,
		recorder:       recorder,
		now:            time.Now,
	}, nil
}

// ComputeRequest holds the raw host values. Formula may be empty.
type ComputeRequest struct {
	Input   domain.RawInput
	Formula string
}

// Calculation is a produced result together with its identity.
type Calculation struct {
	ID         uuid.UUID              `json:"id"`
	ComputedAt time.Time              `json:"computed_at"`
	Result     domain.ViscosityResult `json:"result"`
}

// Compute validates the request and evaluates the selected formula.
// All failures are *domain.InputError values.
func (s *ViscosityService) Compute(ctx context.Context, req ComputeRequest) (*Calculation, error) {
	start := s.now()

	model, err := s.resolveModel(req.Formula)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	in, err := domain.ParseInput(s.catalog, req.Input)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	result, err := domain.Evaluate(model, in)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	calc := &Calculation{
		ID:         uuid.New(),
		ComputedAt: s.now(),
		Result:     result,
	}
	s.recorder.RecordSuccess(result.Medium, result.Formula, calc.ComputedAt.Sub(start))

	log.WithFields(log.Fields{
		"calculation_id": calc.ID,
		"medium":         result.Medium,
		"formula":        result.Formula,
		"viscosity":      result.Viscosity,
	}).Debug("viscosity computed")

	return calc, nil
}

// ListMedia returns the catalog ordered by id.
func (s *ViscosityService) ListMedia() []domain.Medium {
	return s.catalog.List()
}

// FormulaInfo describes one available formula.
type FormulaInfo struct {
	Name      domain.Formula `json:"name"`
	Precision int            `json:"precision"`
	Default   bool           `json:"default"`
}

// ListFormulas returns the supported formulas.
func (s *ViscosityService) ListFormulas() []FormulaInfo {
	formulas := domain.Formulas()
	out := make([]FormulaInfo, 0, len(formulas))
	for _, f := range formulas {
		model, _ := domain.ModelFor(f)
		out = append(out, FormulaInfo{
			Name:      f,
			Precision: model.Precision(),
			Default:   f == s.defaultFormula,
		})
	}
	return out
}

// DefaultFormula returns the formula used when a request names none.
func (s *ViscosityService) DefaultFormula() domain.Formula {
	return s.defaultFormula
}

func (s *ViscosityService) resolveModel(name string) (domain.RheologyModel, error) {
	f := domain.Formula(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		f = s.defaultFormula
	}
	model, ok := domain.ModelFor(f)
	if !ok {
		return nil, &domain.InputError{Kind: domain.KindParseError, Field: domain.FieldFormula, Err: domain.ErrUnknownFormula}
	}
	return model, nil
}

func (s *ViscosityService) fail(ctx context.Context, err error) error {
	var ie *domain.InputError
	if errors.As(err, &ie) {
		s.recorder.RecordFailure(ie.Kind, ie.Field)
	}
	log.WithContext(ctx).WithError(err).Debug("viscosity request rejected")
	return err
}
