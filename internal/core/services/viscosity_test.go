package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"viscosity-service/internal/core/domain"
	ports "viscosity-service/internal/core/ports/output"
	"viscosity-service/internal/testutil"
)

func strPtr(s string) *string { return &s }

func request(medium, temperature, channel, flow, formula string) ComputeRequest {
	return ComputeRequest{
		Input: domain.RawInput{
			Medium:      strPtr(medium),
			Temperature: strPtr(temperature),
			ChannelSize: strPtr(channel),
			FlowRate:    strPtr(flow),
		},
		Formula: formula,
	}
}

func newService(t *testing.T, recorder ports.CalculationRecorder) *ViscosityService {
	t.Helper()
	svc, err := NewViscosityService(domain.DefaultMediumCatalog(), domain.FormulaKelvin, recorder)
	require.NoError(t, err)
	return svc
}

// ============================================================================
// Service Creation Tests
// ============================================================================

func TestNewViscosityService(t *testing.T) {
	svc, err := NewViscosityService(domain.DefaultMediumCatalog(), domain.FormulaLegacy, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.FormulaLegacy, svc.DefaultFormula())
	assert.NotNil(t, svc.recorder)
}

func TestNewViscosityService_UnknownFormula(t *testing.T) {
	_, err := NewViscosityService(domain.DefaultMediumCatalog(), "celsius", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownFormula)
}

func TestNewViscosityService_NilCatalog(t *testing.T) {
	_, err := NewViscosityService(nil, domain.FormulaKelvin, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

// ============================================================================
// Compute Tests
// ============================================================================

func TestViscosityService_Compute_DefaultFormula(t *testing.T) {
	recorder := new(testutil.MockCalculationRecorder)
	svc := newService(t, recorder)

	recorder.On("RecordSuccess", domain.MediumID("M1"), domain.FormulaKelvin, mock.AnythingOfType("time.Duration")).Return()

	calc, err := svc.Compute(context.Background(), request("M1", "25", "20", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, 1.746, calc.Result.Viscosity)
	assert.Equal(t, domain.FormulaKelvin, calc.Result.Formula)
	assert.NotEmpty(t, calc.ID.String())
	assert.False(t, calc.ComputedAt.IsZero())
	recorder.AssertExpectations(t)
}

func TestViscosityService_Compute_LegacyFormula(t *testing.T) {
	recorder := new(testutil.MockCalculationRecorder)
	svc := newService(t, recorder)

	recorder.On("RecordSuccess", domain.MediumID("M2"), domain.FormulaLegacy, mock.Anything).Return()

	calc, err := svc.Compute(context.Background(), request("M2", "25", "20", "1", " Legacy "))
	require.NoError(t, err)
	assert.Equal(t, 1.54, calc.Result.Viscosity)
	assert.Equal(t, 2, calc.Result.Precision)
	recorder.AssertExpectations(t)
}

func TestViscosityService_Compute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     ComputeRequest
		kind    domain.ErrorKind
		field   string
		matches error
	}{
		{"missing temperature", request("M1", "", "20", "1", ""), domain.KindMissingInput, domain.FieldTemperature, domain.ErrMissingInput},
		{"unparseable flow", request("M1", "25", "20", "fast", ""), domain.KindParseError, domain.FieldFlowRate, domain.ErrParse},
		{"unknown formula", request("M1", "25", "20", "1", "arrhenius"), domain.KindParseError, domain.FieldFormula, domain.ErrUnknownFormula},
		{"zero channel", request("M1", "25", "0", "1", ""), domain.KindDomainError, domain.FieldChannelSize, domain.ErrDomain},
		{"legacy at zero celsius", request("M3", "0", "20", "1", "legacy"), domain.KindDomainError, domain.FieldTemperature, domain.ErrNonFiniteResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := new(testutil.MockCalculationRecorder)
			svc := newService(t, recorder)
			recorder.On("RecordFailure", tt.kind, tt.field).Return()

			calc, err := svc.Compute(context.Background(), tt.req)
			assert.Nil(t, calc)
			assert.ErrorIs(t, err, tt.matches)
			assert.Equal(t, tt.kind, domain.KindOf(err))
			recorder.AssertExpectations(t)
			recorder.AssertNotCalled(t, "RecordSuccess", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestViscosityService_Compute_Concurrent(t *testing.T) {
	svc, err := NewViscosityService(domain.DefaultMediumCatalog(), domain.FormulaKelvin, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			calc, err := svc.Compute(context.Background(), request("M3", "24", "20", "0.16", ""))
			if err == nil {
				results[i] = calc.Result.Viscosity
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 4.257, v)
	}
}

// ============================================================================
// Listing Tests
// ============================================================================

func TestViscosityService_ListMedia(t *testing.T) {
	svc := newService(t, nil)

	media := svc.ListMedia()
	require.Len(t, media, 3)
	assert.Equal(t, domain.MediumID("M1"), media[0].ID)
	assert.Equal(t, "0.5% MC-PBS", media[0].Label)
	assert.Equal(t, "0.84% MC-PBS", media[2].Label)
}

func TestViscosityService_ListFormulas(t *testing.T) {
	svc := newService(t, nil)

	formulas := svc.ListFormulas()
	require.Len(t, formulas, 2)
	assert.Equal(t, FormulaInfo{Name: domain.FormulaKelvin, Precision: 3, Default: true}, formulas[0])
	assert.Equal(t, FormulaInfo{Name: domain.FormulaLegacy, Precision: 2, Default: false}, formulas[1])
}
