package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"viscosity-service/internal/core/domain"
	"viscosity-service/internal/core/services"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ErrNotScalar is returned when a field holds an object, array or boolean.
var ErrNotScalar = errors.New("field must be a string or a number")

// RawValue is a field that may be a JSON string, a JSON number, null or absent.
// Numbers keep their literal text so parsing stays in the core.
type RawValue struct {
	Value *string
}

func (r *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		r.Value = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.Value = &s
		return nil
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		s := string(data)
		r.Value = &s
		return nil
	}
	return ErrNotScalar
}

// ComputeViscosityRequest represents a request to compute a viscosity
type ComputeViscosityRequest struct {
	Medium      RawValue `json:"medium"`
	Temperature RawValue `json:"temperature"`  // °C
	ChannelSize RawValue `json:"channel_size"` // µm
	FlowRate    RawValue `json:"flow_rate"`    // µl/s
	Formula     string   `json:"formula"`      // kelvin (default) or legacy
}

// ToComputeRequest converts the DTO into a service request
func (r *ComputeViscosityRequest) ToComputeRequest() services.ComputeRequest {
	return services.ComputeRequest{
		Input: domain.RawInput{
			Medium:      r.Medium.Value,
			Temperature: r.Temperature.Value,
			ChannelSize: r.ChannelSize.Value,
			FlowRate:    r.FlowRate.Value,
		},
		Formula: r.Formula,
	}
}

// ============================================================================
// Response DTOs
// ============================================================================

// ViscosityResponse represents a computed viscosity
type ViscosityResponse struct {
	ID               uuid.UUID `json:"id"`
	ComputedAt       time.Time `json:"computed_at"`
	Medium           string    `json:"medium"`
	Formula          string    `json:"formula"`
	Viscosity        float64   `json:"viscosity"`
	Unit             string    `json:"unit"`
	Precision        int       `json:"precision"`
	FlowIndex        float64   `json:"flow_index"`
	ConsistencyIndex float64   `json:"consistency_index"`
	ShearRate        float64   `json:"shear_rate"`
	Display          string    `json:"display"`
}

// MediumResponse represents one catalog entry
type MediumResponse struct {
	ID     string                     `json:"id"`
	Label  string                     `json:"label"`
	Kelvin domain.KelvinCoefficients  `json:"kelvin"`
	Legacy *domain.LegacyCoefficients `json:"legacy,omitempty"`
}

// ListMediaResponse represents the media catalog
type ListMediaResponse struct {
	Items []MediumResponse `json:"items"`
	Total int              `json:"total"`
}

// ListFormulasResponse represents the available formulas
type ListFormulasResponse struct {
	Items   []services.FormulaInfo `json:"items"`
	Default string                 `json:"default"`
}

// ErrorResponse represents a rejected request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// ============================================================================
// Mappers
// ============================================================================

const viscosityUnit = "mPa.s"

// ToViscosityResponse converts a calculation to its response DTO
func ToViscosityResponse(c *services.Calculation) ViscosityResponse {
	return ViscosityResponse{
		ID:               c.ID,
		ComputedAt:       c.ComputedAt,
		Medium:           string(c.Result.Medium),
		Formula:          string(c.Result.Formula),
		Viscosity:        c.Result.Viscosity,
		Unit:             viscosityUnit,
		Precision:        c.Result.Precision,
		FlowIndex:        c.Result.FlowIndex,
		ConsistencyIndex: c.Result.ConsistencyIndex,
		ShearRate:        c.Result.ShearRate,
		Display:          c.Result.Display(),
	}
}

// ToMediumResponse converts a medium to its response DTO
func ToMediumResponse(m domain.Medium) MediumResponse {
	return MediumResponse{
		ID:     string(m.ID),
		Label:  m.Label,
		Kelvin: m.Kelvin,
		Legacy: m.Legacy,
	}
}

// ToErrorResponse converts an error to its response DTO
func ToErrorResponse(err error) ErrorResponse {
	var ie *domain.InputError
	if errors.As(err, &ie) {
		return ErrorResponse{Error: ie.Error(), Kind: string(ie.Kind), Field: ie.Field}
	}
	return ErrorResponse{Error: err.Error()}
}
