package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viscosity-service/internal/core/domain"
	"viscosity-service/internal/core/services"
)

// ============================================================================
// RawValue Tests
// ============================================================================

func TestRawValue_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *string
		wantErr bool
	}{
		{"string", `{"medium":"M1"}`, strPtr("M1"), false},
		{"empty string", `{"medium":""}`, strPtr(""), false},
		{"integer", `{"medium":25}`, strPtr("25"), false},
		{"negative float", `{"medium":-1.5e2}`, strPtr("-1.5e2"), false},
		{"null", `{"medium":null}`, nil, false},
		{"absent", `{}`, nil, false},
		{"bool", `{"medium":true}`, nil, true},
		{"object", `{"medium":{"id":"M1"}}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ComputeViscosityRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Medium.Value)
		})
	}
}

func TestToComputeRequest(t *testing.T) {
	var req ComputeViscosityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"medium":"M3","temperature":24,"flow_rate":"0.16","formula":"legacy"}`), &req))

	out := req.ToComputeRequest()
	assert.Equal(t, "M3", *out.Input.Medium)
	assert.Equal(t, "24", *out.Input.Temperature)
	assert.Nil(t, out.Input.ChannelSize)
	assert.Equal(t, "0.16", *out.Input.FlowRate)
	assert.Equal(t, "legacy", out.Formula)
}

// ============================================================================
// Mapper Tests
// ============================================================================

func TestToViscosityResponse(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	calc := &services.Calculation{
		ID:         id,
		ComputedAt: now,
		Result: domain.ViscosityResult{
			Medium: "M2", Formula: domain.FormulaKelvin,
			Viscosity: 3.529, Precision: 3,
			FlowIndex: 0.588, ConsistencyIndex: 0.496, ShearRate: 164426.3,
		},
	}

	resp := ToViscosityResponse(calc)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "M2", resp.Medium)
	assert.Equal(t, "kelvin", resp.Formula)
	assert.Equal(t, 3.529, resp.Viscosity)
	assert.Equal(t, "mPa.s", resp.Unit)
	assert.Equal(t, "Computed viscosity [mPa.s]: \n3.529", resp.Display)
}

func TestToErrorResponse(t *testing.T) {
	err := &domain.InputError{Kind: domain.KindDomainError, Field: domain.FieldChannelSize, Err: domain.ErrNonPositiveChannel}

	resp := ToErrorResponse(err)
	assert.Equal(t, "DomainError", resp.Kind)
	assert.Equal(t, "channel_size", resp.Field)
	assert.Equal(t, err.Error(), resp.Error)

	resp = ToErrorResponse(errors.New("boom"))
	assert.Empty(t, resp.Kind)
	assert.Equal(t, "boom", resp.Error)
}

func strPtr(s string) *string { return &s }
