package domain

import (
	"sort"
	"strings"
)

// ============================================================================
// Value Objects
// ============================================================================

// MediumID identifies a buffer formulation, e.g. "M1".
type MediumID string

// KelvinCoefficients are the per-medium offsets of the Kelvin formula:
//
//	n = alpha*T_K - FlowIndexOffset
//	K = ConsistencyPrefactor * exp(lambda/T_K)
type KelvinCoefficients struct {
	FlowIndexOffset      float64 `json:"c_n" yaml:"c_n"`
	ConsistencyPrefactor float64 `json:"c_k" yaml:"c_k"`
}

// LegacyCoefficients are the per-medium constants of the legacy formula,
// which takes temperature in degrees Celsius:
//
//	n = FlowIndexSlope*T + FlowIndexOffset
//	K = ConsistencyPrefactor * exp(ConsistencyActivation/T)
type LegacyCoefficients struct {
	FlowIndexSlope        float64 `json:"n_slope" yaml:"n_slope"`
	FlowIndexOffset       float64 `json:"n_offset" yaml:"n_offset"`
	ConsistencyPrefactor  float64 `json:"k_prefactor" yaml:"k_prefactor"`
	ConsistencyActivation float64 `json:"k_activation" yaml:"k_activation"`
}

// ============================================================================
// Entities
// ============================================================================

// Medium is a buffer formulation with its fitted rheological constants.
type Medium struct {
	ID     MediumID            `json:"id"`
	Label  string              `json:"label"`
	Kelvin KelvinCoefficients  `json:"kelvin"`
	Legacy *LegacyCoefficients `json:"legacy,omitempty"`
}

// Validate checks the fields every medium must carry.
func (m Medium) Validate() error {
	if strings.TrimSpace(string(m.ID)) == "" {
		return ErrInvalidMediumID
	}
	if strings.TrimSpace(m.Label) == "" {
		return ErrInvalidMediumLabel
	}
	return nil
}

// BuiltinMedia are the methylcellulose/PBS buffers used for RT-DC.
func BuiltinMedia() []Medium {
	return []Medium{
		{
			ID:     "M1",
			Label:  "0.5% MC-PBS",
			Kelvin: KelvinCoefficients{FlowIndexOffset: 0.0056, ConsistencyPrefactor: 2.3e-6},
			Legacy: &LegacyCoefficients{FlowIndexSlope: 0.0026, FlowIndexOffset: 0.590, ConsistencyPrefactor: 0.05, ConsistencyActivation: 35},
		},
		{
			ID:     "M2",
			Label:  "0.6% MC-PBS",
			Kelvin: KelvinCoefficients{FlowIndexOffset: 0.0744, ConsistencyPrefactor: 5.7e-6},
			Legacy: &LegacyCoefficients{FlowIndexSlope: 0.0024, FlowIndexOffset: 0.529, ConsistencyPrefactor: 0.15, ConsistencyActivation: 27.8},
		},
		{
			ID:     "M3",
			Label:  "0.84% MC-PBS",
			Kelvin: KelvinCoefficients{FlowIndexOffset: 0.1455, ConsistencyPrefactor: 16.52e-6},
			Legacy: &LegacyCoefficients{FlowIndexSlope: 0.0021, FlowIndexOffset: 0.467, ConsistencyPrefactor: 0.40, ConsistencyActivation: 30.6},
		},
	}
}

// MediumCatalog is a read-only lookup from MediumID to Medium.
// It is safe for concurrent use since nothing mutates it after construction.
type MediumCatalog struct {
	media map[MediumID]Medium
	order []MediumID
}

// NewMediumCatalog builds a catalog from media. Ids must be unique.
func NewMediumCatalog(media []Medium) (*MediumCatalog, error) {
	if len(media) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &MediumCatalog{media: make(map[MediumID]Medium, len(media))}
	for _, m := range media {
		m.ID = MediumID(strings.TrimSpace(string(m.ID)))
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.media[m.ID]; ok {
			return nil, ErrDuplicateMedium
		}
		if m.Legacy != nil {
			legacy := *m.Legacy
			m.Legacy = &legacy
		}
		c.media[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	sort.Slice(c.order, func(i, j int) bool { return c.order[i] < c.order[j] })
	return c, nil
}

// DefaultMediumCatalog returns the catalog of built-in media.
func DefaultMediumCatalog() *MediumCatalog {
	c, err := NewMediumCatalog(BuiltinMedia())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a copy of the medium registered under id.
func (c *MediumCatalog) Lookup(id MediumID) (Medium, bool) {
	m, ok := c.media[id]
	if ok && m.Legacy != nil {
		legacy := *m.Legacy
		m.Legacy = &legacy
	}
	return m, ok
}

// List returns all media ordered by id.
func (c *MediumCatalog) List() []Medium {
	out := make([]Medium, 0, len(c.order))
	for _, id := range c.order {
		m, _ := c.Lookup(id)
		out = append(out, m)
	}
	return out
}

// Len reports the number of media.
func (c *MediumCatalog) Len() int { return len(c.order) }
