package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"viscosity-service/internal/core/domain"
)

// ErrMissingKelvin is returned for an entry without kelvin coefficients.
var ErrMissingKelvin = errors.New("kelvin coefficients are required")

// File is the on-disk layout of a media catalog.
type File struct {
	Media []Entry `yaml:"media"`
}

// Entry describes one medium. Kelvin coefficients are required; legacy
// coefficients are optional.
type Entry struct {
	ID     string                     `yaml:"id"`
	Label  string                     `yaml:"label"`
	Kelvin *domain.KelvinCoefficients `yaml:"kelvin"`
	Legacy *domain.LegacyCoefficients `yaml:"legacy"`
}

// Decode parses a catalog document. Unknown keys are rejected.
func Decode(r io.Reader) ([]domain.Medium, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode media catalog: %w", err)
	}

	seen := make(map[domain.MediumID]bool, len(f.Media))
	media := make([]domain.Medium, 0, len(f.Media))
	for i, e := range f.Media {
		e.ID = strings.TrimSpace(e.ID)
		if e.Kelvin == nil {
			return nil, fmt.Errorf("media[%d] %q: %w", i, e.ID, ErrMissingKelvin)
		}
		m := domain.Medium{
			ID:     domain.MediumID(e.ID),
			Label:  e.Label,
			Kelvin: *e.Kelvin,
			Legacy: e.Legacy,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("media[%d]: %w", i, err)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("media[%d] %q: %w", i, e.ID, domain.ErrDuplicateMedium)
		}
		seen[m.ID] = true
		media = append(media, m)
	}
	return media, nil
}

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string) ([]domain.Medium, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read media catalog: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Merge overlays extra onto base. An entry in extra replaces the base entry
// with the same id; new ids are appended.
func Merge(base, extra []domain.Medium) []domain.Medium {
	index := make(map[domain.MediumID]int, len(base))
	out := make([]domain.Medium, 0, len(base)+len(extra))
	for _, m := range base {
		index[m.ID] = len(out)
		out = append(out, m)
	}
	for _, m := range extra {
		if i, ok := index[m.ID]; ok {
			out[i] = m
			continue
		}
		index[m.ID] = len(out)
		out = append(out, m)
	}
	return out
}

// Build returns the built-in catalog, overlaid with the file at path when
// path is non-empty.
func Build(path string) (*domain.MediumCatalog, error) {
	media := domain.BuiltinMedia()
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		media = Merge(media, extra)
		log.WithFields(log.Fields{
			"path":   path,
			"loaded": len(extra),
			"total":  len(media),
		}).Info("media catalog loaded")
	}
	return domain.NewMediumCatalog(media)
}
