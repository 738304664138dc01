package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkolosov/noteflow-srs/internal/fsrs"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.Version != int(fsrs.V5) && s.Version != int(fsrs.V6) {
		return fmt.Errorf("version must be 5 or 6 (got %d)", s.Version)
	}

	weights, err := ParseWeights(s.WeightsRaw)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.Weights = weights

	return nil
}

// EngineParams maps the loaded SRS section to engine parameters.
// Length mismatches and non-finite weights degrade to the version
// defaults inside Resolve, matching the engine's never-reject contract.
func (s SRSConfig) EngineParams() fsrs.Params {
	return fsrs.Params{
		Version:              fsrs.Version(s.Version),
		RequestedRetention:   s.RequestedRetention,
		Weights:              s.Weights,
		LapseMinIntervalDays: s.LapseMinIntervalDays,
		MaxIntervalDays:      s.MaxIntervalDays,
	}.Resolve()
}

// ParseWeights parses a comma-separated list of floats (e.g.
// "0.40255,1.18385,...") into a weight vector. An empty string returns
// a nil slice, which selects the version's default weights.
func ParseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, w)
	}

	return weights, nil
}
