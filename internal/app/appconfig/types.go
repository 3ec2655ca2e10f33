package appconfig

import (
	"fmt"
	"strconv"
	"strings"
)

type ProfileSpec struct {
	Name           string
	BaseRate       float64
	WeekendPenalty float64
}

type ProfileSpecs []ProfileSpec

func (m *ProfileSpecs) Decode(value string) error {
	*m = ProfileSpecs{}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	for _, entry := range strings.Split(value, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return fmt.Errorf("invalid generator profiles: expect `name:base_rate:weekend_penalty` for each element, but got: %s", entry)
		}
		baseRate, err := parseUnitFloat(parts[1])
		if err != nil {
			return fmt.Errorf("invalid base rate for %s: %w", parts[0], err)
		}
		penalty, err := parseUnitFloat(parts[2])
		if err != nil {
			return fmt.Errorf("invalid weekend penalty for %s: %w", parts[0], err)
		}
		*m = append(*m, ProfileSpec{
			Name:           strings.TrimSpace(parts[0]),
			BaseRate:       baseRate,
			WeekendPenalty: penalty,
		})
	}
	return nil
}

func parseUnitFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("%v is out of [0, 1]", f)
	}
	return f, nil
}
