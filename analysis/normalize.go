package analysis

import "strings"

// Normalize splits raw input into analysis units according to cfg.
//
// Every unit is whitespace-trimmed. With RemoveEmpty set, units that trim
// to the empty string are dropped. With Lowercase set, units are
// case-folded. Order and duplicates are preserved. An entirely empty or
// whitespace-only input yields zero units, which is not an error.
//
// Normalization is idempotent: normalizing the rejoined output of a
// normalization yields the same sequence.
func Normalize(raw string, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	units := []string{}
	if strings.TrimSpace(raw) == "" {
		return units, nil
	}

	sep := cfg.delimiter()
	if sep == "\n" {
		raw = strings.ReplaceAll(raw, "\r\n", "\n")
	}

	for _, part := range strings.Split(raw, sep) {
		unit := strings.TrimSpace(part)
		if cfg.RemoveEmpty && unit == "" {
			continue
		}
		if cfg.Lowercase {
			unit = strings.ToLower(unit)
		}
		units = append(units, unit)
	}
	return units, nil
}
