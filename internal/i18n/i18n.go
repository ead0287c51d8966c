package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Messages is one locale file: nested JSON objects with string leaves.
type Messages map[string]any

// Load reads and parses a locale file.
func Load(path string) (Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}
	var m Messages
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", path, err)
	}
	return m, nil
}

// Save writes a locale file with two-space indentation and a trailing
// newline, matching how the files are maintained by hand.
func Save(path string, m Messages) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode locale file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write locale file: %w", err)
	}
	return nil
}

// Flatten collapses the nested message tree into dot-joined keys. Non-string
// scalar leaves are stringified so completeness checks compare keys, not
// representations.
func Flatten(m Messages) map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", map[string]any(m))
	return out
}

func flattenInto(out map[string]string, prefix string, node map[string]any) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenInto(out, full, v)
		case string:
			out[full] = v
		case float64:
			out[full] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[full] = strconv.FormatBool(v)
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
}

// Diff compares a locale against the canonical one. Missing holds canonical
// keys the locale lacks; extra holds locale keys the canonical one lacks.
// Both come back sorted for stable reporting.
func Diff(canonical, locale Messages) (missing, extra []string) {
	canonicalKeys := Flatten(canonical)
	localeKeys := Flatten(locale)

	for key := range canonicalKeys {
		if _, ok := localeKeys[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range localeKeys {
		if _, ok := canonicalKeys[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

// Fill copies every canonical key the locale is missing into the locale,
// preserving the nested shape and leaving existing translations alone. It
// returns the filled-in keys, sorted. Running it twice changes nothing.
func Fill(canonical, locale Messages) []string {
	filled := fillNode(map[string]any(canonical), map[string]any(locale), "")
	sort.Strings(filled)
	return filled
}

func fillNode(canonical, locale map[string]any, prefix string) []string {
	var filled []string
	for key, canonicalValue := range canonical {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		canonicalChild, canonicalIsNode := canonicalValue.(map[string]any)
		localeValue, exists := locale[key]

		if canonicalIsNode {
			localeChild, localeIsNode := localeValue.(map[string]any)
			if !exists || !localeIsNode {
				localeChild = make(map[string]any)
				locale[key] = localeChild
			}
			filled = append(filled, fillNode(canonicalChild, localeChild, full)...)
			continue
		}

		if !exists {
			locale[key] = canonicalValue
			filled = append(filled, full)
		}
	}
	return filled
}
