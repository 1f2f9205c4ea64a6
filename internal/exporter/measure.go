package exporter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const defaultWeight = "1"

var (
	weightKeys = []string{"weight", "weightKg", "Weight (kg)"}

	weightPattern    = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(kg|g)?`)
	dimensionPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(cm|mm)?`)
)

// ExtractWeight returns weight in kilograms from the first source holding weight value.
// Grams are converted to kilograms. Returns "1" when no source holds weight.
func ExtractWeight(sources ...map[string]string) string {
	for _, value := range lookupAll(sources, weightKeys) {
		match := weightPattern.FindStringSubmatch(value)
		if match == nil {
			continue
		}

		weight, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(match[2], "g") {
			weight /= 1000
		}

		return formatNumber(weight)
	}

	return defaultWeight
}

// ExtractDimension returns named dimension (e.g. "length") in centimeters.
// Keys name, name_cm and "name (cm)" are matched case-insensitively, millimeters are converted.
// Returns empty string when no source holds the dimension.
func ExtractDimension(name string, sources ...map[string]string) string {
	keys := []string{name, name + "_cm", name + " (cm)"}

	for _, value := range lookupAll(sources, keys) {
		match := dimensionPattern.FindStringSubmatch(value)
		if match == nil {
			continue
		}

		dimension, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(match[2], "mm") {
			dimension /= 10
		}

		return formatNumber(dimension)
	}

	return ""
}

// lookupAll returns non-empty values of keys in order of keys, then sources.
func lookupAll(sources []map[string]string, keys []string) []string {
	var values []string
	for _, key := range keys {
		for _, source := range sources {
			if value := lookup(source, key); value != "" {
				values = append(values, value)
			}
		}
	}
	return values
}

func lookup(source map[string]string, key string) string {
	if value := strings.TrimSpace(source[key]); value != "" {
		return value
	}

	names := make([]string, 0, len(source))
	for name := range source {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), key) {
			if value := strings.TrimSpace(source[name]); value != "" {
				return value
			}
		}
	}

	return ""
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
