package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateReference creates a short human-readable booking reference
// printed on the parking token next to the numeric ticket id
func GenerateReference() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// NormalizeVehicleNumber trims and upper-cases a plate for validation
func NormalizeVehicleNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
