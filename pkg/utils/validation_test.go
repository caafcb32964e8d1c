package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingInput struct {
	VehicleNumber string `validate:"required,vehicle_number"`
	Phone         string `validate:"required,phone"`
}

func TestVehicleNumberValidation(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		valid bool
	}{
		{"normalized indian plate", "RJ14 CC 1234", true},
		{"plate with hyphens", "KA-01-AB-1234", true},
		{"minimum length", "AB1", true},
		{"lowercase rejected before normalization", "rj14 cc 1234", false},
		{"too short", "AB", false},
		{"too long", "ABCDEFGH12345678", false},
		{"special characters rejected", "RJ14@CC#1234", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(bookingInput{VehicleNumber: tt.plate, Phone: "+919876543210"})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, "VehicleNumber")
			}
		})
	}
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"international format", "+919876543210", true},
		{"without plus", "919876543210", true},
		{"nine digits", "987654321", true},
		{"fifteen digits", "123456789012345", true},
		{"too short", "123", false},
		{"sixteen digits", "9234567890123456", false},
		{"leading one absorbs one extra digit", "1234567890123456", true},
		{"letters rejected", "98765abcde", false},
		{"spaces rejected", "98765 43210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(bookingInput{VehicleNumber: "RJ14 CC 1234", Phone: tt.phone})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, "Phone")
			}
		})
	}
}

func TestNormalizeVehicleNumber(t *testing.T) {
	assert.Equal(t, "RJ14 CC 1234", NormalizeVehicleNumber("  rj14 cc 1234  "))
	assert.Equal(t, "KA-01-AB-1234", NormalizeVehicleNumber("ka-01-ab-1234"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestGenerateReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.Len(t, ref, 8)
		assert.Equal(t, ref, NormalizeVehicleNumber(ref), "reference should be upper-case")
		seen[ref] = true
	}
	assert.Greater(t, len(seen), 1, "references should not repeat")
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Phone": "This field is required"})
	assert.Equal(t, "Phone: This field is required", msg)
}
