package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		input string
		want  VehicleType
		ok    bool
	}{
		{"CAR", VehicleTypeCar, true},
		{"car", VehicleTypeCar, true},
		{" bike ", VehicleTypeBike, true},
		{"Bike", VehicleTypeBike, true},
		{"truck", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseVehicleType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSlotLabel(t *testing.T) {
	slot := &Slot{Section: "B", SlotNumber: 12}
	assert.Equal(t, "Floor 3-B-12", slot.Label(3))
}

func TestTicketSettled(t *testing.T) {
	ticket := &Ticket{}
	assert.False(t, ticket.Settled())

	out := ticket.CheckIn
	ticket.CheckOut = &out
	assert.True(t, ticket.Settled())
}
