package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parking-booking/internal/data/entity"
)

func TestCalculateBill(t *testing.T) {
	carConfig := &entity.VehicleTypeConfig{
		VehicleType:  entity.VehicleTypeCar,
		BasePrice:    50,
		BaseHours:    5,
		ExtraPerHour: 10,
	}
	bikeConfig := &entity.VehicleTypeConfig{
		VehicleType:  entity.VehicleTypeBike,
		BasePrice:    30,
		BaseHours:    5,
		ExtraPerHour: 5,
	}

	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		stay           time.Duration
		config         *entity.VehicleTypeConfig
		floorIncrement int
		initialPayment int
		want           Bill
	}{
		{
			name:           "within base block pays flat base price",
			stay:           3 * time.Hour,
			config:         carConfig,
			initialPayment: 50,
			want:           Bill{Hours: 3, Total: 50, Refund: 0, Due: 0},
		},
		{
			name:           "exactly base hours pays no extra",
			stay:           5 * time.Hour,
			config:         carConfig,
			initialPayment: 50,
			want:           Bill{Hours: 5, Total: 50, Refund: 0, Due: 0},
		},
		{
			name:           "one second into a new hour bills the full hour",
			stay:           5*time.Hour + time.Second,
			config:         carConfig,
			initialPayment: 50,
			want:           Bill{Hours: 6, Total: 60, Refund: 0, Due: 10},
		},
		{
			name:           "floor increment is added once, not per hour",
			stay:           7 * time.Hour,
			config:         carConfig,
			floorIncrement: 10,
			initialPayment: 100,
			want:           Bill{Hours: 7, Total: 80, Refund: 20, Due: 0},
		},
		{
			name:           "underpayment produces a due amount and no refund",
			stay:           7 * time.Hour,
			config:         carConfig,
			initialPayment: 30,
			want:           Bill{Hours: 7, Total: 70, Refund: 0, Due: 40},
		},
		{
			name:           "bike rates apply beyond base block",
			stay:           6 * time.Hour,
			config:         bikeConfig,
			initialPayment: 35,
			want:           Bill{Hours: 6, Total: 35, Refund: 0, Due: 0},
		},
		{
			name:           "ticket without slot bills without surcharge",
			stay:           2 * time.Hour,
			config:         carConfig,
			floorIncrement: 0,
			initialPayment: 60,
			want:           Bill{Hours: 2, Total: 50, Refund: 10, Due: 0},
		},
		{
			name:           "immediate checkout still charges the base price",
			stay:           0,
			config:         bikeConfig,
			initialPayment: 0,
			want:           Bill{Hours: 0, Total: 30, Refund: 0, Due: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn := now.Add(-tt.stay)
			got := CalculateBill(checkIn, now, tt.config, tt.floorIncrement, tt.initialPayment)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateBillRefundDueExclusive(t *testing.T) {
	config := &entity.VehicleTypeConfig{BasePrice: 50, BaseHours: 5, ExtraPerHour: 10}
	now := time.Now()

	for payment := 0; payment <= 150; payment += 25 {
		bill := CalculateBill(now.Add(-8*time.Hour), now, config, 5, payment)

		// Overpay refunds, underpay charges, never both
		assert.True(t, bill.Refund == 0 || bill.Due == 0,
			"payment %d produced refund %d and due %d", payment, bill.Refund, bill.Due)
		assert.Equal(t, bill.Total, payment+bill.Due-bill.Refund)
	}
}
