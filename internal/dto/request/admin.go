package request

type UpdateConfigRequest struct {
	BasePrice    int `json:"base_price" validate:"gte=0"`
	BaseHours    int `json:"base_hours" validate:"gte=0"`
	ExtraPerHour int `json:"extra_per_hour" validate:"gte=0"`
}

// SeedRequest overrides the default seed grid; zero values keep defaults
// (10 floors, 50 slots per section, car sections A-D, bike sections E-G)
type SeedRequest struct {
	Floors          int `json:"floors" validate:"gte=0,lte=100"`
	SlotsPerSection int `json:"slots_per_section" validate:"gte=0,lte=500"`
}
