package response

type FloorResponse struct {
	Number         int `json:"number"`
	PriceIncrement int `json:"price_increment"`
}

type SlotResponse struct {
	ID         int64  `json:"id"`
	Section    string `json:"section"`
	SlotNumber int    `json:"slot_number"`
}

type SectionCountResponse struct {
	Section   string `json:"section"`
	Available int    `json:"available"`
}

// SlotsViewResponse mirrors the slot-picking page: free slots on one floor
// for one vehicle type, with per-section counts and the base price shown
// to the customer
type SlotsViewResponse struct {
	VehicleType string                 `json:"vehicle_type"`
	Floor       FloorResponse          `json:"floor"`
	BasePrice   int                    `json:"base_price"`
	Sections    []SectionCountResponse `json:"sections"`
	Slots       []SlotResponse         `json:"slots"`
}
