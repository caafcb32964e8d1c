package entity

// Floor is a parking level. PriceIncrement is a flat surcharge added once to
// the base price of any ticket parked on this floor.
type Floor struct {
	ID             int64 `db:"id"`
	Number         int   `db:"number"`
	PriceIncrement int   `db:"price_increment"`
}
