package usecase

import "errors"

// Tagged error kinds surfaced by the services. Handlers match these with
// errors.Is and map each kind to one HTTP rendering; anything unclassified
// falls through to a generic 500.
var (
	// ErrNotFound: floor, slot or config the caller named does not exist
	ErrNotFound = errors.New("not found")

	// ErrSlotTaken: the allocator found nothing lockable in the partition.
	// Expected under contention; the user should pick another slot
	ErrSlotTaken = errors.New("slot already taken")

	// ErrTicketNotFound covers both an unknown token and an already-settled
	// one; callers cannot tell the two apart
	ErrTicketNotFound = errors.New("token not found or already used")

	// ErrConfigMissing: pricing config absent, the system was never seeded
	ErrConfigMissing = errors.New("parking configuration missing")

	// ErrValidation: malformed input, rejected before any state change
	ErrValidation = errors.New("validation failed")
)
