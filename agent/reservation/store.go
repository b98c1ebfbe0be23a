package reservation

import (
	"context"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// Store is the append-only reservation table. It is the single source of
// truth for capacity accounting. Find performs exact matching on the three
// slot keys; callers must pass canonical date/time forms, the store does not
// normalize them.
type Store interface {
	Add(ctx context.Context, rec contractx.Reservation) (string, error)
	Find(ctx context.Context, restaurantID, date, timeSlot string) ([]contractx.Reservation, error)
	All(ctx context.Context) ([]contractx.Reservation, error)
	Clear(ctx context.Context) error
}
