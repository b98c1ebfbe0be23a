package tool

import (
	"context"
)

const (
	ReasonUnknownRestaurant = "unknown_restaurant"
	ReasonFull              = "full"
)

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func (t *Toolset) checkAvailability(ctx context.Context, args map[string]any) (any, error) {
	return t.availability(ctx,
		stringArg(args, "restaurant_id"),
		stringArg(args, "date"),
		stringArg(args, "time"),
		intArg(args, "party_size", 1),
	)
}

// availability sums party sizes across existing reservations for the slot
// and compares against the restaurant's scalar capacity ceiling. Table sizes
// are deliberately not used for per-table packing.
func (t *Toolset) availability(ctx context.Context, restaurantID, date, timeSlot string, partySize int) (AvailabilityResult, error) {
	restaurants, err := t.catalog.Load(ctx)
	if err != nil {
		return AvailabilityResult{}, err
	}

	r := findRestaurant(restaurants, restaurantID)
	if r == nil {
		return AvailabilityResult{Available: false, Reason: ReasonUnknownRestaurant}, nil
	}

	existing, err := t.store.Find(ctx, restaurantID, date, timeSlot)
	if err != nil {
		return AvailabilityResult{}, err
	}

	used := 0
	for _, rec := range existing {
		used += rec.PartySize
	}

	if used+partySize <= r.Capacity {
		return AvailabilityResult{Available: true}, nil
	}
	return AvailabilityResult{Available: false, Reason: ReasonFull}, nil
}
