package tool

import (
	"context"
	"fmt"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

const reasonNotFound = "Restaurant not found. Please search for restaurants first to get the correct restaurant_id."

type BookingResult struct {
	Success     bool                   `json:"success"`
	Reservation *contractx.Reservation `json:"reservation,omitempty"`
	Restaurant  *contractx.Restaurant  `json:"restaurant,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
}

// bookTable re-validates restaurant existence and re-derives availability
// rather than trusting any earlier check the caller may have made, then
// persists a CONFIRMED reservation. The whole check-then-act sequence runs
// under bookMu.
func (t *Toolset) bookTable(ctx context.Context, args map[string]any) (any, error) {
	restaurantID := stringArg(args, "restaurant_id")
	guestName := stringArg(args, "name")
	phone := stringArg(args, "phone")
	date := stringArg(args, "date")
	timeSlot := stringArg(args, "time")
	partySize := intArg(args, "party_size", 1)

	t.bookMu.Lock()
	defer t.bookMu.Unlock()

	restaurants, err := t.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	r := findRestaurant(restaurants, restaurantID)
	if r == nil {
		return BookingResult{Success: false, Reason: reasonNotFound}, nil
	}

	avail, err := t.availability(ctx, restaurantID, date, timeSlot, partySize)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		switch avail.Reason {
		case ReasonUnknownRestaurant:
			return BookingResult{Success: false, Reason: "Restaurant not found"}, nil
		case ReasonFull:
			return BookingResult{
				Success: false,
				Reason:  fmt.Sprintf("%s is fully booked at that time", r.Name),
			}, nil
		default:
			return BookingResult{Success: false, Reason: avail.Reason}, nil
		}
	}

	rec := contractx.Reservation{
		ID:             t.newID(),
		RestaurantID:   restaurantID,
		RestaurantName: r.Name,
		Name:           guestName,
		Phone:          phone,
		Date:           date,
		Time:           timeSlot,
		PartySize:      partySize,
		Status:         contractx.StatusConfirmed,
	}
	if _, err := t.store.Add(ctx, rec); err != nil {
		return nil, err
	}

	return BookingResult{Success: true, Reservation: &rec, Restaurant: r}, nil
}
