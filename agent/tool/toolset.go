package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	catalogx "github.com/nattawoot/maitre/agent/catalog"
	contractx "github.com/nattawoot/maitre/agent/contract"
	reservationx "github.com/nattawoot/maitre/agent/reservation"
)

const (
	ToolSearchRestaurants  = "search_restaurants"
	ToolCheckAvailability  = "check_availability"
	ToolBookTable          = "book_table"
	ToolGetRecommendations = "get_recommendations"
)

// Toolset executes the four agent operations against the catalog and the
// reservation store. All operations are read-only except book_table.
type Toolset struct {
	catalog catalogx.Reader
	store   reservationx.Store

	// bookMu serializes the check-then-act sequence inside book_table so two
	// in-process bookings cannot both pass the capacity check for one slot.
	bookMu sync.Mutex

	newID func() string
}

func NewToolset(catalog catalogx.Reader, store reservationx.Store) (*Toolset, error) {
	if catalog == nil {
		return nil, errors.New("catalog reader is required")
	}
	if store == nil {
		return nil, errors.New("reservation store is required")
	}
	return &Toolset{
		catalog: catalog,
		store:   store,
		newID:   shortID,
	}, nil
}

// Execute dispatches an invocation across a closed set of tool names.
// Unknown names, tool errors, and tool panics all resolve to a structured
// {"error": ...} result; execution never crashes the caller.
func (t *Toolset) Execute(ctx context.Context, inv contractx.ToolInvocation) (result any) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("tool", inv.Tool).Interface("panic", r).Msg("tool execution panicked")
			result = errorResult(fmt.Sprintf("tool '%s' failed: %v", inv.Tool, r))
		}
	}()

	args := inv.Args
	if args == nil {
		args = map[string]any{}
	}

	var (
		out any
		err error
	)
	switch inv.Tool {
	case ToolSearchRestaurants:
		out, err = t.searchRestaurants(ctx, args)
	case ToolCheckAvailability:
		out, err = t.checkAvailability(ctx, args)
	case ToolBookTable:
		out, err = t.bookTable(ctx, args)
	case ToolGetRecommendations:
		out, err = t.getRecommendations(ctx, args)
	default:
		return errorResult(fmt.Sprintf("Unknown tool '%s'", inv.Tool))
	}
	if err != nil {
		log.Warn().Err(err).Str("tool", inv.Tool).Msg("tool execution failed")
		return errorResult(err.Error())
	}
	return out
}

func errorResult(msg string) map[string]any {
	return map[string]any{"error": msg}
}

func shortID() string {
	return uuid.NewString()[:8]
}

func findRestaurant(restaurants []contractx.Restaurant, id string) *contractx.Restaurant {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i]
		}
	}
	return nil
}

// containsFold reports whether needle is a case-insensitive substring of
// haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
