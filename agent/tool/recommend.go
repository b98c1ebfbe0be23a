package tool

import (
	"context"
	"sort"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

const maxRecommendations = 5

// getRecommendations scores every restaurant against the stated preferences
// and returns the top five. The date and time arguments are accepted for
// call-shape compatibility but do not participate in scoring in this
// version.
func (t *Toolset) getRecommendations(ctx context.Context, args map[string]any) (any, error) {
	prefs := mapArg(args, "preferences")
	partySize := intArg(args, "party_size", 1)
	_ = stringArg(args, "date")
	_ = stringArg(args, "time")

	restaurants, err := t.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return recommend(restaurants, prefs, partySize), nil
}

type scoredRestaurant struct {
	restaurant contractx.Restaurant
	score      float64
}

// Scoring: +3 cuisine match, +2 area match, +2 ambience match, the raw
// rating value, +1 within budget, +2 for fitting the party. Restaurants too
// small for the party are excluded outright. The sort is stable, so ties
// keep catalog order.
func recommend(restaurants []contractx.Restaurant, prefs map[string]any, partySize int) []contractx.Restaurant {
	cuisine := stringArg(prefs, "cuisine")
	area := stringArg(prefs, "area")
	ambience := stringArg(prefs, "ambience")
	budget := floatArg(prefs, "budget", 0)

	scored := make([]scoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Capacity < partySize {
			continue
		}

		score := 0.0
		if cuisine != "" && containsFold(r.Cuisine, cuisine) {
			score += 3
		}
		if area != "" && containsFold(r.Area, area) {
			score += 2
		}
		if ambience != "" && containsFold(r.Ambience, ambience) {
			score += 2
		}
		score += r.Rating
		if budget > 0 && float64(r.AvgSpend) <= budget {
			score++
		}
		score += 2

		scored = append(scored, scoredRestaurant{restaurant: r, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := len(scored)
	if n > maxRecommendations {
		n = maxRecommendations
	}
	results := make([]contractx.Restaurant, 0, n)
	for _, s := range scored[:n] {
		results = append(results, s.restaurant)
	}
	return results
}
