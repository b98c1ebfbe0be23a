package tool

import (
	"context"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

type searchFilter struct {
	Name        string
	Area        string
	Cuisine     string
	Ambience    string
	MinRating   float64
	MinCapacity int
}

func searchFilterFromArgs(args map[string]any) searchFilter {
	return searchFilter{
		Name:        stringArg(args, "name"),
		Area:        stringArg(args, "area"),
		Cuisine:     stringArg(args, "cuisine"),
		Ambience:    stringArg(args, "ambience"),
		MinRating:   floatArg(args, "min_rating", 0.0),
		MinCapacity: intArg(args, "min_capacity", 1),
	}
}

// searchRestaurants filters the catalog. Text filters are case-insensitive
// substring matches; numeric thresholds are inclusive. Results stay in
// catalog order.
func (t *Toolset) searchRestaurants(ctx context.Context, args map[string]any) (any, error) {
	restaurants, err := t.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterRestaurants(restaurants, searchFilterFromArgs(args)), nil
}

func filterRestaurants(restaurants []contractx.Restaurant, f searchFilter) []contractx.Restaurant {
	results := make([]contractx.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if f.Name != "" && !containsFold(r.Name, f.Name) {
			continue
		}
		if f.Area != "" && !containsFold(r.Area, f.Area) {
			continue
		}
		if f.Cuisine != "" && !containsFold(r.Cuisine, f.Cuisine) {
			continue
		}
		if f.Ambience != "" && !containsFold(r.Ambience, f.Ambience) {
			continue
		}
		if r.Rating < f.MinRating {
			continue
		}
		if r.Capacity < f.MinCapacity {
			continue
		}
		results = append(results, r)
	}
	return results
}
