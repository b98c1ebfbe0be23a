// Command datagen writes a synthetic restaurant catalog for local runs and
// demos.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

var (
	areas = []string{
		"Connaught Place", "Hauz Khas", "Saket", "Karol Bagh", "Chanakyapuri",
		"Lajpat Nagar", "Greater Kailash", "Rajouri Garden", "Dwarka",
		"Vasant Kunj", "Noida Sector 18", "Cyber City Gurgaon",
		"MG Road Gurgaon", "Punjabi Bagh", "Khan Market",
	}
	cuisines = []string{
		"Indian", "Italian", "Chinese", "Continental", "Mexican", "Thai",
		"Japanese", "Cafe",
	}
	ambiences  = []string{"cozy", "family", "business", "casual"}
	namePre    = []string{"Spice", "Casa", "Green", "Blue", "Pasta", "Sakura", "Mango", "Olive"}
	nameSuf    = []string{"House", "Bistro", "Kitchen", "Garden", "Corner", "Palace"}
	capacities = []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	avgSpends  = []int{300, 400, 500, 800, 1000, 1500}
)

var openHours = map[string]string{
	"mon": "11:00-23:00",
	"tue": "11:00-23:00",
	"wed": "11:00-23:00",
	"thu": "11:00-23:00",
	"fri": "11:00-00:00",
	"sat": "11:00-00:00",
	"sun": "11:00-23:00",
}

func main() {
	out := flag.String("out", "data/restaurants.json", "output catalog file")
	count := flag.Int("count", 100, "number of restaurants to generate")
	seed := flag.Int64("seed", 0, "random seed (0 uses a random source)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	restaurants := generate(rng, *count)

	if err := writeCatalog(*out, restaurants); err != nil {
		fmt.Fprintln(os.Stderr, "datagen:", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d restaurants at %s\n", len(restaurants), *out)
}

func generate(rng *rand.Rand, count int) []contractx.Restaurant {
	restaurants := make([]contractx.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		capacity := capacities[rng.Intn(len(capacities))]
		restaurants = append(restaurants, contractx.Restaurant{
			ID:        fmt.Sprintf("R%d", 1000+i),
			Name:      namePre[rng.Intn(len(namePre))] + " " + nameSuf[rng.Intn(len(nameSuf))],
			Area:      areas[rng.Intn(len(areas))],
			Cuisine:   cuisines[rng.Intn(len(cuisines))],
			Capacity:  capacity,
			Tables:    genTables(rng, capacity),
			AvgSpend:  avgSpends[rng.Intn(len(avgSpends))],
			Rating:    roundRating(3.5 + rng.Float64()*1.4),
			Ambience:  ambiences[rng.Intn(len(ambiences))],
			OpenHours: openHours,
		})
	}
	return restaurants
}

// genTables fills the capacity with a mix of 2/4/6 seat tables, the last
// table shrinking to whatever remains.
func genTables(rng *rand.Rand, capacity int) []int {
	sizes := []int{2, 4, 4, 6}
	var tables []int
	remaining := capacity
	for remaining > 0 {
		t := sizes[rng.Intn(len(sizes))]
		if t > remaining {
			t = remaining
		}
		tables = append(tables, t)
		remaining -= t
	}
	return tables
}

func roundRating(r float64) float64 {
	return float64(int(r*10+0.5)) / 10
}

func writeCatalog(path string, restaurants []contractx.Restaurant) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(restaurants, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
