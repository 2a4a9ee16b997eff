package dispatch

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"mediride/pkg/models"
)

var streets = []string{
	"Main St",
	"Oak Ave",
	"Maple Dr",
	"Cedar Ln",
	"Park Blvd",
	"Riverside Rd",
	"Hillcrest Ave",
	"Washington St",
}

// Source produces the simulated dispatch values: driver assignment,
// estimated arrival and mock reverse geocoding. Seedable so tests are
// deterministic; a zero seed falls back to the clock.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// EstimatedArrival returns minutes until arrival, in [5, 15].
func (s *Source) EstimatedArrival() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 5 + s.rng.Intn(11)
}

// AssignDriver fabricates the driver record attached to every booking.
// Rating falls in [4.0, 5.0).
func (s *Source) AssignDriver() *models.DriverInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.DriverInfo{
		Name:          fmt.Sprintf("Driver %d", 1+s.rng.Intn(5)),
		ContactNumber: fmt.Sprintf("+1 (555) %03d-%04d", 100+s.rng.Intn(900), 1000+s.rng.Intn(9000)),
		Rating:        4 + s.rng.Float64(),
	}
}

// ReverseGeocode converts device coordinates into a fabricated street
// address. The returned coordinates carry a slight jitter around the
// input, matching the imprecision of the mock map.
func (s *Source) ReverseGeocode(lat, lng float64) models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Location{
		Address: fmt.Sprintf("%d %s", 1+s.rng.Intn(999), streets[s.rng.Intn(len(streets))]),
		Coordinates: &models.Coordinates{
			Lat: lat + (s.rng.Float64()-0.5)*0.01,
			Lng: lng + (s.rng.Float64()-0.5)*0.01,
		},
	}
}
