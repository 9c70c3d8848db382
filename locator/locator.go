package locator

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/overpass"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	DefaultRadius     = 10000
	DefaultMaxResults = 50

	MessageUpstreamFailed = "Failed to load hospitals. Please try again."
)

// Source returns the raw map elements around an origin.
type Source interface {
	Nearby(ctx context.Context, origin geo.Coordinate, radius int) ([]overpass.Element, error)
}

type Refiner interface {
	Refine(ctx context.Context, origin geo.Coordinate, candidates []*facilities.Facility)
}

type Merger interface {
	Merge(origin geo.Coordinate, list []*facilities.Facility) []*facilities.Facility
}

// BedFiller supplies a bed count for elements whose source lacks one.
type BedFiller func() int

type Locator struct {
	Source     Source
	Classifier *facilities.Classifier
	Refiner    Refiner
	Overrides  Merger
	Radius     int
	MaxResults int
	Beds       BedFiller
}

type Result struct {
	Status     Status
	Error      string
	Facilities []*facilities.Facility
}

func New(source Source, refiner Refiner, overrides Merger) *Locator {
	return &Locator{
		Source:     source,
		Classifier: facilities.NewClassifier(),
		Refiner:    refiner,
		Overrides:  overrides,
		Radius:     DefaultRadius,
		MaxResults: DefaultMaxResults,
		Beds:       RandomBeds(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// RandomBeds draws uniformly from 10..59.
func RandomBeds(r *rand.Rand) BedFiller {
	var mu sync.Mutex
	return func() int {
		mu.Lock()
		defer mu.Unlock()
		return r.Intn(50) + 10
	}
}

// FindNearbyFacilities runs the whole ranking pipeline for origin. It never
// returns loading: the result is either ready or error.
func (l *Locator) FindNearbyFacilities(ctx context.Context, origin geo.Coordinate) Result {
	radius := l.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	elements, err := l.Source.Nearby(ctx, origin, radius)
	if err != nil {
		upstreamFailures.Inc()
		log.Logger().Error("facility query failed", zap.Error(err))
		return Result{Status: StatusError, Error: MessageUpstreamFailed}
	}

	list := l.transform(origin, elements)
	facilities.SortByDistance(list)
	list = nearestByName(list)

	if l.Refiner != nil {
		l.Refiner.Refine(ctx, origin, list)
	}
	facilities.SortByDistance(list)

	maxResults := l.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(list) > maxResults {
		list = list[:maxResults]
	}

	if l.Overrides != nil {
		list = l.Overrides.Merge(origin, list)
	}

	for _, f := range list {
		f.DirectionsURL = facilities.DirectionsURL(origin, f)
	}

	assembled.Inc()
	log.Logger().Debug("nearby facilities assembled",
		zap.Int("elements", len(elements)),
		zap.Int("results", len(list)),
	)

	return Result{Status: StatusReady, Facilities: list}
}

func (l *Locator) transform(origin geo.Coordinate, elements []overpass.Element) []*facilities.Facility {
	classifier := l.Classifier
	if classifier == nil {
		classifier = facilities.NewClassifier()
	}

	list := make([]*facilities.Facility, 0, len(elements))
	for _, element := range elements {
		name := strings.TrimSpace(element.Name())
		if name == "" {
			continue
		}
		position, ok := element.Coordinate()
		if !ok {
			continue
		}

		tags := facilities.Tags(element.Tags)
		class := classifier.Classify(tags)

		list = append(list, &facilities.Facility{
			ID:             fmt.Sprintf("%s/%d", element.Type, element.ID),
			Name:           name,
			Address:        address(tags),
			Phone:          firstOf(tags, facilities.PhoneNotAvailable, "phone", "contact:phone"),
			Website:        firstOf(tags, "", "website", "contact:website"),
			Latitude:       position.Latitude,
			Longitude:      position.Longitude,
			Distance:       geo.Round(geo.Haversine(origin, position), 2),
			DistanceSource: facilities.DistanceEstimate,
			Beds:           l.beds(tags),
			HasEmergency:   tags["emergency"] == "yes" || tags["emergency:yes"] == "yes",
			Category:       class.Category,
			Specialties:    class.Specialties,
			Ownership:      class.Ownership,
		})
	}

	return list
}

// nearestByName keeps the first facility of each name in a distance-sorted
// list. Map data often has a node and a way for the same hospital.
func nearestByName(list []*facilities.Facility) []*facilities.Facility {
	seen := make(map[string]bool, len(list))
	out := list[:0]
	for _, f := range list {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

func (l *Locator) beds(tags facilities.Tags) int {
	if n, err := strconv.Atoi(strings.TrimSpace(tags["beds"])); err == nil && n >= 0 {
		return n
	}
	if l.Beds == nil {
		return 0
	}
	return l.Beds()
}

func address(tags facilities.Tags) string {
	if full := strings.TrimSpace(tags["addr:full"]); full != "" {
		return full
	}
	street := strings.TrimSpace(tags["addr:street"])
	if street == "" {
		return facilities.AddressNotAvailable
	}
	if city := strings.TrimSpace(tags["addr:city"]); city != "" {
		return street + ", " + city
	}
	return street
}

func firstOf(tags facilities.Tags, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(tags[key]); v != "" {
			return v
		}
	}
	return fallback
}
