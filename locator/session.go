package locator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

const (
	MessageLocationDenied = "Unable to retrieve your location. Please enable location access."
	MessageUnsupported    = "Geolocation is not supported by your browser"
)

var (
	ErrPermissionDenied       = errors.New("geolocation permission denied")
	ErrPositionUnavailable    = errors.New("geolocation position unavailable")
	ErrGeolocationUnsupported = errors.New("geolocation unsupported")
)

// Position is the outcome of a client-side location acquisition: either a
// coordinate or the reason there is none.
type Position struct {
	Coordinate geo.Coordinate
	Err        error
}

func (p Position) resolve() (geo.Coordinate, error) {
	if p.Err != nil {
		return geo.Coordinate{}, p.Err
	}
	if !p.Coordinate.Valid() {
		return geo.Coordinate{}, ErrPositionUnavailable
	}
	return p.Coordinate, nil
}

func positionMessage(err error) (string, string) {
	switch {
	case errors.Is(err, ErrGeolocationUnsupported):
		return MessageUnsupported, "unsupported"
	case errors.Is(err, ErrPermissionDenied):
		return MessageLocationDenied, "denied"
	default:
		return MessageLocationDenied, "unavailable"
	}
}

type Finder interface {
	FindNearbyFacilities(ctx context.Context, origin geo.Coordinate) Result
}

// Snapshot is a copy of a session's observable state.
type Snapshot struct {
	ID         string                 `json:"session_id"`
	Status     Status                 `json:"status"`
	Error      string                 `json:"error,omitempty"`
	Origin     *geo.Coordinate        `json:"origin,omitempty"`
	Facilities []*facilities.Facility `json:"facilities"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// Session holds the last result for one client. Runs are not serialized;
// whichever run resolves last owns the state.
type Session struct {
	mu         sync.RWMutex
	id         string
	status     Status
	err        string
	origin     *geo.Coordinate
	facilities []*facilities.Facility
	updatedAt  time.Time
}

func NewSession(id string) *Session {
	return &Session{id: id, status: StatusIdle, updatedAt: time.Now()}
}

func (s *Session) ID() string {
	return s.id
}

// Locate moves the session to loading, resolves the position and runs the
// pipeline. It is also the only way out of the error state.
func (s *Session) Locate(ctx context.Context, finder Finder, position Position) Snapshot {
	s.set(StatusLoading, "", nil, nil)

	origin, err := position.resolve()
	if err != nil {
		message, reason := positionMessage(err)
		positionFailures.WithLabelValues(reason).Inc()
		s.set(StatusError, message, nil, nil)
		return s.Snapshot(facilities.Filter{})
	}

	result := finder.FindNearbyFacilities(ctx, origin)
	s.set(result.Status, result.Error, &origin, result.Facilities)

	return s.Snapshot(facilities.Filter{})
}

func (s *Session) set(status Status, message string, origin *geo.Coordinate, list []*facilities.Facility) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.err = message
	s.origin = origin
	s.facilities = list
	s.updatedAt = time.Now()
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns the current state with filter applied to the last list.
func (s *Session) Snapshot(filter facilities.Filter) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := filter.Apply(s.facilities)

	var origin *geo.Coordinate
	if s.origin != nil {
		o := *s.origin
		origin = &o
	}

	return Snapshot{
		ID:         s.id,
		Status:     s.status,
		Error:      s.err,
		Origin:     origin,
		Facilities: list,
		UpdatedAt:  s.updatedAt,
	}
}
