// README: Session manager; owns all trip state and guards every transition.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lazytrip/internal/ai"
	"lazytrip/internal/trip"
)

var (
	ErrCityRequired        = errors.New("destination city is required")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidTransition   = errors.New("invalid step transition")
	ErrInvalidTag          = errors.New("invalid travel tag")
	ErrInvalidFrequency    = errors.New("invalid travel frequency")
	ErrInvalidTransport    = errors.New("invalid transport preference")
	ErrInvalidPlan         = errors.New("days must be at least 1 and budget positive")
	ErrInvalidViewMode     = errors.New("invalid view mode")
	ErrDestinationNotFound = errors.New("destination not found")
)

const defaultGenerateTimeout = 60 * time.Second

// Config carries session tunables.
type Config struct {
	GenerateTimeout time.Duration
}

// Manager is the single owner of one planning session. Views read snapshots
// and mutate state only through its methods; nothing else touches the fields.
type Manager struct {
	mu      sync.Mutex
	planner ai.Planner
	cfg     Config

	step       Step
	city       string
	startPoint string
	days       int
	budget     int
	dna        trip.UserDNA
	itinerary  []trip.Destination
	loading    bool
	isRaining  bool
	viewMode   ViewMode

	// genToken identifies the newest generation request; completions carrying
	// a stale token are dropped instead of racing last-resolved-wins.
	genToken string
}

// Snapshot is the read-only view handed to renderers. Itinerary already has
// the rain projection applied when the rain toggle is on.
type Snapshot struct {
	Step       Step               `json:"step"`
	City       string             `json:"city"`
	StartPoint string             `json:"startPoint"`
	Days       int                `json:"days"`
	Budget     int                `json:"budget"`
	DNA        trip.UserDNA       `json:"dna"`
	Itinerary  []trip.Destination `json:"itinerary"`
	Loading    bool               `json:"loading"`
	IsRaining  bool               `json:"isRaining"`
	ViewMode   ViewMode           `json:"viewMode"`
}

// NewManager creates a session with the original defaults: a 3-day trip,
// 15000 TWD, foodie and cultural taste, first visit, public transit.
func NewManager(planner ai.Planner, cfg Config) *Manager {
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = defaultGenerateTimeout
	}
	return &Manager{
		planner: planner,
		cfg:     cfg,
		step:    StepLanding,
		days:    3,
		budget:  15000,
		dna: trip.UserDNA{
			Tags:      []trip.TravelTag{trip.TagFoodie, trip.TagCultural},
			Frequency: trip.FrequencyFirstTime,
			Transport: trip.TransportPublic,
		},
		itinerary: []trip.Destination{},
		viewMode:  ViewList,
	}
}

// Snapshot copies the current state. The stored itinerary is never handed out
// directly; rain mode projects it on the fly.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var itinerary []trip.Destination
	if m.isRaining {
		itinerary = trip.RainView(m.itinerary)
	} else {
		itinerary = make([]trip.Destination, len(m.itinerary))
		copy(itinerary, m.itinerary)
	}

	dna := m.dna
	dna.Tags = make([]trip.TravelTag, len(m.dna.Tags))
	copy(dna.Tags, m.dna.Tags)

	return Snapshot{
		Step:       m.step,
		City:       m.city,
		StartPoint: m.startPoint,
		Days:       m.days,
		Budget:     m.budget,
		DNA:        dna,
		Itinerary:  itinerary,
		Loading:    m.loading,
		IsRaining:  m.isRaining,
		ViewMode:   m.viewMode,
	}
}

// Navigate moves between screens via the footer and "next"/"settings" actions.
// Itinerary is refused here: Generate is its only entry. Navigating away keeps
// configuration and any generated itinerary intact.
func (m *Manager) Navigate(to Step) error {
	if !to.Valid() {
		return ErrInvalidStep
	}
	if to == StepItinerary {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if to == m.step {
		return nil
	}
	if !CanTransition(m.step, to) {
		return ErrInvalidTransition
	}
	m.step = to
	return nil
}

// ToggleTag adds the tag when absent and removes it when present.
func (m *Manager) ToggleTag(tag trip.TravelTag) error {
	if !tag.Valid() {
		return ErrInvalidTag
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.dna.Tags {
		if t == tag {
			m.dna.Tags = append(m.dna.Tags[:i], m.dna.Tags[i+1:]...)
			return nil
		}
	}
	m.dna.Tags = append(m.dna.Tags, tag)
	return nil
}

func (m *Manager) SetFrequency(f trip.TravelFrequency) error {
	if !f.Valid() {
		return ErrInvalidFrequency
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dna.Frequency = f
	return nil
}

func (m *Manager) SetTransport(t trip.TransportPreference) error {
	if !t.Valid() {
		return ErrInvalidTransport
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dna.Transport = t
	return nil
}

// SetPlan updates the trip configuration. Range checks live here, at input
// collection time, not on the model itself.
func (m *Manager) SetPlan(city, startPoint string, days, budget int) error {
	if days < 1 || budget <= 0 {
		return ErrInvalidPlan
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.city = strings.TrimSpace(city)
	m.startPoint = strings.TrimSpace(startPoint)
	m.days = days
	m.budget = budget
	m.dna.StartPoint = m.startPoint
	return nil
}

// Generate is the planner→itinerary transition. It flips the loading flag,
// shows the itinerary screen immediately, and fills it in asynchronously.
// Each call issues a fresh token; if a second call lands before the first
// resolves, the first completion is discarded (newest request wins).
func (m *Manager) Generate(ctx context.Context) error {
	m.mu.Lock()
	if m.city == "" {
		m.mu.Unlock()
		return ErrCityRequired
	}

	token := uuid.NewString()
	m.genToken = token
	m.loading = true
	m.step = StepItinerary

	city, startPoint, days, budget := m.city, m.startPoint, m.days, m.budget
	dna := m.dna
	dna.Tags = make([]trip.TravelTag, len(m.dna.Tags))
	copy(dna.Tags, m.dna.Tags)
	m.mu.Unlock()

	// Detached from the request context: navigating away must not cancel a
	// generation in flight.
	go func() {
		genCtx, cancel := context.WithTimeout(context.Background(), m.cfg.GenerateTimeout)
		defer cancel()

		result := m.planner.GenerateItinerary(genCtx, city, startPoint, days, budget, dna)

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.genToken != token {
			return
		}
		if result == nil {
			result = []trip.Destination{}
		}
		m.itinerary = result
		m.loading = false
	}()

	return nil
}

// Swap replaces one stop by id, preserving its position. The planner call runs
// outside the lock so concurrent swaps on different cards stay independent;
// each resolution merges on its own id.
func (m *Manager) Swap(ctx context.Context, id, reason string) error {
	m.mu.Lock()
	var current trip.Destination
	found := false
	for _, d := range m.itinerary {
		if d.ID == id {
			current = d
			found = true
			break
		}
	}
	city := m.city
	dna := m.dna
	dna.Tags = make([]trip.TravelTag, len(m.dna.Tags))
	copy(dna.Tags, m.dna.Tags)
	m.mu.Unlock()

	if !found {
		return ErrDestinationNotFound
	}

	replacement := m.planner.SwapDestination(ctx, current, reason, city, dna)

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.itinerary {
		if d.ID == id {
			m.itinerary[i] = replacement
			return nil
		}
	}
	// The itinerary was regenerated while the swap was in flight; drop it.
	return nil
}

// SetRaining toggles the simulated weather. Presentation only: the stored
// itinerary is untouched and Snapshot applies the projection.
func (m *Manager) SetRaining(raining bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isRaining = raining
}

func (m *Manager) SetViewMode(mode ViewMode) error {
	if !mode.Valid() {
		return ErrInvalidViewMode
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewMode = mode
	return nil
}
