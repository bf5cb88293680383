// README: Typed decode and required-field checks for model responses.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"lazytrip/internal/trip"
)

// destinationPayload is the wire shape declared in the response schema.
// The imageSearchKeyword never reaches the domain model; it is consumed
// here to synthesize the display image URL.
type destinationPayload struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	Description        string  `json:"description"`
	IsIndoor           bool    `json:"isIndoor"`
	Rating             float64 `json:"rating"`
	Time               string  `json:"time"`
	Duration           int     `json:"duration"`
	Cost               string  `json:"cost"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	ImageSearchKeyword string  `json:"imageSearchKeyword"`
}

// validate re-checks the contract locally instead of trusting the schema
// declaration alone. Type is intentionally not checked against the tag
// vocabulary; the model may label stops freely.
func (p destinationPayload) validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("missing id")
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("missing name (id %s)", p.ID)
	case strings.TrimSpace(p.Description) == "":
		return fmt.Errorf("missing description (id %s)", p.ID)
	case p.Duration < 0:
		return fmt.Errorf("negative duration (id %s)", p.ID)
	}
	return nil
}

func (p destinationPayload) toDestination() trip.Destination {
	keyword := p.ImageSearchKeyword
	if keyword == "" {
		keyword = p.Name
	}
	return trip.Destination{
		ID:          p.ID,
		Name:        p.Name,
		Type:        trip.TravelTag(p.Type),
		Description: p.Description,
		IsIndoor:    p.IsIndoor,
		Rating:      p.Rating,
		Time:        p.Time,
		Duration:    p.Duration,
		Cost:        p.Cost,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Image:       placeholderImageURL(keyword),
	}
}

// decodeItinerary parses an array response. An empty payload is a valid
// zero-stop itinerary; one malformed element rejects the whole batch so the
// caller never stores a partially shaped result.
func decodeItinerary(raw string) ([]trip.Destination, error) {
	if strings.TrimSpace(raw) == "" {
		return []trip.Destination{}, nil
	}
	var payloads []destinationPayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		return nil, fmt.Errorf("parse itinerary: %w", err)
	}
	itinerary := make([]trip.Destination, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))
	for i, p := range payloads {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("element %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = true
		itinerary = append(itinerary, p.toDestination())
	}
	return itinerary, nil
}

// decodeDestination parses a single-object response.
func decodeDestination(raw string) (trip.Destination, error) {
	if strings.TrimSpace(raw) == "" {
		return trip.Destination{}, fmt.Errorf("empty payload")
	}
	var payload destinationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return trip.Destination{}, fmt.Errorf("parse destination: %w", err)
	}
	if err := payload.validate(); err != nil {
		return trip.Destination{}, err
	}
	return payload.toDestination(), nil
}
