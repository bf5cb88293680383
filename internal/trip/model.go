// README: Travel domain model; preference enums and itinerary records.
package trip

// TravelTag classifies both a traveller's taste and a destination's genre.
// Values double as display labels; consumers may compare or render them directly.
type TravelTag string

const (
	TagLandscape TravelTag = "景觀派"
	TagFoodie    TravelTag = "吃貨派"
	TagCultural  TravelTag = "文青派"
	TagTrendy    TravelTag = "嚐鮮派"
	TagBudget    TravelTag = "精算師"
	TagLuxury    TravelTag = "土豪"
	TagShopping  TravelTag = "購物狂"
)

// AllTravelTags returns the full tag vocabulary in display order.
func AllTravelTags() []TravelTag {
	return []TravelTag{TagLandscape, TagFoodie, TagCultural, TagTrendy, TagBudget, TagLuxury, TagShopping}
}

func (t TravelTag) Valid() bool {
	for _, v := range AllTravelTags() {
		if t == v {
			return true
		}
	}
	return false
}

// TransportPreference is how the traveller wants to move between stops.
type TransportPreference string

const (
	TransportDriving TransportPreference = "自駕"
	TransportPublic  TransportPreference = "大眾運輸"
	TransportMixed   TransportPreference = "混合"
)

func AllTransportPreferences() []TransportPreference {
	return []TransportPreference{TransportDriving, TransportPublic, TransportMixed}
}

func (t TransportPreference) Valid() bool {
	for _, v := range AllTransportPreferences() {
		if t == v {
			return true
		}
	}
	return false
}

// TravelFrequency is how familiar the traveller is with the city.
// It is a prompt hint only; nothing downstream branches on it.
type TravelFrequency string

const (
	FrequencyFirstTime  TravelFrequency = "第一次 (經典線)"
	FrequencySecondTime TravelFrequency = "第二次 (深度線)"
	FrequencyExpert     TravelFrequency = "老司機 (私房線)"
)

func AllTravelFrequencies() []TravelFrequency {
	return []TravelFrequency{FrequencyFirstTime, FrequencySecondTime, FrequencyExpert}
}

func (f TravelFrequency) Valid() bool {
	for _, v := range AllTravelFrequencies() {
		if f == v {
			return true
		}
	}
	return false
}

// UserDNA is the traveller's standing taste profile for one planning session.
type UserDNA struct {
	Tags       []TravelTag         `json:"tags"`
	Frequency  TravelFrequency     `json:"frequency"`
	Transport  TransportPreference `json:"transport"`
	StartPoint string              `json:"startPoint,omitempty"`
}

// Destination is one itinerary stop. ID is the merge key for swaps:
// the active itinerary holds exactly one destination per id at any time.
type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        TravelTag `json:"type"`
	Description string    `json:"description"`
	IsIndoor    bool      `json:"isIndoor"`
	Rating      float64   `json:"rating"`
	Time        string    `json:"time"`     // display range, e.g. "09:00 - 11:00"
	Duration    int       `json:"duration"` // minutes
	Cost        string    `json:"cost"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Image       string    `json:"image"`
}

// TripPlan aggregates one session's configuration and its generated stops.
type TripPlan struct {
	Destination string        `json:"destination"`
	StartPoint  string        `json:"startPoint"`
	Days        int           `json:"days"`
	Budget      int           `json:"budget"`
	Itinerary   []Destination `json:"itinerary"`
}
