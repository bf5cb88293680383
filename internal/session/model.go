// README: View-state machine steps and display toggles.
package session

// Step is one screen of the four-stage planning flow.
type Step string

const (
	StepLanding    Step = "landing"
	StepOnboarding Step = "onboarding"
	StepPlanner    Step = "planner"
	StepItinerary  Step = "itinerary"
)

func (s Step) Valid() bool {
	switch s {
	case StepLanding, StepOnboarding, StepPlanner, StepItinerary:
		return true
	}
	return false
}

// ViewMode toggles the itinerary screen between the list and the map placeholder.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewMap  ViewMode = "map"
)

func (m ViewMode) Valid() bool {
	return m == ViewList || m == ViewMap
}

// AllowedTransitions represents the screen flow (diagram) as code. The footer
// shortcuts reach landing, onboarding, and planner from anywhere; itinerary is
// enterable only through Generate, which owns the single validation gate.
var AllowedTransitions = map[Step][]Step{
	StepLanding:    {StepOnboarding, StepPlanner},
	StepOnboarding: {StepLanding, StepPlanner},
	StepPlanner:    {StepLanding, StepOnboarding, StepItinerary},
	StepItinerary:  {StepLanding, StepOnboarding, StepPlanner},
}

func CanTransition(from, to Step) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
