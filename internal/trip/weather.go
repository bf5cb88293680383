// README: Rain-mode projection over an itinerary (presentation-only, never mutates storage).
package trip

const (
	rainNameSuffix  = " (避雨推薦)"
	rainDescription = "下雨天就別勉強了，這裏有屋簷也有靈魂。"
)

// RainView derives the rainy-day presentation of an itinerary: every outdoor
// stop is shown indoor-forced with a renamed title and a replacement blurb.
// The input slice is left untouched so toggling rain off restores it exactly.
func RainView(itinerary []Destination) []Destination {
	out := make([]Destination, len(itinerary))
	for i, d := range itinerary {
		if !d.IsIndoor {
			d.Name += rainNameSuffix
			d.IsIndoor = true
			d.Description = rainDescription
		}
		out[i] = d
	}
	return out
}
