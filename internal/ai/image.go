// README: Placeholder display-image URL synthesis.
package ai

import (
	"fmt"
	"math/rand"
	"net/url"
)

// placeholderImageURL formats the fixed photo-service template with a random
// disambiguator and the URL-encoded keyword. Cosmetic only: the keyword is
// not guaranteed to resolve to a relevant photo.
func placeholderImageURL(keyword string) string {
	return fmt.Sprintf(
		"https://images.unsplash.com/photo-1500000000000?q=80&w=800&auto=format&fit=crop&sig=%d&keyword=%s",
		rand.Intn(10000),
		url.QueryEscape(keyword),
	)
}
