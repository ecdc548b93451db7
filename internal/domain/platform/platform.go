package platform

import "strings"

// Platform is the coarse classification of a bookmark's hosting service.
type Platform string

const (
	YouTube     Platform = "YouTube"
	Vimeo       Platform = "Vimeo"
	Dailymotion Platform = "Dailymotion"
	Twitch      Platform = "Twitch"
	Instagram   Platform = "Instagram"
	Unknown     Platform = "Unknown"
)

func (p Platform) String() string {
	return string(p)
}

type rule struct {
	substr string
	label  Platform
}

// Ordered rule table, first match wins. Matching is a case-sensitive
// substring test, so the input does not have to be a well-formed URL.
var rules = []rule{
	{"youtube.com", YouTube},
	{"youtu.be", YouTube},
	{"vimeo.com", Vimeo},
	{"dailymotion.com", Dailymotion},
	{"twitch.tv", Twitch},
	{"instagram.com", Instagram},
}

// Classify returns the platform label for a URL. It always returns a
// label, falling back to Unknown when no rule matches.
func Classify(rawURL string) Platform {
	for _, r := range rules {
		if strings.Contains(rawURL, r.substr) {
			return r.label
		}
	}
	return Unknown
}
