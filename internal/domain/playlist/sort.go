package playlist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects one of the display orderings.
type SortMode string

const (
	SortDateDesc    SortMode = "dateDesc"
	SortDateAsc     SortMode = "dateAsc"
	SortContentAsc  SortMode = "contentAsc"
	SortContentDesc SortMode = "contentDesc"
)

// DefaultSortMode is what the views fall back to.
const DefaultSortMode = SortDateDesc

// Sort returns a new slice ordered by the given mode; the input is
// never mutated. Date modes compare the combined date/time instant,
// content modes use locale-aware collation. An unknown mode returns the
// input order unchanged.
func Sort(items []Playlist, mode SortMode) []Playlist {
	out := make([]Playlist, len(items))
	copy(out, items)

	var less func(a, b Playlist) bool
	switch mode {
	case SortDateAsc:
		less = func(a, b Playlist) bool { return a.Instant().Before(b.Instant()) }
	case SortDateDesc:
		less = func(a, b Playlist) bool { return b.Instant().Before(a.Instant()) }
	case SortContentAsc:
		c := collate.New(language.Und)
		less = func(a, b Playlist) bool { return c.CompareString(a.Content, b.Content) < 0 }
	case SortContentDesc:
		c := collate.New(language.Und)
		less = func(a, b Playlist) bool { return c.CompareString(b.Content, a.Content) < 0 }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
