package playlist

import "time"

// Layouts for the split creation timestamp. The store stamps both at
// insertion; they never change afterwards.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Completed is string-encoded in the stored data.
const (
	NotCompleted = "false"
	Completed    = "true"
)

// Playlist is a single bookmarked video entry.
type Playlist struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Sauce     string `json:"sauce"`
	App       string `json:"app"`
	Completed string `json:"completed"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Owner     int    `json:"owner,omitempty"`
}

// Instant combines the split date/time fields back into one moment.
// Unparseable stamps collapse to the zero time so they sort together.
func (p Playlist) Instant() time.Time {
	t, err := time.Parse(DateLayout+" "+TimeLayout, p.Date+" "+p.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToggledCompleted returns the flipped completion flag. Any value other
// than "true" counts as not completed.
func (p Playlist) ToggledCompleted() string {
	if p.Completed == Completed {
		return NotCompleted
	}
	return Completed
}
