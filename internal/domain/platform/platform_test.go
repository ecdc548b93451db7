package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"youtube full url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTube},
		{"youtube short url", "https://youtu.be/xyz", YouTube},
		{"vimeo", "https://vimeo.com/123456", Vimeo},
		{"dailymotion", "https://www.dailymotion.com/video/x8abc", Dailymotion},
		{"twitch", "https://www.twitch.tv/somestreamer", Twitch},
		{"instagram", "https://www.instagram.com/reel/abc/", Instagram},
		{"unknown host", "https://example.org/x", Unknown},
		{"empty string", "", Unknown},
		{"not a url at all", "just some text", Unknown},
		{"case sensitive", "https://YOUTUBE.COM/watch", Unknown},
		{"substring anywhere", "see youtu.be/abc123 later", YouTube},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.url))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// A URL containing two known hosts resolves to the earlier rule.
	got := Classify("https://youtube.com/redirect?to=vimeo.com/1")
	assert.Equal(t, YouTube, got)
}
