package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPreview(t *testing.T) {
	assert.Equal(t, "<strong>bold</strong> and <em>em</em><br>next", FormatPreview("**bold** and *em*\nnext"))
}

func TestFormatPreview_StripsMarkup(t *testing.T) {
	out := FormatPreview("<script>alert(1)</script>hi")
	assert.NotContains(t, out, "<script>")
	assert.True(t, strings.HasSuffix(out, "hi"))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "0m ago", RelativeTime(now, now))
	assert.Equal(t, "59m ago", RelativeTime(now.Add(-59*time.Minute), now))
	assert.Equal(t, "1h ago", RelativeTime(now.Add(-time.Hour), now))
	assert.Equal(t, "23h ago", RelativeTime(now.Add(-23*time.Hour-59*time.Minute), now))
	assert.Equal(t, "3d ago", RelativeTime(now.Add(-75*time.Hour), now))
	assert.Equal(t, "0m ago", RelativeTime(now.Add(time.Minute), now))
}

func TestNormalizeMediaType(t *testing.T) {
	assert.Equal(t, "video/mov", NormalizeMediaType("video/quicktime"))
	assert.Equal(t, "video/avi", NormalizeMediaType("video/x-msvideo"))
	assert.Equal(t, "image/png", NormalizeMediaType("Image/PNG; charset=binary"))
}

func TestSniffMediaType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	mt, err := SniffMediaType(strings.NewReader(string(png)))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mt)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "Rust"}, SplitList(" Go, ,Rust ,"))
	assert.Nil(t, SplitList(""))
}
