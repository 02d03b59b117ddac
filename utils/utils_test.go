package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Min(3, 7))
	assert.Equal(3, Min(7, 3))
	assert.Equal(7, Max(3, 7))
	assert.Equal(1, Max(1, 0))
	assert.Equal(4, Abs(-4))
	assert.Equal(4, Abs(4))
	assert.Equal(0.5, Abs(-0.5))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.25s", FormatTime(250*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_DecorateTextKeepsMessage(t *testing.T) {
	for _, mt := range []MessageType{DefaultMessage, SuccessMessage, ErrorMessage, StatusMessage, MessageType(99)} {
		assert.True(t, strings.Contains(DecorateText("icon-72.png", mt), "icon-72.png"))
	}
	assert.Equal(t, "plain", DecorateText("plain", MessageType(99)))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), 0644))
	ctype, err := DetectContentType(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	ctype, err = DetectContentType(empty)
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", ctype)

	_, err = DetectContentType(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestUtils_SpinnerOutsideTerminal(t *testing.T) {
	s := NewSpinner("working", time.Millisecond, true)
	s.enabled = false
	// Start and Stop are no-ops when the output is not a terminal.
	s.Start()
	s.Stop()
}
