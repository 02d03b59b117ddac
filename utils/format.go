package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

var palette = map[MessageType]*color.Color{
	DefaultMessage: color.New(color.Reset),
	SuccessMessage: color.New(color.FgGreen),
	ErrorMessage:   color.New(color.FgRed),
	StatusMessage:  color.New(color.FgCyan, color.Bold),
}

// DecorateText shows the message types in different colors.
// Colors are dropped when the output is not a terminal or NO_COLOR is set.
func DecorateText(s string, msgType MessageType) string {
	c, ok := palette[msgType]
	if !ok {
		return s
	}
	return c.Sprint(s)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
}
