package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// Shimmer animation tuning. A soft highlight sweeps across the selected
// title, pausing briefly between passes.
const (
	shimmerSpeedMs = 100
	shimmerWidth   = 0.25 // highlight width as a ratio of text length
	shimmerCycleMs = 1800
	shimmerPauseMs = 500
)

// ShimmerState tracks one sweeping highlight
type ShimmerState struct {
	center     float64
	lastUpdate time.Time
	active     bool
	paused     bool
	pauseStart time.Time
	truecolor  bool
}

// NewShimmerState creates a shimmer in its starting position
func NewShimmerState() *ShimmerState {
	return &ShimmerState{
		lastUpdate: time.Now(),
		active:     true,
		truecolor:  os.Getenv("COLORTERM") == "truecolor",
	}
}

// Reset restarts the sweep (call when the selection changes)
func (s *ShimmerState) Reset() {
	s.center = 0
	s.lastUpdate = time.Now()
	s.paused = false
	s.pauseStart = time.Time{}
}

// TickInterval returns how often the owning model should tick
func (s *ShimmerState) TickInterval() time.Duration {
	return shimmerSpeedMs * time.Millisecond
}

// ShouldTick reports whether the animation is running
func (s *ShimmerState) ShouldTick() bool {
	return s.active
}

// advance moves the highlight center forward one tick
func (s *ShimmerState) advance(textLen int) {
	now := time.Now()
	if now.Sub(s.lastUpdate).Milliseconds() < shimmerSpeedMs || textLen <= 0 {
		return
	}

	if s.paused {
		if now.Sub(s.pauseStart).Milliseconds() >= shimmerPauseMs {
			s.paused = false
			s.center = -float64(textLen) * shimmerWidth // start before the text
		}
		s.lastUpdate = now
		return
	}

	ticksPerCycle := float64(shimmerCycleMs) / float64(shimmerSpeedMs)
	distance := float64(textLen) * (1.0 + 2.0*shimmerWidth)
	s.center += distance / ticksPerCycle

	maxCenter := float64(textLen) * (1.0 + shimmerWidth)
	if s.center >= maxCenter {
		s.paused = true
		s.pauseStart = now
		s.center = maxCenter
	}

	s.lastUpdate = now
}

// Render draws text with the shimmer highlight, truncated to maxWidth
func (s *ShimmerState) Render(text string, maxWidth int) string {
	if len(text) > maxWidth && maxWidth > 3 {
		text = text[:maxWidth-3] + "..."
	}
	if len(text) == 0 {
		return ""
	}

	s.advance(len(text))

	if !s.active {
		return fmt.Sprintf("\033[38;2;52;211;153m%s\033[0m", text) // static accent
	}
	if !s.truecolor {
		return s.renderFallback(text)
	}
	return s.renderTrueColor(text)
}

// renderTrueColor blends each glyph between the base sage and a pale
// green highlight along a Gaussian curve around the sweep center.
func (s *ShimmerState) renderTrueColor(text string) string {
	var b strings.Builder

	baseR, baseG, baseB := 175, 194, 183          // #AFC2B7
	highR, highG, highB := 230, 255, 243          // pale mint
	sigma := shimmerWidth * float64(len(text)) / 2
	if sigma < 1.0 {
		sigma = 1.0
	}

	for i, char := range text {
		dx := float64(i) - s.center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		r := int(float64(baseR)*(1-w) + float64(highR)*w)
		g := int(float64(baseG)*(1-w) + float64(highG)*w)
		bl := int(float64(baseB)*(1-w) + float64(highB)*w)

		b.WriteString(fmt.Sprintf("\033[38;2;%d;%d;%dm%c", r, g, bl, char))
	}
	b.WriteString("\033[0m")

	return b.String()
}

// renderFallback approximates the sweep with 256-color highlighting
func (s *ShimmerState) renderFallback(text string) string {
	width := int(shimmerWidth * float64(len(text)))
	if width < 1 {
		width = 1
	}
	start := int(s.center) - width/2
	end := start + width

	var b strings.Builder
	for i, char := range text {
		if i >= start && i < end {
			b.WriteString(fmt.Sprintf("\033[38;5;121m%c", char)) // light green
		} else {
			b.WriteString(fmt.Sprintf("\033[38;5;250m%c", char)) // light grey
		}
	}
	b.WriteString("\033[0m")

	return b.String()
}
