package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ShimmerConfig controls the highlight that sweeps across the active label
type ShimmerConfig struct {
	Enabled        bool
	SpeedMs        int     // tick length
	WidthRatio     float64 // highlight width relative to the text
	CycleMs        int     // one sweep
	PauseBetweenMs int
}

// DefaultShimmerConfig returns the default shimmer configuration. Setting
// NO_COLOR or HEALTHCLUB_REDUCE_MOTION disables the animation.
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        os.Getenv("NO_COLOR") == "" && os.Getenv("HEALTHCLUB_REDUCE_MOTION") == "",
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// shimmerTickMsg is sent when the shimmer should advance
type shimmerTickMsg struct{}

// Shimmer is the animation state. It advances on wall time, so several
// views can render it between ticks.
type Shimmer struct {
	config     ShimmerConfig
	center     float64
	lastUpdate time.Time
	pausedAt   time.Time
	paused     bool
}

func NewShimmer(config ShimmerConfig) *Shimmer {
	return &Shimmer{config: config, lastUpdate: time.Now()}
}

// Tick schedules the next shimmerTickMsg, or nil when disabled
func (s *Shimmer) Tick() tea.Cmd {
	if !s.config.Enabled {
		return nil
	}
	return tea.Tick(time.Duration(s.config.SpeedMs)*time.Millisecond, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Reset restarts the sweep, e.g. when the selection moves
func (s *Shimmer) Reset() {
	s.center = 0
	s.paused = false
	s.lastUpdate = time.Now()
}

func (s *Shimmer) advance(textLen int, now time.Time) {
	if textLen == 0 || now.Sub(s.lastUpdate) < time.Duration(s.config.SpeedMs)*time.Millisecond {
		return
	}
	s.lastUpdate = now

	width := float64(textLen) * s.config.WidthRatio
	if s.paused {
		if now.Sub(s.pausedAt) >= time.Duration(s.config.PauseBetweenMs)*time.Millisecond {
			s.paused = false
			s.center = -width // Start before the text
		}
		return
	}

	ticksPerCycle := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	s.center += (float64(textLen) + 2*width) / ticksPerCycle

	if s.center >= float64(textLen)+width {
		s.paused = true
		s.pausedAt = now
	}
}

// Render paints text with the highlight at its current position
func (s *Shimmer) Render(text string) string {
	if !s.config.Enabled {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(text)
	}

	runes := []rune(text)
	s.advance(len(runes), time.Now())

	sigma := math.Max(1, s.config.WidthRatio*float64(len(runes))/2)
	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		b.WriteString(lipgloss.NewStyle().Foreground(blend(ColorSecondaryText, "#ECFDF5", weight)).Render(string(r)))
	}
	return b.String()
}

// blend mixes two #rrggbb colors, w=0 gives a and w=1 gives b
func blend(a, b string, w float64) lipgloss.Color {
	var ar, ag, ab, br, bg, bb int
	fmt.Sscanf(a, "#%02x%02x%02x", &ar, &ag, &ab)
	fmt.Sscanf(b, "#%02x%02x%02x", &br, &bg, &bb)
	mix := func(x, y int) int { return int(float64(x)*(1-w) + float64(y)*w) }
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb)))
}
