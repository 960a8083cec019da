package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const scrollFPS = 60

// scroller animates the item list offset with a spring, the way the stream
// view eases its cursor.
type scroller struct {
	spring  harmonica.Spring
	animate bool

	pos      float64 // current animated offset
	velocity float64
	target   float64
	running  bool
}

func newScroller(animate bool) scroller {
	return scroller{
		// Higher frequency = faster response, higher damping = less bounce
		spring:  harmonica.NewSpring(harmonica.FPS(scrollFPS), 6.0, 0.8),
		animate: animate,
	}
}

// ScrollTo sets the target offset and reports whether a new animation must
// be started (the caller then schedules frames).
func (s *scroller) ScrollTo(offset int) bool {
	s.target = float64(max(0, offset))
	if !s.animate {
		s.Jump(offset)
		return false
	}
	if s.running || !s.moving() {
		return false
	}
	s.running = true
	return true
}

// Jump moves to offset immediately and stops any animation.
func (s *scroller) Jump(offset int) {
	s.pos = float64(max(0, offset))
	s.target = s.pos
	s.velocity = 0
	s.running = false
}

// Step advances one frame. It reports whether more frames are needed.
func (s *scroller) Step() bool {
	s.pos, s.velocity = s.spring.Update(s.pos, s.velocity, s.target)
	if !s.moving() {
		s.pos, s.velocity = s.target, 0
		s.running = false
	}
	return s.running
}

// Offset returns the list row at the top of the viewport.
func (s scroller) Offset() int {
	return max(0, int(math.Round(s.pos)))
}

// Target returns the offset the animation is heading to.
func (s scroller) Target() int {
	return int(s.target)
}

func (s scroller) moving() bool {
	return math.Abs(s.pos-s.target) > 0.01 || math.Abs(s.velocity) > 0.01
}

// frameCmd schedules the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollFrame{}
	})
}
