package session

import (
	"fmt"

	"github.com/abelbrown/tagsift/internal/classify"
)

// Counts returns the number of hidden items and of visible marked items.
func (s *Session) Counts() (hidden, marked int) {
	return classify.Counts(s.verdicts)
}

// Header summarizes the filter effect as "(H hidden, M marked)". It is empty
// when nothing is hidden or marked.
func (s *Session) Header() string {
	hidden, marked := s.Counts()
	if hidden == 0 && marked == 0 {
		return ""
	}
	return fmt.Sprintf("(%d hidden, %d marked)", hidden, marked)
}

// CanReset reports whether a reset would change anything visible.
func (s *Session) CanReset() bool {
	return s.Header() != ""
}
