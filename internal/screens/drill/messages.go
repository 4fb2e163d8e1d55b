package drill

import "github.com/nitrazepam01/jmx-history/internal/history"

// statusMsg is sent when the review-mode history snapshot arrives.
type statusMsg struct {
	Status history.StatusMap
	Err    error
}

// attemptSavedMsg is sent when the attempt write finishes.
type attemptSavedMsg struct {
	Err error
}

// explanationMsg carries the rendered tutoring text for a wrong answer.
type explanationMsg struct {
	Text string
}

// advanceMsg is sent when the correct-answer feedback period ends.
type advanceMsg struct{}
