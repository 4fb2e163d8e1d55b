package quiz

import (
	"math"
	"sort"
)

// Summary is the overview aggregation of a status snapshot.
type Summary struct {
	Total     int
	Completed int
	Correct   int

	// AccuracyPct is round(100 * Correct / Completed); defined as 0 when
	// nothing is completed yet.
	AccuracyPct int

	// WrongIndices is the ascending list of question indices whose latest
	// attempt was wrong.
	WrongIndices []int
}

// Mistakes returns the size of the wrong list.
func (s Summary) Mistakes() int {
	return len(s.WrongIndices)
}

// Summarize reduces a status snapshot into the overview numbers. It is a
// pure function of its inputs and is recomputed on every overview render.
func Summarize(total int, status map[int]bool) Summary {
	sum := Summary{
		Total:     total,
		Completed: len(status),
	}

	for idx, correct := range status {
		if correct {
			sum.Correct++
		} else {
			sum.WrongIndices = append(sum.WrongIndices, idx)
		}
	}
	sort.Ints(sum.WrongIndices)

	if sum.Completed > 0 {
		sum.AccuracyPct = int(math.Round(float64(sum.Correct) / float64(sum.Completed) * 100))
	}

	return sum
}

// CellState classifies one grid cell.
type CellState int

const (
	CellUnattempted CellState = iota
	CellDone
	CellNeedsReview
)

// Cell returns the grid state for a question index: neutral when there is
// no history, done when the latest attempt was correct, needs-review
// otherwise.
func Cell(status map[int]bool, idx int) CellState {
	correct, seen := status[idx]
	switch {
	case !seen:
		return CellUnattempted
	case correct:
		return CellDone
	default:
		return CellNeedsReview
	}
}
