package courseware

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Option is a single answer choice. Letter is one of A-D; Text is the
// choice body with the "A. " prefix stripped.
type Option struct {
	Letter string
	Text   string
}

// Question is one parsed row of the courseware file. Index is the 0-based
// source position and never changes after load.
type Question struct {
	Index   int
	Text    string
	Options []Option
	Correct string
}

// OptionText returns the body for the given letter, or ok=false if the
// row has no such option.
func (q Question) OptionText(letter string) (string, bool) {
	for _, o := range q.Options {
		if o.Letter == letter {
			return o.Text, true
		}
	}
	return "", false
}

// Unusable reports whether the row cannot be answered: either zero
// options parsed, or the answer letter has no matching option. Such rows
// are kept so that indices stay aligned with the answer key, but they are
// flagged instead of rendered.
func (q Question) Unusable() bool {
	if len(q.Options) == 0 {
		return true
	}
	_, ok := q.OptionText(q.Correct)
	return !ok
}

// Load reads the two-column courseware CSV at path and parses every row.
// Column 0 is the question blob, column 1 the correct letter. Any read
// failure is fatal; per-row option problems are not.
func Load(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open courseware %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads courseware rows from r. The returned slice always has one
// Question per input row, with Index exactly 0..N-1.
func Parse(r io.Reader) ([]Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var questions []Question
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read courseware row %d: %w", len(questions), err)
		}

		blob := ""
		answer := ""
		if len(rec) > 0 {
			blob = rec[0]
		}
		if len(rec) > 1 {
			answer = rec[1]
		}

		questions = append(questions, parseRow(blob, answer, len(questions)))
	}

	return questions, nil
}

// Warnings returns the indices of unusable rows, in ascending order.
func Warnings(questions []Question) []int {
	var bad []int
	for _, q := range questions {
		if q.Unusable() {
			bad = append(bad, q.Index)
		}
	}
	return bad
}

// Letters returns the option letters of q in source order, joined for
// display, e.g. "A B C D".
func Letters(q Question) string {
	parts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		parts = append(parts, o.Letter)
	}
	return strings.Join(parts, " ")
}
