package courseware

import (
	"regexp"
	"strings"
)

var (
	// A blank line in the source is encoded as two <br> tags, optionally
	// separated by whitespace. Only the first occurrence splits question
	// from options.
	blockSplit = regexp.MustCompile(`<br>\s*<br>`)

	// Individual options are separated by single (possibly self-closing)
	// <br> tags.
	lineSplit = regexp.MustCompile(`<br\s*/?>`)

	// An option candidate is "letter, period, whitespace, body". (?s) lets
	// the body span embedded newlines.
	optPattern = regexp.MustCompile(`(?s)^\s*([A-D])\.\s*(.*)`)
)

// parseRow turns one raw courseware record into a Question. Candidates in
// the options block that don't match the letter pattern are dropped;
// duplicate letters overwrite (last wins). A row whose options block
// yields nothing is still returned so that indices stay dense.
func parseRow(blob, answer string, idx int) Question {
	text := blob
	optionsBlock := ""

	if loc := blockSplit.FindStringIndex(blob); loc != nil {
		text = strings.TrimSpace(blob[:loc[0]])
		optionsBlock = strings.TrimSpace(blob[loc[1]:])
	}

	var options []Option
	for _, candidate := range lineSplit.Split(optionsBlock, -1) {
		m := optPattern.FindStringSubmatch(strings.TrimSpace(candidate))
		if m == nil {
			continue
		}
		letter, body := m[1], m[2]
		if i := optionIndex(options, letter); i >= 0 {
			options[i].Text = body
			continue
		}
		options = append(options, Option{Letter: letter, Text: body})
	}

	return Question{
		Index:   idx,
		Text:    text,
		Options: options,
		Correct: strings.ToUpper(strings.TrimSpace(answer)),
	}
}

func optionIndex(options []Option, letter string) int {
	for i, o := range options {
		if o.Letter == letter {
			return i
		}
	}
	return -1
}
