package courseware

import (
	"strings"
	"testing"
)

func TestParse_RowCountAndDenseIndices(t *testing.T) {
	src := `"Q1<br><br>A. opt1<br>B. opt2",a
"Q2 no options marker",B
"Q3<br><br>A. x<br>B. y<br>C. z<br>D. w",d
`
	questions, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Index != i {
			t.Fatalf("question %d has index %d", i, q.Index)
		}
	}
}

func TestParse_SplitsQuestionAndOptions(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q1<br><br>A. opt1<br>B. opt2",a`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]

	if q.Text != "Q1" {
		t.Fatalf("expected question text Q1, got %q", q.Text)
	}
	if q.Correct != "A" {
		t.Fatalf("expected correct letter A, got %q", q.Correct)
	}
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(q.Options))
	}
	if txt, ok := q.OptionText("A"); !ok || txt != "opt1" {
		t.Fatalf("option A = %q, %v", txt, ok)
	}
	if txt, ok := q.OptionText("B"); !ok || txt != "opt2" {
		t.Fatalf("option B = %q, %v", txt, ok)
	}
}

func TestParse_MissingMarkerKeepsWholeBlobAsQuestion(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Just a statement with no options",C`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]

	if q.Text != "Just a statement with no options" {
		t.Fatalf("unexpected question text %q", q.Text)
	}
	if !q.Unusable() {
		t.Fatal("expected row with no options to be flagged unusable")
	}
}

func TestParse_WhitespaceBetweenBreakTags(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q<br>  <br>A. one<br/>B. two",B`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(questions[0].Options))
	}
}

func TestParse_DropsNonMatchingCandidates(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q<br><br>A. good<br>not an option<br>E. out of range<br>B. also good",A`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %d: %+v", len(q.Options), q.Options)
	}
	if q.Options[0].Letter != "A" || q.Options[1].Letter != "B" {
		t.Fatalf("options out of order: %+v", q.Options)
	}
}

func TestParse_DuplicateLetterLastWins(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q<br><br>A. first<br>A. second<br>B. other",A`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options after overwrite, got %d", len(q.Options))
	}
	if txt, _ := q.OptionText("A"); txt != "second" {
		t.Fatalf("expected last-wins overwrite, got %q", txt)
	}
}

func TestParse_AnswerTrimmedAndUppercased(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q<br><br>A. x"," b "`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Correct != "B" {
		t.Fatalf("expected B, got %q", questions[0].Correct)
	}
}

func TestParse_Reparse_IsStable(t *testing.T) {
	src := `"What year?<br><br>A. 1919<br>B. 1921<br>C. 1949",C`

	first, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rebuild the blob from the parsed form using the same markers and
	// option pattern, then parse again.
	q := first[0]
	parts := []string{q.Text, ""}
	rebuilt := parts[0] + "<br><br>"
	for i, o := range q.Options {
		if i > 0 {
			rebuilt += "<br>"
		}
		rebuilt += o.Letter + ". " + o.Text
	}

	second := parseRow(rebuilt, q.Correct, 0)
	if second.Text != q.Text {
		t.Fatalf("question text changed on reparse: %q vs %q", second.Text, q.Text)
	}
	if len(second.Options) != len(q.Options) {
		t.Fatalf("option count changed on reparse")
	}
	for i := range q.Options {
		if second.Options[i] != q.Options[i] {
			t.Fatalf("option %d changed on reparse: %+v vs %+v", i, second.Options[i], q.Options[i])
		}
	}
}

func TestParse_AnswerWithoutMatchingOptionIsUnusable(t *testing.T) {
	questions, err := Parse(strings.NewReader(`"Q<br><br>A. one<br>B. two",D`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(q.Options))
	}
	if !q.Unusable() {
		t.Fatal("expected row whose answer letter has no option to be unusable")
	}
	if bad := Warnings(questions); len(bad) != 1 || bad[0] != 0 {
		t.Fatalf("expected Warnings to flag the row, got %v", bad)
	}
}

func TestWarnings(t *testing.T) {
	src := `"Q0<br><br>A. a",A
"Q1 broken",B
"Q2<br><br>B. b",B
"Q3 also broken",C
`
	questions, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := Warnings(questions)
	if len(bad) != 2 || bad[0] != 1 || bad[1] != 3 {
		t.Fatalf("expected [1 3], got %v", bad)
	}
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	if _, err := Load("does/not/exist.csv"); err == nil {
		t.Fatal("expected error for missing courseware file")
	}
}
