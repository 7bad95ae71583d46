package mathmono

import "fmt"

// Question is the arithmetic prompt whose answer is a block value.
type Question struct {
	Text   string
	Answer int
}

// NewQuestion builds a prompt that evaluates to answer using one of ops.
// Unknown or missing operators fall back to addition.
func NewQuestion(src ValueSource, answer int, ops []string) Question {
	op := "+"
	if len(ops) > 0 {
		op = ops[src.Intn(len(ops))]
	}

	if op == "-" {
		b := valueIn(src, 1, 50)
		return Question{
			Text:   fmt.Sprintf("What is %d - %d ?", answer+b, b),
			Answer: answer,
		}
	}

	a := valueIn(src, 0, answer)
	return Question{
		Text:   fmt.Sprintf("What is %d + %d ?", a, answer-a),
		Answer: answer,
	}
}

// pickQuestion asks about the value of a random uneaten block.
func pickQuestion(src ValueSource, board *Board, ops []string) (Question, bool) {
	remaining := board.Uneaten()
	if len(remaining) == 0 {
		return Question{}, false
	}
	target := remaining[src.Intn(len(remaining))]
	return NewQuestion(src, target.Value, ops), true
}
