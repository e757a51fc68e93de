// Package collect walks the fixed question sequences for each product type
// and builds typed records from the answers.
package collect

import (
	"strings"

	"produktmanager/internal/models"
)

// Skip is entered in place of a value to leave the field out of the record.
const Skip = "?"

// Prompter is the question/answer channel the collectors talk through.
type Prompter interface {
	Ask(question string) (string, error)
	Say(format string, args ...interface{})
}

// form remembers the first failed Ask; every later question is answered
// with the zero value so a collector can check the error once at the end.
type form struct {
	p   Prompter
	err error
}

func newForm(p Prompter) *form {
	return &form{p: p}
}

func (f *form) answer(question string) string {
	if f.err != nil {
		return ""
	}
	answer, err := f.p.Ask(question)
	if err != nil {
		f.err = err
		return ""
	}
	return answer
}

// text is an optional text field.
func (f *form) text(question string) *string {
	answer := f.answer(question)
	if f.err != nil || answer == Skip {
		return nil
	}
	return &answer
}

// decimal is an optional decimal field.
func (f *form) decimal(question string) *models.Number {
	answer := f.answer(question)
	if f.err != nil || answer == Skip {
		return nil
	}
	return models.Num(models.ParseDecimal(models.Normalize(answer)))
}

// integer is an optional whole-number field.
func (f *form) integer(question string) *models.Number {
	answer := f.answer(question)
	if f.err != nil || answer == Skip {
		return nil
	}
	return models.Num(models.ParseInteger(answer))
}

// value is a mandatory decimal; there is no skip and no retry.
func (f *form) value(question string) models.Number {
	return models.ParseDecimal(models.Normalize(f.answer(question)))
}

func (f *form) yes(question string) bool {
	return strings.ToLower(strings.TrimSpace(f.answer(question))) == "ja"
}

// list splits one answer on sep, dropping blank parts.
func (f *form) list(question, sep string) []string {
	answer := f.answer(question)
	if f.err != nil || answer == Skip {
		return nil
	}
	var items []string
	for _, part := range strings.Split(answer, sep) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// repeated asks question until a blank answer and returns the trimmed
// answers, ignoring Skip.
func (f *form) repeated(question string) []string {
	var items []string
	for {
		answer := f.answer(question)
		if f.err != nil || strings.TrimSpace(answer) == "" {
			return items
		}
		if answer != Skip {
			items = append(items, strings.TrimSpace(answer))
		}
	}
}
