package collect

import (
	"bytes"
	"strings"

	"produktmanager/internal/prompt"
)

// script returns a session answering with lines in order and the buffer
// receiving everything written to the user.
func script(lines ...string) (*prompt.Session, *bytes.Buffer) {
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	return prompt.NewSession(strings.NewReader(input), &out), &out
}
