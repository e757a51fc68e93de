package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingReader struct {
	io.Reader
	closed int
}

func (r *closingReader) Close() error {
	r.closed++
	return nil
}

func TestSession_AskWritesPromptAndReadsLine(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("Anna\r\nBen\n"), &out)

	answer, err := s.Ask("Titel: ")
	require.NoError(t, err)
	assert.Equal(t, "Anna", answer)

	answer, err = s.Ask("Titel: ")
	require.NoError(t, err)
	assert.Equal(t, "Ben", answer)

	assert.Equal(t, "Titel: Titel: ", out.String())
}

func TestSession_AskKeepsBlankAndSpaces(t *testing.T) {
	s := NewSession(strings.NewReader("\n  ? \n"), io.Discard)

	answer, err := s.Ask("")
	require.NoError(t, err)
	assert.Equal(t, "", answer)

	answer, err = s.Ask("")
	require.NoError(t, err)
	assert.Equal(t, "  ? ", answer)
}

func TestSession_AskAtEndOfInput(t *testing.T) {
	s := NewSession(strings.NewReader("letzte Zeile"), io.Discard)

	answer, err := s.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "letzte Zeile", answer)

	_, err = s.Ask("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestSession_Say(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(""), &out)

	s.Say("Geben Sie die Nährwerte pro %s ein:", "100ml/g")
	s.Say("Programm beendet.")

	assert.Equal(t, "Geben Sie die Nährwerte pro 100ml/g ein:\nProgramm beendet.\n", out.String())
}

func TestSession_CloseReleasesInputOnce(t *testing.T) {
	in := &closingReader{Reader: strings.NewReader("0\n")}
	s := NewSession(in, io.Discard)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, in.closed)

	_, err := s.Ask("> ")
	assert.ErrorIs(t, err, ErrClosed)
}
