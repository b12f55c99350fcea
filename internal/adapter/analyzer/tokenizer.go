package analyzer

import (
	"bufio"
	"io"
	"strings"
)

// TokenStream lazily splits a text stream into space-delimited tokens.
// Each line keeps its trailing newline, so the last token of a line carries
// it, a blank line or a line ending in " \n" yields the token "\n", and runs
// of spaces yield empty tokens. A TokenStream cannot be restarted.
type TokenStream struct {
	reader  *bufio.Reader
	pending []string
	done    bool
	err     error
}

// Tokenize returns a TokenStream reading from r.
func Tokenize(r io.Reader) *TokenStream {
	return &TokenStream{reader: bufio.NewReader(r)}
}

// Next returns the next token. It returns false once the stream is exhausted
// or a read error occurred; check Err afterwards.
func (s *TokenStream) Next() (string, bool) {
	for len(s.pending) == 0 {
		if s.done {
			return "", false
		}
		line, err := s.reader.ReadString('\n')
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = err
			}
		}
		if line == "" {
			continue
		}
		s.pending = strings.Split(line, " ")
	}

	token := s.pending[0]
	s.pending = s.pending[1:]
	return token, true
}

// Err returns the first non-EOF read error.
func (s *TokenStream) Err() error {
	return s.err
}
