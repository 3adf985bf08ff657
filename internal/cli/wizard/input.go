package wizard

import (
	"bufio"
	"bytes"
	"io"
)

// lineReader hands out at most one line per Read. huh's accessible prompts
// wrap their input in a fresh bufio.Scanner per question, so a plain
// reader would let the first question swallow every answer piped in.
type lineReader struct {
	r       *bufio.Reader
	pending []byte

	// Per-prompt state, reset by begin.
	eof        bool
	terminated bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r), terminated: true}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			if err == nil {
				err = io.EOF
			}
			l.eof = true
			return 0, err
		}
		l.pending = line
		l.terminated = bytes.HasSuffix(line, []byte("\n"))
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

// begin resets the per-prompt state before a question is asked.
func (l *lineReader) begin() {
	l.eof = false
	l.terminated = true
}

// exhausted reports whether the input ended before the current question
// received a final answer line.
func (l *lineReader) exhausted() bool {
	return l.eof && l.terminated
}
