package core

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultSentinel is the input that ends a conversation.
const DefaultSentinel = ":exit"

// Reader reads user input one line at a time.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine blocks until a line is available and returns it with
// surrounding whitespace removed.  A last line without a newline is
// returned normally; after that ReadLine returns io.EOF.  Other read
// failures are returned as *InputError.
func (rd *Reader) ReadLine() (line string, err error) {
	raw, err := rd.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &InputError{Err: err}
		}
		if len(raw) == 0 {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(raw), nil
}

// IsSentinel returns true if line is the sentinel, ignoring case.
func IsSentinel(line, sentinel string) bool {
	return strings.EqualFold(line, sentinel)
}
