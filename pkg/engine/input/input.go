package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrQuit is returned by ReadLine when the player asks to leave the game.
var ErrQuit = errors.New("player quit")

var quitWords = map[string]bool{
	"quit": true,
	"exit": true,
	":q":   true,
}

// Reader reads player input one line at a time.
type Reader struct {
	r *bufio.Reader
}

// NewReader reads lines from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Stdin returns a Reader on os.Stdin.
func Stdin() *Reader {
	return NewReader(os.Stdin)
}

// ReadLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF. Typing quit, exit or :q
// returns ErrQuit.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "cannot read input")
	}

	line = strings.TrimRight(line, "\r\n")
	if quitWords[strings.ToLower(strings.TrimSpace(line))] {
		return "", ErrQuit
	}
	return line, nil
}
