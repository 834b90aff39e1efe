package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw key reading is requested on a non-tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// DecodeKey reads one key press from r and returns its code. Arrow keys arrive
// as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC reads as "escape".
func DecodeKey(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return decodeEscape(r)
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 >= 32 && b1 < 127:
		return string(rune(b1)), nil
	default:
		return "", nil
	}
}

func decodeEscape(r io.ByteReader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "escape", nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// TerminalReader reads single key presses from stdin in raw mode
type TerminalReader struct {
	fd int
	br *bufio.Reader
}

// NewTerminalReader returns a reader for stdin, or ErrNotTerminal
func NewTerminalReader() (*TerminalReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &TerminalReader{fd: fd, br: bufio.NewReader(os.Stdin)}, nil
}

// ReadInput blocks for one key press. The terminal is restored before returning.
func (t *TerminalReader) ReadInput() (RawInput, error) {
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(t.fd, oldState)

	code, err := DecodeKey(t.br)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}
