package input

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// readEscape reads what follows an ESC byte: an arrow key sequence, or a
// second ESC for "escape". Returns an empty string for anything else.
func readEscape(r io.Reader) string {
	b2, err := readByte(r)
	if err != nil {
		return ""
	}
	if b2 == 0x1b {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte(r)
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadCode reads one command from r, which must already be in raw mode.
// Arrow keys return immediately; other text is echoed to w until Enter.
// Ctrl+C returns "quit". A lone ESC cannot be told apart from the start of
// an arrow sequence, so Esc is pressed twice to send "escape".
func ReadCode(r io.Reader, w io.Writer) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	if b1 == 0x1b {
		code := readEscape(r)
		if code != "" {
			fmt.Fprint(w, "\r\n")
		}
		return code, nil
	}
	if b1 == 3 {
		fmt.Fprint(w, "\r\n")
		return "quit", nil
	}
	if b1 == '\n' || b1 == '\r' {
		return "enter", nil
	}

	var in []byte
	b := b1
	for {
		switch {
		case b == 3:
			fmt.Fprint(w, "\r\n")
			return "quit", nil
		case b == '\n' || b == '\r':
			fmt.Fprint(w, "\r\n")
			return string(in), nil
		case b == 127 || b == 8:
			if len(in) > 0 {
				in = in[:len(in)-1]
				fmt.Fprint(w, "\b \b")
			}
		case b == 0x1b:
			// Escape sequences during text entry are discarded
			readEscape(r)
		case b >= 32 && b < 127:
			in = append(in, b)
			fmt.Fprint(w, string(b))
		}

		if b, err = readByte(r); err != nil {
			return string(in), err
		}
	}
}

// withRawStdin runs fn with the terminal in raw mode
func withRawStdin(fn func() (string, error)) string {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	s, err := fn()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}
	return s
}

// GetInputWithArrows reads a command from the terminal.
// Arrow keys return immediately without needing Enter.
func GetInputWithArrows() Intent {
	code := withRawStdin(func() (string, error) {
		return ReadCode(os.Stdin, os.Stdout)
	})
	return IntentFromCode(DeviceTerminal, code)
}

// WaitForEnter blocks until Enter (or Ctrl+C) is pressed
func WaitForEnter() {
	withRawStdin(func() (string, error) {
		for {
			b, err := readByte(os.Stdin)
			if err != nil {
				return "", err
			}
			if b == '\n' || b == '\r' || b == 3 {
				return "", nil
			}
		}
	})
}
