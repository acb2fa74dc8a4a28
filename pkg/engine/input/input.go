package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
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
	}

	// Unknown escape sequence - discard it
	return ""
}

// ReadKey reads a single keypress from stdin without waiting for Enter.
// Arrow keys are reported as "arrow_up" etc, printable keys as themselves.
// Ctrl+C exits the process after restoring the terminal.
func ReadKey() RawInput {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	for {
		b, err := readByte()
		if err != nil {
			log.Fatalf("Cannot read stdin: %v", err)
		}

		if code := tryReadArrowKey(b); code != "" {
			return NewRawInput(DeviceTerminal, code)
		}

		// Ctrl+C
		if b == 3 {
			term.Restore(int(os.Stdin.Fd()), oldState)
			fmt.Println()
			os.Exit(0)
		}

		if b == '\n' || b == '\r' {
			return NewRawInput(DeviceTerminal, "enter")
		}

		if b >= 32 && b < 127 {
			return NewRawInput(DeviceTerminal, string(b))
		}
	}
}
