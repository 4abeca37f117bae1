package term

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	escCursorHome   = "\x1b[H"
	escEraseToEOL   = "\x1b[K"
	escEraseToEOS   = "\x1b[J"
	escHideCursor   = "\x1b[?25l"
	escShowCursor   = "\x1b[?25h"
	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
	escBracketedOn  = "\x1b[?2004h"
	escBracketedOff = "\x1b[?2004l"
	escKittyOn      = "\x1b[>1u"
	escKittyOff     = "\x1b[<u"
)

// Screen owns the terminal for the duration of full-screen mode (§4.1,
// §5): it is the sole writer to stdout and the sole reader of stdin's
// raw-mode byte stream.
type Screen struct {
	in  *os.File
	out io.Writer

	rawState *term.State
	rows     int
}

// New builds a Screen bound to the process's stdin/stdout.
func New() *Screen {
	return &Screen{in: os.Stdin, out: os.Stdout}
}

// EnterFullScreen puts stdin into raw mode, then acquires the alternate
// screen buffer, hides the cursor, and enables bracketed paste and Kitty
// disambiguation (§4.1, §5). It is idempotent to call
// ExitFullScreen even if this returns an error partway through.
func (s *Screen) EnterFullScreen() error {
	state, err := term.MakeRaw(int(s.in.Fd()))
	if err != nil {
		return fmt.Errorf("term: entering raw mode: %w", err)
	}
	s.rawState = state

	fmt.Fprint(s.out, escAltScreenOn)
	fmt.Fprint(s.out, escHideCursor)
	fmt.Fprint(s.out, escBracketedOn)
	fmt.Fprint(s.out, escKittyOn)
	return nil
}

// ExitFullScreen restores every mode entered by EnterFullScreen, in
// reverse order, and is safe to call multiple times or after a partial
// EnterFullScreen (§4.1, §5): "guaranteed release on all exit paths,
// including panics and signals."
func (s *Screen) ExitFullScreen() {
	fmt.Fprint(s.out, escKittyOff)
	fmt.Fprint(s.out, escBracketedOff)
	fmt.Fprint(s.out, escShowCursor)
	fmt.Fprint(s.out, escAltScreenOff)

	if s.rawState != nil {
		_ = term.Restore(int(s.in.Fd()), s.rawState)
		s.rawState = nil
	}
}

// Size returns cols x rows, queried fresh so SIGWINCH-triggered resizes
// take effect immediately on the next paint (§4.1, §7).
func (s *Screen) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(s.in.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Paint overwrites the screen in place with lines, never clearing it
// (§4.1): cursor-home, then each of the first rows lines followed by
// erase-to-end-of-line, then erase-to-end-of-screen if lines is shorter
// than rows. This is what makes the UI flicker-free.
func (s *Screen) Paint(lines []string) {
	_, rows := s.Size()

	var b []byte
	b = append(b, escCursorHome...)
	n := len(lines)
	if n > rows {
		n = rows
	}
	for i := 0; i < n; i++ {
		b = append(b, lines[i]...)
		b = append(b, escEraseToEOL...)
		b = append(b, '\r', '\n')
	}
	if n < rows {
		b = append(b, escEraseToEOS...)
	}
	s.out.Write(b)
}

// ReadInput blocks for the next raw input chunk from stdin.
func (s *Screen) ReadInput() ([]byte, error) {
	buf := make([]byte, 256)
	n, err := s.in.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
