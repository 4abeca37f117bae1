package term

import "strings"

// KeyEvent is the decoded form of one input chunk (§4.1).
type KeyEvent struct {
	Raw   string // original bytes (or the pasted payload for name=="paste")
	Name  string // logical key name: "a", "enter", "escape", "up", "paste", ...
	Shift bool
	Ctrl  bool
	Alt   bool
}

// DecodeKey decodes a single read from stdin into zero or more KeyEvents.
// A bracketed-paste span always decodes to exactly one "paste" event;
// everything else decodes to exactly one event, since terminals deliver
// one logical keypress (or one escape sequence) per read in practice.
func DecodeKey(buf []byte) []KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	if ev, ok := decodeBracketedPaste(buf); ok {
		return []KeyEvent{ev}
	}

	if buf[0] != 0x1b {
		if len(buf) == 1 {
			return []KeyEvent{decodeSingleByte(buf[0])}
		}
		// Multi-byte input not beginning with ESC and not bracketed: a
		// paste from a terminal without bracketed-paste support (§4.1).
		return []KeyEvent{{Raw: string(buf), Name: "paste"}}
	}

	return []KeyEvent{decodeEscape(buf)}
}

func decodeBracketedPaste(buf []byte) (KeyEvent, bool) {
	const start = "\x1b[200~"
	const end = "\x1b[201~"
	s := string(buf)
	if !strings.HasPrefix(s, start) {
		return KeyEvent{}, false
	}
	payload := s[len(start):]
	if idx := strings.Index(payload, end); idx >= 0 {
		payload = payload[:idx]
	}
	payload = strings.ReplaceAll(payload, "\r\n", "\n")
	return KeyEvent{Raw: payload, Name: "paste"}, true
}

func decodeSingleByte(b byte) KeyEvent {
	switch {
	case b == 0x1b:
		return KeyEvent{Raw: string(b), Name: "escape"}
	case b == '\r' || b == '\n':
		return KeyEvent{Raw: string(b), Name: "enter"}
	case b == '\t':
		return KeyEvent{Raw: string(b), Name: "tab"}
	case b == 0x7f || b == 0x08:
		return KeyEvent{Raw: string(b), Name: "backspace"}
	case b >= 1 && b <= 26:
		// Ctrl-letter: byte 1-26 -> 'a'-'z', offset 96 per §4.1.
		name := string(rune(b + 96))
		return KeyEvent{Raw: string(b), Name: name, Ctrl: true}
	case b >= 1 && b <= 31:
		return KeyEvent{Raw: string(b), Name: string(rune(b + 96)), Ctrl: true}
	default:
		return KeyEvent{Raw: string(b), Name: string(rune(b))}
	}
}

// escapeSequences enumerates the recognized multi-byte forms from §4.1.
// Each entry is matched against the whole read exactly, so their order
// does not matter.
var escapeSequences = []struct {
	seq   string
	event KeyEvent
}{
	{"\x1b[A", KeyEvent{Name: "up"}},
	{"\x1b[B", KeyEvent{Name: "down"}},
	{"\x1b[C", KeyEvent{Name: "right"}},
	{"\x1b[D", KeyEvent{Name: "left"}},
	{"\x1b[5~", KeyEvent{Name: "pageup"}},
	{"\x1b[6~", KeyEvent{Name: "pagedown"}},
	{"\x1b[Z", KeyEvent{Name: "tab", Shift: true}},
	{"\x1b\r", KeyEvent{Name: "enter", Shift: true}},
	{"\x1b\n", KeyEvent{Name: "enter", Shift: true}},
	{"\x1b[1;3D", KeyEvent{Name: "wordLeft", Alt: true}},
	{"\x1b[1;3C", KeyEvent{Name: "wordRight", Alt: true}},
	{"\x1bb", KeyEvent{Name: "wordLeft", Alt: true}},
	{"\x1bf", KeyEvent{Name: "wordRight", Alt: true}},
	{"\x1b\x7f", KeyEvent{Name: "wordBackspace", Alt: true}},
	// Kitty CSI-u disambiguation.
	{"\x1b[13;2u", KeyEvent{Name: "enter", Shift: true}},
	{"\x1b[27;2;13~", KeyEvent{Name: "enter", Shift: true}},
	{"\x1b[13u", KeyEvent{Name: "enter"}},
	{"\x1b[9u", KeyEvent{Name: "tab"}},
	{"\x1b[9;2u", KeyEvent{Name: "tab", Shift: true}},
	{"\x1b[27u", KeyEvent{Name: "escape"}},
	{"\x1b[127u", KeyEvent{Name: "backspace"}},
}

func decodeEscape(buf []byte) KeyEvent {
	s := string(buf)

	for _, cand := range escapeSequences {
		if s == cand.seq {
			ev := cand.event
			ev.Raw = s
			return ev
		}
	}

	// Lone ESC, or double ESC (some terminals send ESC ESC for a single
	// escape keypress) — both collapse to "escape" per §4.1.
	if s == "\x1b" || s == "\x1b\x1b" {
		return KeyEvent{Raw: s, Name: "escape"}
	}

	// Unrecognized escape sequence: surface raw so callers can ignore it
	// rather than misinterpret it as text.
	return KeyEvent{Raw: s, Name: "unknown"}
}
