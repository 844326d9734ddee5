package terminal

// maxCSILen bounds how far a CSI sequence is scanned before it is discarded as garbage
const maxCSILen = 16

// Parser decodes a raw byte stream into key events.
// Incomplete sequences are held across Feed calls; a lone trailing ESC is
// released by Flush once the caller's escape timeout elapses
type Parser struct {
	buf []byte
}

// Feed appends data and returns every complete event decoded so far
func (p *Parser) Feed(data []byte) []Event {
	p.buf = append(p.buf, data...)
	events, consumed := parseInput(p.buf, nil)
	p.buf = append(p.buf[:0], p.buf[consumed:]...)
	return events
}

// Pending reports whether undecoded bytes are buffered
func (p *Parser) Pending() bool {
	return len(p.buf) > 0
}

// Flush resolves buffered bytes after an input pause: a lone ESC becomes KeyEscape,
// truncated sequences are dropped
func (p *Parser) Flush() []Event {
	if len(p.buf) == 0 {
		return nil
	}
	var events []Event
	if p.buf[0] == 0x1b {
		events = append(events, Event{Key: KeyEscape})
	}
	p.buf = p.buf[:0]
	return events
}

// parseInput decodes data into events and returns bytes consumed (stops on incomplete sequence)
func parseInput(data []byte, events []Event) ([]Event, int) {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b == ' ':
			events = append(events, Event{Key: KeySpace, Rune: ' '})
			i++

		case b > 0x20 && b < 0x7f:
			events = append(events, Event{Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return events, i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return events, i
			}
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			i += consumed

		case b < 0x20:
			events = append(events, parseControl(b))
			i++

		case b == 0x7f:
			events = append(events, Event{Key: KeyBackspace})
			i++

		default:
			seqLen := utf8SeqLen(b)
			if seqLen == 0 {
				i++
				continue
			}
			if i+seqLen > n {
				return events, i
			}
			r, size := decodeRune(data[i:])
			events = append(events, Event{Key: KeyRune, Rune: r})
			i += size
		}
	}
	return events, i
}

// parseEscape parses the sequence starting at data[0] == ESC, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch b := data[1]; {
	case b == 0x1b:
		return 2, Event{Key: KeyEscape, Modifiers: ModAlt}
	case b == '[':
		return parseCSI(data)
	case b == 'O':
		return parseSS3(data)
	case b < 0x20:
		ev := parseControl(b)
		ev.Modifiers |= ModAlt
		return 2, ev
	case b < 0x7f:
		ev := RuneEvent(rune(b))
		ev.Modifiers = ModAlt
		return 2, ev
	}
	return 1, Event{Key: KeyEscape}
}

// parseCSI parses "ESC [ params final" without allocation
func parseCSI(data []byte) (int, Event) {
	var params [2]int
	nparam := 0
	seen := false

	for end := 2; end < len(data); end++ {
		if end >= maxCSILen {
			return end, Event{}
		}
		b := data[end]
		switch {
		case b >= '0' && b <= '9':
			if nparam < len(params) {
				params[nparam] = params[nparam]*10 + int(b-'0')
			}
			seen = true
		case b == ';':
			nparam++
		case b >= 0x40 && b <= 0x7e:
			if seen && nparam < len(params) {
				nparam++
			}
			return end + 1, csiEvent(b, params[:min(nparam, len(params))])
		case b < 0x20 || b > 0x7e:
			// Control byte mid-sequence: swallow what we have
			return end, Event{}
		}
	}
	return 0, Event{}
}

func csiEvent(final byte, params []int) Event {
	mod := ModNone
	if len(params) > 1 {
		mod = xtermModifier(params[1])
	}

	if final == '~' {
		if len(params) == 0 {
			return Event{}
		}
		if k, ok := csiTilde[params[0]]; ok {
			return Event{Key: k, Modifiers: mod}
		}
		return Event{}
	}

	if k, ok := csiFinal[final]; ok {
		if k == KeyBacktab {
			mod |= ModShift
		}
		return Event{Key: k, Modifiers: mod}
	}
	return Event{}
}

// parseSS3 parses "ESC O X", consuming unknown finals to prevent garbage
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if k, ok := ss3Final[data[2]]; ok {
		return 3, Event{Key: k}
	}
	return 3, Event{}
}

// parseControl maps C0 control bytes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Key: KeyCtrlSpace}
	case 0x08:
		return Event{Key: KeyBackspace}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Key: KeyEnter}
	case 0x1b:
		return Event{Key: KeyEscape}
	case 0x1c:
		return Event{Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyCtrlA + Key(b-0x01), Modifiers: ModCtrl}
	}
	return Event{}
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var lo rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size, lo, r = 2, 0x80, rune(b&0x1f)
	case b&0xf0 == 0xe0:
		size, lo, r = 3, 0x800, rune(b&0x0f)
	case b&0xf8 == 0xf0:
		size, lo, r = 4, 0x10000, rune(b&0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}
	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}
	if r < lo {
		return 0xFFFD, 1
	}
	return r, size
}
