package input

import "unicode/utf8"

// Parse decodes a chunk of raw terminal input. Unknown escape sequences are
// consumed and dropped; a lone ESC at the end of the chunk is Escape.
func Parse(data []byte) []Event {
	var events []Event
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, Event{Key: KeyEscape})
				i++
				continue
			}
			switch next := data[i+1]; {
			case next == '[':
				key, mod, n := parseCSI(data[i:])
				if n == 0 {
					events = append(events, Event{Key: KeyEscape})
					i++
					continue
				}
				if key != KeyNone {
					events = append(events, Event{Key: key, Mod: mod})
				}
				i += n
			case next == 'O' && i+2 < len(data):
				if key := ss3Key(data[i+2]); key != KeyNone {
					events = append(events, Event{Key: key})
					i += 3
					continue
				}
				events = append(events, Event{Key: KeyEscape})
				i++
			case next >= 0x20 && next < 0x7f:
				events = append(events, Event{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
				i += 2
			default:
				events = append(events, Event{Key: KeyEscape})
				i++
			}
			continue
		}

		if b < 0x20 {
			if key := controlKey(b); key != KeyNone {
				events = append(events, Event{Key: key})
			}
			i++
			continue
		}
		if b == 0x7f {
			events = append(events, Event{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		events = append(events, Event{Key: KeyRune, Rune: r})
	}
	return events
}

func controlKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	case 0x0c:
		return KeyCtrlL
	}
	return KeyNone
}

// parseCSI decodes ESC [ params final. It returns the bytes consumed, or 0
// when the sequence is malformed or incomplete.
func parseCSI(data []byte) (Key, Modifier, int) {
	var params []int
	cur, has := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			key, mod := csiKey(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}
	return KeyNone, ModNone, 0
}

func csiKey(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}
	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'Z':
		return KeyTab, ModShift
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1, 7:
			return KeyHome, mod
		case 3:
			return KeyDelete, mod
		case 4, 8:
			return KeyEnd, mod
		}
	}
	return KeyNone, ModNone
}

func ss3Key(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter 1 + shift + 2*alt +
// 4*ctrl.
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
