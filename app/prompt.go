package app

import (
	"strings"

	"galaxyplot/hal"
)

// prompt is a single-line modal text entry.
type prompt struct {
	title string
	text  string

	input  []rune
	cursor int

	submitted bool
	dismissed bool
	dirty     bool
}

func newPrompt(title, text string) *prompt {
	return &prompt{title: title, text: text, dirty: true}
}

func (p *prompt) finished() bool { return p.submitted || p.dismissed }

// value returns the entered text with surrounding whitespace removed.
func (p *prompt) value() string { return strings.TrimSpace(string(p.input)) }

func (p *prompt) handle(ev hal.KeyEvent) {
	if !ev.Press || p.finished() {
		return
	}

	switch ev.Code {
	case hal.KeyEnter:
		p.submitted = true
	case hal.KeyEscape:
		p.dismissed = true
	case hal.KeyBackspace:
		if p.cursor > 0 {
			p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
			p.cursor--
		}
	case hal.KeyDelete:
		if p.cursor < len(p.input) {
			p.input = append(p.input[:p.cursor], p.input[p.cursor+1:]...)
		}
	case hal.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case hal.KeyRight:
		if p.cursor < len(p.input) {
			p.cursor++
		}
	case hal.KeyHome:
		p.cursor = 0
	case hal.KeyEnd:
		p.cursor = len(p.input)
	case hal.KeyUnknown:
		if !printable(ev.Rune) {
			return
		}
		p.input = append(p.input, 0)
		copy(p.input[p.cursor+1:], p.input[p.cursor:])
		p.input[p.cursor] = ev.Rune
		p.cursor++
	default:
		return
	}
	p.dirty = true
}

func printable(r rune) bool {
	return r >= 0x20 && r != 0x7F
}
