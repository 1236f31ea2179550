// Package texenc rewrites LaTeX fragments into pure ASCII so pdflatex
// never sees a raw multibyte sequence. Polish letters become their
// accent commands; any other non-ASCII rune degrades to '?'.
package texenc

import "strings"

var polishAccents = map[rune]string{
	'ą': `\k{a}`,
	'ć': `\'c`,
	'ę': `\k{e}`,
	'ł': `\l{}`,
	'ń': `\'n`,
	'ó': `\'o`,
	'ś': `\'s`,
	'ź': `\'z`,
	'ż': `\.z`,
	'Ą': `\k{A}`,
	'Ć': `\'C`,
	'Ę': `\k{E}`,
	'Ł': `\L{}`,
	'Ń': `\'N`,
	'Ó': `\'O`,
	'Ś': `\'S`,
	'Ź': `\'Z`,
	'Ż': `\.Z`,
}

// Transliterate returns s with every rune above 127 replaced: Polish
// letters by their LaTeX accent commands, everything else by '?'. ASCII
// input passes through unchanged.
func Transliterate(s string) string {
	ascii := true
	for _, r := range s {
		if r > 127 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r <= 127:
			b.WriteRune(r)
		default:
			if cmd, ok := polishAccents[r]; ok {
				b.WriteString(cmd)
			} else {
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}
