package logger

import (
	"fmt"
	"strings"
)

var controlEscapes = map[rune]string{
	'\n':   `\n`,
	'\r':   `\r`,
	'\t':   `\t`,
	'\x00': `\x00`,
}

// SanitizeForLog escapes control characters in user supplied strings (upload
// filenames, asset refs, header values) so they cannot forge log lines or
// drive the terminal. Printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if esc, ok := controlEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r < 32 || r == 127 {
			fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
