package cli

import (
	"fmt"
	"strings"
)

func newColor(c string) []byte {
	return []byte("\x1b[" + c + "m")
}

var (
	resetColor   = newColor("0")  // Reset
	numberColor  = newColor("36") // Cyan
	stringColor  = newColor("32") // Green
	bracketColor = []byte(nil)    // No color
)

func validColor(x string) bool {
	var num bool
	for _, c := range x {
		if '0' <= c && c <= '9' {
			num = true
		} else if c == ';' && num {
			num = false
		} else {
			return false
		}
	}
	return num || x == ""
}

// setColors overrides the colors by a colon-separated list in the order of
// number, string and bracket. Missing entries are uncolored.
func setColors(colors string) error {
	var i int
	var color string
	for _, target := range []*[]byte{
		&numberColor, &stringColor, &bracketColor,
	} {
		if i < len(colors) {
			if j := strings.IndexByte(colors[i:], ':'); j >= 0 {
				color = colors[i : i+j]
				i += j + 1
			} else {
				color = colors[i:]
				i = len(colors)
			}
			if !validColor(color) {
				return fmt.Errorf("invalid color: %q", color)
			}
			if color == "" {
				*target = nil
			} else {
				*target = newColor(color)
			}
		} else {
			*target = nil
		}
	}
	return nil
}
