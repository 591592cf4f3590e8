// Package colorname resolves the free-form color strings stored on saree
// entries into human-readable names. Input may be a name ("blue"), a hex
// value ("#ff0000"), an "r,g,b" triple, or a material shorthand ending in
// "M". Resolution is pure and deterministic over a fixed CSS3 color table.
package colorname

import (
	"strconv"
	"strings"
	"unicode"
)

type namedColor struct {
	name    string
	r, g, b int
}

var (
	table     []namedColor
	hexToName map[string]string
)

func init() {
	table = make([]namedColor, 0, len(cssColors))
	hexToName = make(map[string]string, len(cssColors))
	for _, c := range cssColors {
		r, g, b, ok := parseHex(c.hex)
		if !ok {
			continue
		}
		table = append(table, namedColor{name: c.name, r: r, g: g, b: b})
		hexToName[c.hex] = c.name
	}
}

// Resolve maps a raw color string to a display name:
//
//	"RedM"    -> "REDM"    (material shorthand, returned uppercased)
//	"blue"    -> "Blue"    (already a name, capitalized)
//	"#ff0000" -> "red"     (exact hex match, else nearest named color)
//	"255,0,0" -> "red"     (rgb triple, nearest named color)
//
// Anything unparseable comes back unchanged.
func Resolve(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	if strings.HasSuffix(strings.ToUpper(s), "M") {
		return strings.ToUpper(s)
	}

	if !strings.ContainsAny(s, ",#") {
		return capitalize(s)
	}

	if strings.HasPrefix(s, "#") {
		r, g, b, ok := parseHex(s)
		if !ok {
			return s
		}
		if name, ok := hexToName[normalizeHex(s)]; ok {
			return name
		}
		return nearest(r, g, b)
	}

	if strings.Contains(s, ",") {
		r, g, b, ok := parseTriple(s)
		if !ok {
			return s
		}
		return nearest(r, g, b)
	}

	return s
}

// nearest scans the whole table for the minimum squared RGB distance.
// First minimum wins; at ~140 entries a linear scan is plenty.
func nearest(r, g, b int) string {
	best := table[0].name
	bestDist := 1 << 30
	for _, c := range table {
		dr, dg, db := c.r-r, c.g-g, c.b-b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = c.name
		}
	}
	return best
}

func normalizeHex(s string) string {
	s = strings.ToLower(s)
	if len(s) == 4 { // #rgb -> #rrggbb
		return "#" + strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2) + strings.Repeat(string(s[3]), 2)
	}
	return s
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = normalizeHex(s)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	var vals [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = int(v)
	}
	return vals[0], vals[1], vals[2], true
}

func parseTriple(s string) (r, g, b int, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

// capitalize matches the display convention for plain names: first rune
// upper, the rest lower.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
