// Package theme resolves the symbolic color tokens emitted by the scoring
// engine into concrete colors for a client color scheme.
package theme

import "sort"

// Scheme names
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

const neutralColor = "#9E9E9E"

// Resolver maps color tokens to #RRGGBB values per scheme
type Resolver struct {
	schemes map[string]map[string]string
}

// NewResolver creates a resolver with the light and dark palettes
func NewResolver() *Resolver {
	return &Resolver{
		schemes: map[string]map[string]string{
			SchemeLight: {
				"neutral":          neutralColor,
				"neutralContainer": "#E0E0E0",
				"neutralContent":   "#424242",
				"garGreen":         "#2E7D32",
				"garYellow":        "#F9A825",
				"garAmber":         "#EF6C00",
				"garRed":           "#C62828",
				"garDarkRed":       "#7F0000",
				"garGreenDark":     "#1B5E20",
				"garGreenLight":    "#E8F5E9",
				"garAmberDark":     "#E65100",
				"garAmberLight":    "#FFF3E0",
				"garRedDark":       "#B71C1C",
				"garRedLight":      "#FFEBEE",
			},
			SchemeDark: {
				"neutral":          "#BDBDBD",
				"neutralContainer": "#424242",
				"neutralContent":   "#E0E0E0",
				"garGreen":         "#81C784",
				"garYellow":        "#FFF176",
				"garAmber":         "#FFB74D",
				"garRed":           "#E57373",
				"garDarkRed":       "#FF8A80",
				"garGreenDark":     "#A5D6A7",
				"garGreenLight":    "#1B5E20",
				"garAmberDark":     "#FFCC80",
				"garAmberLight":    "#E65100",
				"garRedDark":       "#EF9A9A",
				"garRedLight":      "#B71C1C",
			},
		},
	}
}

// Resolve returns the color for a token. Unknown schemes fall back to
// light; unknown tokens resolve to the scheme's neutral color and ok=false.
func (r *Resolver) Resolve(scheme, token string) (string, bool) {
	palette := r.palette(scheme)
	if c, ok := palette[token]; ok {
		return c, true
	}
	if c, ok := palette["neutral"]; ok {
		return c, false
	}
	return neutralColor, false
}

// Palette returns a copy of the token table for a scheme
func (r *Resolver) Palette(scheme string) map[string]string {
	out := make(map[string]string)
	for k, v := range r.palette(scheme) {
		out[k] = v
	}
	return out
}

// Schemes lists known scheme names
func (r *Resolver) Schemes() []string {
	names := make([]string, 0, len(r.schemes))
	for n := range r.schemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether scheme is known
func (r *Resolver) Has(scheme string) bool {
	_, ok := r.schemes[scheme]
	return ok
}

func (r *Resolver) palette(scheme string) map[string]string {
	if p, ok := r.schemes[scheme]; ok {
		return p
	}
	return r.schemes[SchemeLight]
}
