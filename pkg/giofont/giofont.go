// Package giofont adapts the cjkfont registrar to Gio applications. A
// Registry collects registered fonts and turns them into a font face
// collection for Gio's text shaper.
package giofont

import (
	"fmt"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/mzhai/cjkfont/pkg/cjkfont"
)

// Registry holds a font table for Gio applications and satisfies
// cjkfont.Context. The zero value is an empty, usable registry.
type Registry struct {
	defs cjkfont.Definitions
}

// FontDefinitions returns a snapshot of the registry's font table.
func (r *Registry) FontDefinitions() cjkfont.Definitions {
	return copyDefinitions(r.defs)
}

// SetFontDefinitions replaces the registry's font table.
func (r *Registry) SetFontDefinitions(defs cjkfont.Definitions) {
	r.defs = copyDefinitions(defs)
}

func copyDefinitions(defs cjkfont.Definitions) cjkfont.Definitions {
	out := cjkfont.Definitions{
		Proportional: append([]string(nil), defs.Proportional...),
		Monospace:    append([]string(nil), defs.Monospace...),
	}
	if defs.Data != nil {
		out.Data = make(map[string][]byte, len(defs.Data))
		for name, data := range defs.Data {
			out.Data[name] = data
		}
	}
	return out
}

// Collection parses the registered fonts into Gio font faces, in the
// proportional family's priority order. Gio's shaper falls back through
// its collection in order, so the collection order carries the family
// priority.
func (r *Registry) Collection() ([]font.FontFace, error) {
	var collection []font.FontFace
	for _, name := range r.defs.Proportional {
		data, ok := r.defs.Data[name]
		if !ok {
			continue
		}
		// ParseCollection also accepts single-font files, and most CJK
		// system fonts are .ttc collections.
		faces, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %q: %w", name, err)
		}
		collection = append(collection, faces...)
	}
	return collection, nil
}

// NewTheme builds a material theme whose shaper consults the registry's
// fonts first and the Go fonts after them, so Latin text keeps rendering
// with the toolkit defaults when the registry is empty.
func NewTheme(reg *Registry) (*material.Theme, error) {
	collection, err := reg.Collection()
	if err != nil {
		return nil, err
	}
	collection = append(collection, gofont.Collection()...)
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(collection))
	return th, nil
}
