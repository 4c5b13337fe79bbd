package cjkfont

// DefaultFontName is the font-table key used when no name is given.
const DefaultFontName = "chinese"

// Definitions is a rendering context's font table: raw font file contents
// keyed by name, plus the priority-ordered name lists of the proportional
// and monospace families. Earlier names are preferred.
type Definitions struct {
	Data         map[string][]byte
	Proportional []string
	Monospace    []string
}

// Context is the minimal capability a rendering context must expose for
// this package to configure its fonts. FontDefinitions returns a snapshot
// of the current table; SetFontDefinitions replaces the table wholesale.
type Context interface {
	FontDefinitions() Definitions
	SetFontDefinitions(Definitions)
}

// Setup resolves a system CJK font and registers it with ctx under
// DefaultFontName, as the first choice of both font families. A
// resolution failure is returned unchanged and leaves ctx untouched.
func Setup(ctx Context) error {
	return setupOn(ctx, Current())
}

func setupOn(ctx Context, p Platform) error {
	data, err := ResolveOn(p)
	if err != nil {
		return err
	}
	SetupCustom(ctx, data, DefaultFontName)
	return nil
}

// SetupCustom registers caller-supplied font data with ctx instead of
// loading from system fonts. An empty name means DefaultFontName. The
// font becomes the first choice of both families; previously configured
// names keep their relative order behind it. No I/O is performed and the
// call cannot fail.
func SetupCustom(ctx Context, data []byte, name string) {
	if name == "" {
		name = DefaultFontName
	}
	defs := ctx.FontDefinitions()
	if defs.Data == nil {
		defs.Data = make(map[string][]byte)
	}
	defs.Data[name] = data
	defs.Proportional = prepend(defs.Proportional, name)
	defs.Monospace = prepend(defs.Monospace, name)
	ctx.SetFontDefinitions(defs)
}

// prepend puts name at index 0, dropping any earlier occurrence so that
// registering the same font twice does not grow the list.
func prepend(names []string, name string) []string {
	out := make([]string, 0, len(names)+1)
	out = append(out, name)
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
