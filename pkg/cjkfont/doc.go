// Package cjkfont locates a CJK-capable font file on the host system and
// registers it with a rendering context's font table.
//
// The resolver scans a fixed, ordered list of well-known font locations
// for the current platform and returns the contents of the first file it
// can read. The registrar puts that font at the highest priority of the
// proportional and monospace font families of any rendering context
// implementing the small Context interface; package giofont provides such
// a context for Gio programs.
package cjkfont
