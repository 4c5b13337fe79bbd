package cjkfont

import "os"

// Resolve loads the first readable CJK font from the current platform's
// candidate list.
func Resolve() ([]byte, error) {
	return ResolveOn(Current())
}

// ResolveOn loads the first readable CJK font from the given platform's
// candidate list. Candidates are tried in order and the scan stops at the
// first success; a candidate that is missing or unreadable is silently
// skipped. Platforms without a candidate list fail with
// ErrUnsupportedPlatform before any filesystem access.
func ResolveOn(p Platform) ([]byte, error) {
	paths, ok := candidatePaths[p]
	if !ok {
		return nil, ErrUnsupportedPlatform
	}
	return resolveFrom(p, paths)
}

func resolveFrom(p Platform, paths []string) ([]byte, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return data, nil
	}
	return nil, &NotFoundError{Platform: p}
}
