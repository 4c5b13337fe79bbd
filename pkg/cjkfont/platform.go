package cjkfont

import "runtime"

// Platform identifies an operating system this package knows candidate
// font locations for. The zero value is Other, which has no candidates.
type Platform int

const (
	Other Platform = iota
	Windows
	MacOS
	Linux
)

// Current returns the platform the process is running on.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// candidatePaths is the single table consumed by both the resolver and
// CandidatePathsOn, so the scan and its diagnostic view cannot diverge.
var candidatePaths = map[Platform][]string{
	Windows: windowsFontPaths,
	MacOS:   darwinFontPaths,
	Linux:   linuxFontPaths,
}

// CandidatePaths returns the ordered list of filesystem locations Resolve
// scans on the current platform. Useful for debugging font loading issues.
func CandidatePaths() []string {
	return CandidatePathsOn(Current())
}

// CandidatePathsOn returns the candidate list for the given platform in
// scan order, earlier entries preferred. The result is a copy the caller
// may modify, and is nil for unsupported platforms.
func CandidatePathsOn(p Platform) []string {
	paths, ok := candidatePaths[p]
	if !ok {
		return nil
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}
