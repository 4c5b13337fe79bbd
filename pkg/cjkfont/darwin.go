package cjkfont

// Common CJK font locations on macOS.
var darwinFontPaths = []string{
	"/System/Library/Fonts/PingFang.ttc",              // PingFang SC
	"/System/Library/Fonts/STHeiti Light.ttc",         // STHeiti
	"/System/Library/Fonts/STHeiti Medium.ttc",        // STHeiti Medium
	"/System/Library/Fonts/Hiragino Sans GB.ttc",      // Hiragino Sans GB
	"/Library/Fonts/Arial Unicode.ttf",                // Arial Unicode MS
	"/System/Library/Fonts/Apple LiGothic Medium.ttf", // Apple LiGothic (Traditional)
}
