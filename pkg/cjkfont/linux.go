package cjkfont

// Common CJK font locations across Linux distributions. The last few are
// not CJK fonts but keep text rendering usable on minimal installs.
var linuxFontPaths = []string{
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/arphic/uming.ttc",
	"/usr/share/fonts/truetype/arphic/ukai.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	// Ubuntu/Debian
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	// CentOS/RHEL
	"/usr/share/fonts/google-droid/DroidSansFallbackFull.ttf",
	// Arch Linux
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
}
