package cjkfont

// Common CJK font locations on Windows.
var windowsFontPaths = []string{
	`C:\Windows\Fonts\msyh.ttc`,    // Microsoft YaHei
	`C:\Windows\Fonts\msyhbd.ttc`,  // Microsoft YaHei Bold
	`C:\Windows\Fonts\simsun.ttc`,  // SimSun
	`C:\Windows\Fonts\simhei.ttf`,  // SimHei
	`C:\Windows\Fonts\simkai.ttf`,  // KaiTi
	`C:\Windows\Fonts\simfang.ttf`, // FangSong
	`C:\Windows\Fonts\msjh.ttc`,    // Microsoft JhengHei (Traditional Chinese)
	`C:\Windows\Fonts\msjhbd.ttc`,  // Microsoft JhengHei Bold
	`C:\Windows\Fonts\kaiu.ttf`,    // DFKai-SB (Traditional Chinese)
	`C:\Windows\Fonts\mingliu.ttc`, // MingLiU (Traditional Chinese)
}
