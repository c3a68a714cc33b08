package config

// 窗口配置常量
// 窗口可调整大小，逻辑尺寸跟随实际窗口；以下是启动时的初始尺寸

const (
	// GameWindowWidth 是启动时的窗口宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 是启动时的窗口高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 是窗口标题
	GameWindowTitle = "情境折影 - Moment Refraction"
)
