// Package app 提供游戏应用的核心包装器
//
// 该包是组合根：把配置、上下文、场景管理器装配到一起，
// 实现 ebiten.Game 接口。没有包级单例，所有组件都从这里
// 显式构造并传递。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/zheying/pkg/config"
	"github.com/gonewx/zheying/pkg/game"
	"github.com/gonewx/zheying/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SceneConfigPath 场景配置 yaml 路径，为空则用默认布局
	SceneConfigPath string
	// Env 环境变量覆盖项
	Env *config.EnvOverrides
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx          *game.Context
	sceneManager *game.SceneManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	lastWidth, lastHeight int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneCfg := config.DefaultSceneConfig()
	if cfg.SceneConfigPath != "" {
		sceneCfg = config.LoadSceneConfig(cfg.SceneConfigPath)
	}

	ctx := game.NewContext(sceneCfg, cfg.Env)

	// 持久化设置里的全屏偏好在启动时生效
	if ctx.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewLoadingScene(ctx, sceneManager))

	log.Printf("[App] Application initialized")
	return &App{
		ctx:          ctx,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		lastWidth:    config.GameWindowWidth,
		lastHeight:   config.GameWindowHeight,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.ctx.Settings.SetFullscreen(!isFullscreen)
		if err := a.ctx.Settings.Save(); err != nil {
			log.Printf("[App] Failed to persist fullscreen setting: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 窗口可调整大小：逻辑尺寸跟随实际窗口，尺寸变化时通知当前
// 场景重算相机投影参数（宽高比 = 新宽 / 新高）。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != a.lastWidth || outsideHeight != a.lastHeight {
		a.lastWidth, a.lastHeight = outsideWidth, outsideHeight
		a.sceneManager.NotifyResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
