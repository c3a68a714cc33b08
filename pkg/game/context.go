package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/zheying/pkg/config"
)

// Context 应用上下文
//
// 在组合根（pkg/app）构造一次，按引用传给各组件的构造函数。
// 不存在包级单例：所有共享状态都显式经由 Context 流动。
type Context struct {
	Cfg       *config.SceneConfig
	Env       *config.EnvOverrides
	Settings  *SettingsManager
	Snapshots *SnapshotManager

	// AssetDir 模型与字体所在目录
	AssetDir string
}

// NewContext 构建应用上下文
//
// gdata 打不开时设置与留影索引降级为仅内存模式（记日志，不中断启动）。
func NewContext(cfg *config.SceneConfig, overrides *config.EnvOverrides) *Context {
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "zheying",
	})
	if err != nil {
		log.Printf("[Context] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[Context] Warning: settings init: %v", err)
	}

	// 环境变量指定的格式优先于持久化设置里的格式
	format := ParseSnapshotFormat(settings.GetSettings().SnapshotFormat)
	if overrides.SnapshotFormat != "" {
		format = ParseSnapshotFormat(overrides.SnapshotFormat)
	}
	snapshots := NewSnapshotManager(overrides.SnapshotDir, format, settings.GetSettings().SnapshotQuality, gdataManager)

	return &Context{
		Cfg:       cfg,
		Env:       overrides,
		Settings:  settings,
		Snapshots: snapshots,
		AssetDir:  overrides.AssetDir,
	}
}
