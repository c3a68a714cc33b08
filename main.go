package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/zheying/pkg/app"
	"github.com/gonewx/zheying/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	sceneConfig := flag.String("config", "", "场景配置 yaml 路径（留空使用默认布局）")
	assetDir := flag.String("assets", "", "资源目录（覆盖 ZHEYING_ASSET_DIR）")
	snapshotDir := flag.String("snapshots", "", "留影输出目录（覆盖 ZHEYING_SNAPSHOT_DIR）")
	flag.Parse()

	// 环境变量提供基线，命令行参数优先
	overrides, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("invalid environment: %v", err)
	}
	if *verbose {
		overrides.Verbose = true
	}
	if *assetDir != "" {
		overrides.AssetDir = *assetDir
	}
	if *snapshotDir != "" {
		overrides.SnapshotDir = *snapshotDir
	}

	application, err := app.NewApp(app.Config{
		Verbose:         overrides.Verbose,
		SceneConfigPath: *sceneConfig,
		Env:             overrides,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}
}
