package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides 环境变量覆盖项
//
// 命令行参数优先级高于环境变量；环境变量高于默认值。
// 主要服务于无命令行参数的打包启动方式。
type EnvOverrides struct {
	// Verbose 启用详细日志（ZHEYING_VERBOSE=1）
	Verbose bool `env:"ZHEYING_VERBOSE"`

	// AssetDir 资源目录（模型与字体）
	AssetDir string `env:"ZHEYING_ASSET_DIR" envDefault:"assets"`

	// SnapshotDir 截图输出目录
	SnapshotDir string `env:"ZHEYING_SNAPSHOT_DIR" envDefault:"memories"`

	// SnapshotFormat 截图格式：png / jpeg / webp
	SnapshotFormat string `env:"ZHEYING_SNAPSHOT_FORMAT" envDefault:"png"`
}

// ParseEnv 解析环境变量覆盖项
func ParseEnv() (*EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return &overrides, nil
}
