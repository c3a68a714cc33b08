package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3Config yaml 中的三维向量
type Vec3Config struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// ViewPresetConfig 单个视角预设：相机位置 + 注视点 + 显示名
type ViewPresetConfig struct {
	Position Vec3Config `yaml:"position"`
	LookAt   Vec3Config `yaml:"lookAt"`
	Label    string     `yaml:"label"`
}

// BridgeConfig 断桥几何与机关参数
type BridgeConfig struct {
	// LeftSegmentPos / RightSegmentPos 两段桥体的初始中心位置
	LeftSegmentPos  Vec3Config `yaml:"leftSegmentPos"`
	RightSegmentPos Vec3Config `yaml:"rightSegmentPos"`

	// SegmentLength / SegmentWidth / SegmentThickness 桥段尺寸
	SegmentLength    float32 `yaml:"segmentLength"`
	SegmentWidth     float32 `yaml:"segmentWidth"`
	SegmentThickness float32 `yaml:"segmentThickness"`

	// TriggerOffset 机关触发后每段桥体沿 x 轴移动的固定增量
	// 左段 +TriggerOffset，右段 -TriggerOffset，两段相向合拢
	TriggerOffset float32 `yaml:"triggerOffset"`
}

// SceneConfig 场景总配置
//
// 预设位置、桥体几何、阈值与动画时长都集中在这里，
// 既有代码内默认值，也可由 yaml 文件覆盖（与其余配置保持一致）。
type SceneConfig struct {
	// 三个固定视角预设，构造后不可变
	MotherView    ViewPresetConfig `yaml:"motherView"`
	ChildView     ViewPresetConfig `yaml:"childView"`
	EmotionalView ViewPresetConfig `yaml:"emotionalView"`

	Bridge BridgeConfig `yaml:"bridge"`

	// AlignThreshold 相机与情感视角的对齐距离阈值
	AlignThreshold float32 `yaml:"alignThreshold"`

	// ReunionDistance 判定"团聚"的母子距离阈值
	ReunionDistance float32 `yaml:"reunionDistance"`

	// CameraTransitionSec 相机预设切换时长（秒）
	CameraTransitionSec float64 `yaml:"cameraTransitionSec"`

	// BridgeShiftSec 桥段合拢动画时长（秒）
	BridgeShiftSec float64 `yaml:"bridgeShiftSec"`

	// ReunionSec 角色团聚动画时长（秒）
	ReunionSec float64 `yaml:"reunionSec"`

	// MotherStart / ChildStart 两个角色的初始位置
	MotherStart Vec3Config `yaml:"motherStart"`
	ChildStart  Vec3Config `yaml:"childStart"`
}

// DefaultSceneConfig 返回默认场景配置
//
// 默认布局：两座平台隔着裂谷相对，断桥两段各悬在平台边缘；
// 情感视角位于让两段桥在画面上恰好接续的机位。
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		MotherView: ViewPresetConfig{
			Position: Vec3Config{X: -18, Y: 9, Z: 16},
			LookAt:   Vec3Config{X: -8, Y: 2, Z: 0},
			Label:    "母亲的视角",
		},
		ChildView: ViewPresetConfig{
			Position: Vec3Config{X: 18, Y: 9, Z: 16},
			LookAt:   Vec3Config{X: 8, Y: 2, Z: 0},
			Label:    "孩子的视角",
		},
		EmotionalView: ViewPresetConfig{
			Position: Vec3Config{X: 0, Y: 7, Z: 26},
			LookAt:   Vec3Config{X: 0, Y: 2, Z: 0},
			Label:    "情感的视角",
		},
		Bridge: BridgeConfig{
			LeftSegmentPos:   Vec3Config{X: -5.5, Y: 2, Z: 0},
			RightSegmentPos:  Vec3Config{X: 5.5, Y: 2, Z: 0},
			SegmentLength:    6,
			SegmentWidth:     2.4,
			SegmentThickness: 0.6,
			TriggerOffset:    2.5,
		},
		AlignThreshold:      2.0,
		ReunionDistance:     5.0,
		CameraTransitionSec: 2.0,
		BridgeShiftSec:      1.0,
		ReunionSec:          2.0,
		MotherStart:         Vec3Config{X: -10, Y: 3.2, Z: 0},
		ChildStart:          Vec3Config{X: 10, Y: 3.2, Z: 0},
	}
}

// LoadSceneConfig 从 yaml 文件加载场景配置
//
// 文件不存在或解析失败时回退到默认配置并记录日志（不视为致命错误），
// 与资源加载失败的降级策略一致。
func LoadSceneConfig(path string) *SceneConfig {
	cfg := DefaultSceneConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Config] Scene config not found at %s, using defaults", path)
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[Config] Failed to parse scene config %s: %v (using defaults)", path, err)
		return DefaultSceneConfig()
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("[Config] Invalid scene config %s: %v (using defaults)", path, err)
		return DefaultSceneConfig()
	}

	log.Printf("[Config] Scene config loaded from %s", path)
	return cfg
}

// Validate 校验配置中的阈值与时长
func (c *SceneConfig) Validate() error {
	if c.AlignThreshold <= 0 {
		return fmt.Errorf("alignThreshold must be positive, got %v", c.AlignThreshold)
	}
	if c.ReunionDistance <= 0 {
		return fmt.Errorf("reunionDistance must be positive, got %v", c.ReunionDistance)
	}
	if c.CameraTransitionSec <= 0 || c.BridgeShiftSec <= 0 || c.ReunionSec <= 0 {
		return fmt.Errorf("animation durations must be positive")
	}
	return nil
}
