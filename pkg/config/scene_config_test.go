package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultSceneConfig 默认配置自洽且通过校验
func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("默认配置未通过校验: %v", err)
	}

	// 左右视角与桥段在 x 轴上镜像对称
	if cfg.MotherView.Position.X != -cfg.ChildView.Position.X {
		t.Error("母亲与孩子视角的 x 不镜像")
	}
	if cfg.Bridge.LeftSegmentPos.X != -cfg.Bridge.RightSegmentPos.X {
		t.Error("两段桥体的 x 不镜像")
	}
	if cfg.MotherStart.X != -cfg.ChildStart.X {
		t.Error("角色初始位置的 x 不镜像")
	}

	// 情感视角居中
	if cfg.EmotionalView.Position.X != 0 {
		t.Errorf("情感视角 x = %v, 期望 0", cfg.EmotionalView.Position.X)
	}
}

// TestLoadSceneConfigMissingFile 文件缺失时回退到默认配置
func TestLoadSceneConfigMissingFile(t *testing.T) {
	cfg := LoadSceneConfig(filepath.Join(t.TempDir(), "no-such.yaml"))

	defaults := DefaultSceneConfig()
	if cfg.AlignThreshold != defaults.AlignThreshold {
		t.Errorf("AlignThreshold = %v, 期望默认 %v", cfg.AlignThreshold, defaults.AlignThreshold)
	}
	if cfg.EmotionalView.Label != defaults.EmotionalView.Label {
		t.Errorf("EmotionalView.Label = %q, 期望默认 %q", cfg.EmotionalView.Label, defaults.EmotionalView.Label)
	}
}

// TestLoadSceneConfigOverride yaml 文件可覆盖默认值，未写字段保持默认
func TestLoadSceneConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	yamlData := `
alignThreshold: 3.5
bridge:
  triggerOffset: 4.0
emotionalView:
  position: {x: 0, y: 9, z: 30}
  lookAt: {x: 0, y: 2, z: 0}
  label: "测试视角"
cameraTransitionSec: 1.5
bridgeShiftSec: 1.0
reunionSec: 2.0
reunionDistance: 5.0
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSceneConfig(path)
	if cfg.AlignThreshold != 3.5 {
		t.Errorf("AlignThreshold = %v, 期望 3.5", cfg.AlignThreshold)
	}
	if cfg.Bridge.TriggerOffset != 4.0 {
		t.Errorf("TriggerOffset = %v, 期望 4.0", cfg.Bridge.TriggerOffset)
	}
	if cfg.EmotionalView.Label != "测试视角" {
		t.Errorf("EmotionalView.Label = %q", cfg.EmotionalView.Label)
	}
	if cfg.CameraTransitionSec != 1.5 {
		t.Errorf("CameraTransitionSec = %v, 期望 1.5", cfg.CameraTransitionSec)
	}

	// 未覆盖的字段保留默认
	defaults := DefaultSceneConfig()
	if cfg.MotherView.Position != defaults.MotherView.Position {
		t.Error("未覆盖的 motherView 应保持默认")
	}
}

// TestLoadSceneConfigInvalidYaml 解析失败时回退到默认配置
func TestLoadSceneConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("alignThreshold: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSceneConfig(path)
	if cfg.AlignThreshold != DefaultSceneConfig().AlignThreshold {
		t.Error("解析失败应回退默认配置")
	}
}

// TestLoadSceneConfigInvalidValues 校验失败时回退到默认配置
func TestLoadSceneConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("alignThreshold: -1"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSceneConfig(path)
	if cfg.AlignThreshold != DefaultSceneConfig().AlignThreshold {
		t.Error("校验失败应回退默认配置")
	}
}

// TestValidate 配置校验的拒绝规则
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr bool
	}{
		{"默认配置通过", func(c *SceneConfig) {}, false},
		{"对齐阈值为零", func(c *SceneConfig) { c.AlignThreshold = 0 }, true},
		{"团聚阈值为负", func(c *SceneConfig) { c.ReunionDistance = -1 }, true},
		{"过渡时长为零", func(c *SceneConfig) { c.CameraTransitionSec = 0 }, true},
		{"团聚时长为负", func(c *SceneConfig) { c.ReunionSec = -2 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
