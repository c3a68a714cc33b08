package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowHints {
		t.Error("ShowHints: got false, want true")
	}
	if settings.SnapshotFormat != "png" {
		t.Errorf("SnapshotFormat: got %q, want png", settings.SnapshotFormat)
	}
	if settings.SnapshotQuality != 90 {
		t.Errorf("SnapshotQuality: got %v, want 90", settings.SnapshotQuality)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.SnapshotFormat != "png" {
		t.Errorf("Degraded mode SnapshotFormat: got %q, want png", settings.SnapshotFormat)
	}

	// 降级模式下 Save()/Load() 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
	sm.SetShowHints(false)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if !sm.GetSettings().ShowHints {
		t.Error("After Load() in degraded mode, ShowHints should reset to default true")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_zheying_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	// 创建设置管理器并修改设置
	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetShowHints(false)
	sm1.SetSnapshotFormat("webp")
	sm1.SetSnapshotQuality(75)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.ShowHints {
		t.Error("Loaded ShowHints: got true, want false")
	}
	if settings.SnapshotFormat != "webp" {
		t.Errorf("Loaded SnapshotFormat: got %q, want webp", settings.SnapshotFormat)
	}
	if settings.SnapshotQuality != 75 {
		t.Errorf("Loaded SnapshotQuality: got %v, want 75", settings.SnapshotQuality)
	}
}

// TestSetSnapshotFormat 测试格式设置与非法值回退
func TestSetSnapshotFormat(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"png", "png"},
		{"jpeg", "jpeg"},
		{"webp", "webp"},
		{"gif", "png"},
		{"", "png"},
	}
	for _, tt := range tests {
		sm.SetSnapshotFormat(tt.input)
		if got := sm.GetSettings().SnapshotFormat; got != tt.expected {
			t.Errorf("SetSnapshotFormat(%q): got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// TestSetSnapshotQualityClamp 测试 JPEG 质量范围校验
func TestSetSnapshotQualityClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    int
		expected int
	}{
		{50, 50},
		{1, 1},
		{100, 100},
		{0, 1},
		{-10, 1},
		{101, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		sm.SetSnapshotQuality(tt.input)
		if got := sm.GetSettings().SnapshotQuality; got != tt.expected {
			t.Errorf("SetSnapshotQuality(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestGetSettings 测试 GetSettings() 返回同一实例
func TestGetSettings(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	settings1 := sm.GetSettings()
	settings2 := sm.GetSettings()

	if settings1 != settings2 {
		t.Error("GetSettings() should return the same instance")
	}

	sm.SetFullscreen(true)
	if !settings1.Fullscreen {
		t.Error("Settings should be the same instance")
	}
}
