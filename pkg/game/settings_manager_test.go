package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata 管理器
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "test_seasonscape"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	// 验证默认季节
	if settings.Season != "prewinter" {
		t.Errorf("Season: got %q, want prewinter", settings.Season)
	}

	// 验证粒子交互默认开启
	if !settings.ParticleInteraction {
		t.Error("ParticleInteraction: got false, want true")
	}

	// 验证减弱动画默认关闭
	if settings.ReducedMotion {
		t.Error("ReducedMotion: got true, want false")
	}

	// 验证时钟默认 24 小时制且显示秒
	if !settings.Use24HourClock {
		t.Error("Use24HourClock: got false, want true")
	}
	if !settings.ShowSeconds {
		t.Error("ShowSeconds: got false, want true")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	if sm.Settings().Season != "prewinter" {
		t.Errorf("Season: got %q, want prewinter", sm.Settings().Season)
	}
}

// TestSettingsManagerDegraded 测试 gdata 不可用时的降级模式
func TestSettingsManagerDegraded(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	// 降级模式下读写都不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}

	// 内存内修改仍然生效
	sm.SetSeason("monsoon")
	if sm.Settings().Season != "monsoon" {
		t.Errorf("Season: got %q, want monsoon", sm.Settings().Season)
	}
}

// TestSettingsSaveLoad 测试设置的保存与重新加载
func TestSettingsSaveLoad(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.SetSeason("winter")
	sm.SetParticleInteraction(false)
	sm.SetUse24HourClock(false)

	// 用同一个 gdata 管理器新建实例，应读回保存的值
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	got := sm2.Settings()
	if got.Season != "winter" {
		t.Errorf("Season: got %q, want winter", got.Season)
	}
	if got.ParticleInteraction {
		t.Error("ParticleInteraction: got true, want false")
	}
	if got.Use24HourClock {
		t.Error("Use24HourClock: got true, want false")
	}
	// 未改动的字段保持默认
	if !got.ShowSeconds {
		t.Error("ShowSeconds: got false, want true")
	}
}

// TestSettingsLoadCorrupt 测试损坏的存档回退默认值并报错
func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	// 直接写入无法解析的数据
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("{not yaml")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt settings")
	}
	if sm.Settings().Season != "prewinter" {
		t.Errorf("corrupt load should fall back to defaults, got %q", sm.Settings().Season)
	}
}
