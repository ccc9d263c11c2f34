package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DashboardSettings 仪表盘的全局用户设置。
type DashboardSettings struct {
	// Season 上次选择的季节名（小写）
	Season string `yaml:"season"`
	// ParticleInteraction 指针-粒子交互开关（每 tick 实时读取）
	ParticleInteraction bool `yaml:"particleInteraction"`
	// ReducedMotion 减弱动画：完全禁用动画调度（启动时读取一次）
	ReducedMotion bool `yaml:"reducedMotion"`
	// Use24HourClock 时钟使用 24 小时制
	Use24HourClock bool `yaml:"use24HourClock"`
	// ShowSeconds 时钟显示秒
	ShowSeconds bool `yaml:"showSeconds"`
}

// DefaultSettings 返回默认设置。
func DefaultSettings() *DashboardSettings {
	return &DashboardSettings{
		Season:              "prewinter",
		ParticleInteraction: true,
		ReducedMotion:       false,
		Use24HourClock:      true,
		ShowSeconds:         true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理。
type SettingsManager struct {
	gdataManager *gdata.Manager     // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DashboardSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "dashboard"
)

// NewSettingsManager 创建新的设置管理器实例。
//
// gdataManager 可为 nil：降级为仅内存设置，不持久化。
// 加载失败不是致命错误，回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 从 gdata 加载设置。
// gdataManager 为 nil 或数据不存在时使用默认设置。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to parse settings: %w", err)
	}
	sm.settings = loaded
	return nil
}

// Save 把当前设置序列化为 YAML 并写入 gdata。
// 降级模式下静默跳过。
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 返回当前设置（直接引用，修改后调用 Save 持久化）。
func (sm *SettingsManager) Settings() *DashboardSettings {
	return sm.settings
}

// SetSeason 更新选择的季节并持久化。
func (sm *SettingsManager) SetSeason(season string) {
	sm.settings.Season = season
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to save settings: %v", err)
	}
}

// SetParticleInteraction 更新粒子交互开关并持久化。
func (sm *SettingsManager) SetParticleInteraction(enabled bool) {
	sm.settings.ParticleInteraction = enabled
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to save settings: %v", err)
	}
}

// SetUse24HourClock 更新时钟制式并持久化。
func (sm *SettingsManager) SetUse24HourClock(enabled bool) {
	sm.settings.Use24HourClock = enabled
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to save settings: %v", err)
	}
}
