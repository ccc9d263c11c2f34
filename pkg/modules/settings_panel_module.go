// Package modules 提供可组合的 UI 模块。
package modules

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/seasonscape/pkg/engine"
	"github.com/gonewx/seasonscape/pkg/game"
	"github.com/gonewx/seasonscape/pkg/utils"
)

// 面板几何常量（逻辑单位）。
const (
	panelWidth   = 230.0
	panelPadding = 16.0
	rowHeight    = 36.0
	gearSize     = 40.0
	slideSpeed   = 5.0 // 展开/收起动画速度（1/秒）
)

// SettingsPanelModule 季节与偏好设置面板
//
// 职责：
//   - 季节选择（六个季节按钮）
//   - 粒子交互开关、时钟制式开关
//   - 通过回调与引擎交互，通过 SettingsManager 持久化
//
// 面板从屏幕右侧滑入滑出，滑动进度用缓出曲线平滑。
type SettingsPanelModule struct {
	settingsManager *game.SettingsManager
	labelFace       text.Face

	visible bool
	slide   float64 // 0 完全收起，1 完全展开

	// 回调：季节被选中（面板自己负责持久化，引擎切换交给外部）
	onSeasonSelect func(season engine.Season)
}

// NewSettingsPanelModule 创建设置面板。
func NewSettingsPanelModule(sm *game.SettingsManager, rm *game.ResourceManager, onSeasonSelect func(engine.Season)) *SettingsPanelModule {
	return &SettingsPanelModule{
		settingsManager: sm,
		labelFace:       rm.FontFace(14),
		onSeasonSelect:  onSeasonSelect,
	}
}

// Toggle 切换面板的展开/收起状态。
func (m *SettingsPanelModule) Toggle() {
	m.visible = !m.visible
}

// IsVisible 返回面板是否处于展开（或正在展开）状态。
func (m *SettingsPanelModule) IsVisible() bool {
	return m.visible
}

// Update 推进滑动动画。dt 单位为秒。
func (m *SettingsPanelModule) Update(dt float64) {
	target := 0.0
	if m.visible {
		target = 1.0
	}
	if m.slide < target {
		m.slide = utils.Clamp01(m.slide + dt*slideSpeed)
	} else if m.slide > target {
		m.slide = utils.Clamp01(m.slide - dt*slideSpeed)
	}
}

// HandleTap 处理一次点按。返回 true 表示点按被面板消费。
// 齿轮按钮始终可点；面板行只在完全展开时可点。
func (m *SettingsPanelModule) HandleTap(x, y, screenW, screenH float64) bool {
	// 右上角齿轮按钮
	if x >= screenW-gearSize-8 && x <= screenW-8 && y >= 8 && y <= 8+gearSize {
		m.Toggle()
		return true
	}
	if !m.visible || m.slide < 1 {
		return false
	}

	px := m.panelX(screenW)
	if x < px || x > px+panelWidth {
		return false
	}

	row := int((y - (8 + gearSize + panelPadding)) / rowHeight)
	seasons := engine.AllSeasons()
	switch {
	case row >= 0 && row < len(seasons):
		season := seasons[row]
		m.settingsManager.SetSeason(season.String())
		if m.onSeasonSelect != nil {
			m.onSeasonSelect(season)
		}
	case row == len(seasons):
		s := m.settingsManager.Settings()
		m.settingsManager.SetParticleInteraction(!s.ParticleInteraction)
	case row == len(seasons)+1:
		s := m.settingsManager.Settings()
		m.settingsManager.SetUse24HourClock(!s.Use24HourClock)
	default:
		return false
	}
	return true
}

// panelX 返回面板左边缘的 X 坐标（按滑动进度插值）。
func (m *SettingsPanelModule) panelX(screenW float64) float64 {
	return screenW - panelWidth*utils.EaseOutCubic(m.slide)
}

// Draw 绘制齿轮按钮与面板。
func (m *SettingsPanelModule) Draw(screen *ebiten.Image, screenW, screenH float64) {
	// 齿轮按钮
	vector.DrawFilledRect(screen,
		float32(screenW-gearSize-8), 8, gearSize, gearSize,
		color.NRGBA{R: 30, G: 34, B: 44, A: 160}, true)
	m.drawLabel(screen, "=", screenW-gearSize/2-8-4, 8+gearSize/2-7, color.NRGBA{R: 230, G: 234, B: 240, A: 255})

	if m.slide <= 0 {
		return
	}

	px := m.panelX(screenW)
	top := 8 + gearSize + panelPadding
	seasons := engine.AllSeasons()
	panelH := float64(len(seasons)+2)*rowHeight + panelPadding*2

	vector.DrawFilledRect(screen,
		float32(px), float32(top-panelPadding), panelWidth, float32(panelH),
		color.NRGBA{R: 22, G: 26, B: 34, A: 210}, true)

	current := m.settingsManager.Settings().Season
	for i, season := range seasons {
		y := top + float64(i)*rowHeight
		name := season.String()
		clr := color.NRGBA{R: 200, G: 206, B: 214, A: 255}
		if name == current {
			vector.DrawFilledRect(screen,
				float32(px+6), float32(y-4), panelWidth-12, rowHeight-6,
				color.NRGBA{R: 70, G: 110, B: 150, A: 120}, true)
			clr = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		m.drawLabel(screen, capitalize(name), px+panelPadding, y, clr)
	}

	s := m.settingsManager.Settings()
	m.drawCheckboxRow(screen, "Particle FX", s.ParticleInteraction,
		px, top+float64(len(seasons))*rowHeight)
	m.drawCheckboxRow(screen, "24-hour clock", s.Use24HourClock,
		px, top+float64(len(seasons)+1)*rowHeight)
}

// drawCheckboxRow 绘制一行带复选框的设置项。
func (m *SettingsPanelModule) drawCheckboxRow(screen *ebiten.Image, label string, checked bool, px, y float64) {
	box := 14.0
	vector.StrokeRect(screen,
		float32(px+panelPadding), float32(y), float32(box), float32(box),
		1.5, color.NRGBA{R: 200, G: 206, B: 214, A: 255}, true)
	if checked {
		vector.DrawFilledRect(screen,
			float32(px+panelPadding+3), float32(y+3), float32(box-6), float32(box-6),
			color.NRGBA{R: 130, G: 190, B: 240, A: 255}, true)
	}
	m.drawLabel(screen, label, px+panelPadding+box+8, y,
		color.NRGBA{R: 200, G: 206, B: 214, A: 255})
}

// capitalize 把季节键名首字母大写用于展示。
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// drawLabel 以面板字体绘制一行文字。
func (m *SettingsPanelModule) drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, m.labelFace, op)
}
