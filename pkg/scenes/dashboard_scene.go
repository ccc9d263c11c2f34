// Package scenes 实现仪表盘的场景。
package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/seasonscape/pkg/config"
	"github.com/gonewx/seasonscape/pkg/engine"
	"github.com/gonewx/seasonscape/pkg/game"
	"github.com/gonewx/seasonscape/pkg/modules"
	"github.com/gonewx/seasonscape/pkg/utils"
)

// 各季节的背景色。粒子颜色在深色背景上才有层次。
var seasonBackgrounds = map[engine.Season]color.NRGBA{
	engine.SeasonSpring:    {R: 34, G: 30, B: 42, A: 255},
	engine.SeasonSummer:    {R: 38, G: 30, B: 24, A: 255},
	engine.SeasonMonsoon:   {R: 18, G: 24, B: 34, A: 255},
	engine.SeasonAutumn:    {R: 36, G: 26, B: 20, A: 255},
	engine.SeasonWinter:    {R: 16, G: 20, B: 30, A: 255},
	engine.SeasonPrewinter: {R: 24, G: 26, B: 32, A: 255},
}

// DashboardScene 问候仪表盘场景：时钟 + 问候语 + 季节粒子动画。
// 时钟/问候子系统与粒子引擎完全独立，只共享减弱动画标志。
type DashboardScene struct {
	eng             *engine.Engine
	settingsManager *game.SettingsManager
	greetings       *config.GreetingConfig
	panel           *modules.SettingsPanelModule

	clockFace text.Face
	greetFace text.Face
	hintFace  text.Face

	// now 可注入的壁钟时间源（时钟显示用，与引擎的模拟时钟无关）
	now func() time.Time
}

// NewDashboardScene 创建仪表盘场景。
func NewDashboardScene(eng *engine.Engine, sm *game.SettingsManager, rm *game.ResourceManager, greetings *config.GreetingConfig) *DashboardScene {
	s := &DashboardScene{
		eng:             eng,
		settingsManager: sm,
		greetings:       greetings,
		clockFace:       rm.FontFace(64),
		greetFace:       rm.FontFace(24),
		hintFace:        rm.FontFace(12),
		now:             time.Now,
	}
	s.panel = modules.NewSettingsPanelModule(sm, rm, func(season engine.Season) {
		eng.SetMode(season)
	})
	return s
}

// Update 每 tick 更新：输入 → 面板 → 引擎。
func (s *DashboardScene) Update(deltaTime float64) {
	w, h := s.eng.Surface().Size()

	// 指针写入在 tick 边界进行，引擎在本 tick 内只读
	px, py, pressed := utils.PointerPosition()
	s.eng.Pointer().Update(float64(px), float64(py), pressed)

	if x, y, ok := utils.TapPosition(); ok {
		s.panel.HandleTap(float64(x), float64(y), w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s.eng.Running() {
			s.eng.Pause()
		} else {
			s.eng.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.panel.Toggle()
	}

	s.panel.Update(deltaTime)
	s.eng.Tick(s.settingsManager.Settings().ParticleInteraction)
}

// Draw 渲染一帧：背景 → 粒子 → 时钟与问候 → 面板。
func (s *DashboardScene) Draw(screen *ebiten.Image) {
	bg, ok := seasonBackgrounds[s.eng.Season()]
	if !ok {
		bg = seasonBackgrounds[engine.SeasonPrewinter]
	}
	screen.Fill(bg)

	s.eng.Draw(screen)

	w, h := s.eng.Surface().Size()
	s.drawClock(screen, w, h)
	s.drawCenteredText(screen, s.greeting(), s.greetFace, w/2, h*0.30+52, 24,
		color.NRGBA{R: 214, G: 220, B: 228, A: 230})
	s.drawHint(screen, h)

	s.panel.Draw(screen, w, h)
}

// greeting 返回当前时段的问候语。
func (s *DashboardScene) greeting() string {
	return s.greetings.TextForHour(s.now().Hour())
}

// clockText 按设置格式化当前时间。
func (s *DashboardScene) clockText() string {
	settings := s.settingsManager.Settings()
	layout := "15:04"
	switch {
	case settings.Use24HourClock && settings.ShowSeconds:
		layout = "15:04:05"
	case !settings.Use24HourClock && settings.ShowSeconds:
		layout = "3:04:05 PM"
	case !settings.Use24HourClock:
		layout = "3:04 PM"
	}
	return s.now().Format(layout)
}

// drawClock 在屏幕上部居中绘制时钟。
func (s *DashboardScene) drawClock(screen *ebiten.Image, w, h float64) {
	s.drawCenteredText(screen, s.clockText(), s.clockFace, w/2, h*0.30, 64,
		color.NRGBA{R: 240, G: 244, B: 250, A: 255})
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字，targetH 为目标行高。
// 点阵回退字体尺寸固定，按目标行高放大。
func (s *DashboardScene) drawCenteredText(screen *ebiten.Image, str string, face text.Face, cx, cy, targetH float64, clr color.NRGBA) {
	tw, th := text.Measure(str, face, 0)
	scale := 1.0
	if th > 0 && th < targetH*0.75 {
		scale = targetH / th
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-tw*scale/2, cy-th*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawHint 左下角的操作提示。
func (s *DashboardScene) drawHint(screen *ebiten.Image, h float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, h-22)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 150, G: 156, B: 164, A: 160})
	text.Draw(screen, "Space: pause/resume   S: settings", s.hintFace, op)
}

// NotifyLayout 把宿主的逻辑尺寸变化转发给引擎（防抖后生效）。
func (s *DashboardScene) NotifyLayout(w, h float64) {
	s.eng.RequestResize(w, h)
}

// SaveOnExit 在窗口关闭时持久化设置。
func (s *DashboardScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[DashboardScene] 退出保存设置失败: %v", err)
		return false
	}
	return true
}
