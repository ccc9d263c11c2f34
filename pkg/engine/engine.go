// Package engine 实现季节粒子动画引擎：一个逐帧运行的模拟，
// 持有固定容量的粒子池，按激活季节施加物理与指针交互力，
// 渲染到 2D 表面，回收越界粒子，并支持暂停/恢复与季节热切换。
//
// 引擎是单线程协作式的：每个 tick 由宿主的动画回调驱动，tick 之间
// 严格串行，永远不会有两个 tick 同时进行。暂停会撤销已登记的
// 下一帧，恢复会重置时间基准以避免一次巨大的时间跳变。
package engine

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/seasonscape/pkg/config"
	"github.com/gonewx/seasonscape/pkg/game"
)

// Options 是引擎的构造参数。
type Options struct {
	// Seasons 季节参数集，nil 时使用内置默认值。
	Seasons *config.SeasonSet
	// Season 初始季节。
	Season Season
	// Width, Height 初始逻辑尺寸。
	Width, Height float64
	// Scale 设备像素比，<=0 按 1.0 处理。
	Scale float64
	// ReducedMotion 减弱动画标志。构造时读取一次，进程生命期内不变；
	// 为 true 时永远不会登记任何动画帧，Resume 也无效。
	ReducedMotion bool
	// Clock 时间源，nil 时使用系统单调时钟。
	Clock Clock
	// Resources 资源管理器，用于装饰图片的后台加载；可为 nil。
	Resources *game.ResourceManager
}

// Engine 是引擎的公开生命周期表面（Engine Controller）。
// 外部协作方（设置面板、季节选择器）只通过 SetMode / Pause /
// Resume / Reflow 四个操作与引擎交互，全部操作幂等。
type Engine struct {
	clock     Clock
	surface   *SurfaceManager
	pointer   *PointerTracker
	sim       *Simulation
	renderer  *Renderer
	resources *game.ResourceManager

	reducedMotion bool
	running       bool    // 是否已登记下一帧（调度状态）
	lastTick      float64 // 上一 tick 的时刻，恢复时重置
}

// New 创建引擎并立即构建初始季节的粒子池。
// 未开启减弱动画时引擎处于运行状态（已登记下一帧）。
func New(opts Options) *Engine {
	if opts.Seasons == nil {
		opts.Seasons = config.DefaultSeasonSet()
	}
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}

	surface := NewSurfaceManager(opts.Width, opts.Height, opts.Scale)
	pointer := NewPointerTracker()
	sim := NewSimulation(NewFactory(opts.Seasons), pointer)
	sim.Rebuild(opts.Season, opts.Width, opts.Height)

	e := &Engine{
		clock:         opts.Clock,
		surface:       surface,
		pointer:       pointer,
		sim:           sim,
		resources:     opts.Resources,
		reducedMotion: opts.ReducedMotion,
		running:       !opts.ReducedMotion,
		lastTick:      opts.Clock.Now(),
	}
	if opts.ReducedMotion {
		log.Printf("[Engine] 减弱动画模式：不登记任何动画帧")
	}
	return e
}

// Pointer 返回指针跟踪器，由输入事件处理方写入。
func (e *Engine) Pointer() *PointerTracker {
	return e.pointer
}

// Surface 返回表面管理器。
func (e *Engine) Surface() *SurfaceManager {
	return e.surface
}

// Simulation 返回内部模拟器（仅供渲染调试与测试读取）。
func (e *Engine) Simulation() *Simulation {
	return e.sim
}

// Season 返回当前激活的季节。
func (e *Engine) Season() Season {
	return e.sim.Season()
}

// Running 返回引擎是否处于运行（已登记下一帧）状态。
func (e *Engine) Running() bool {
	return e.running
}

// ReducedMotion 返回构造时读取的减弱动画标志。
func (e *Engine) ReducedMotion() bool {
	return e.reducedMotion
}

// SetMode 切换季节：丢弃涟漪与光晕列表、按新季节容量重建粒子池，
// 夏季会重新播种 2-3 个光晕。重复设置同一季节同样安全。
func (e *Engine) SetMode(season Season) {
	w, h := e.surface.Size()
	e.sim.Rebuild(season, w, h)
	log.Printf("[Engine] 切换季节: %s（粒子 %d）", season, len(e.sim.Particles()))
}

// Pause 暂停引擎：撤销已登记的下一帧，表面保持清空。
// 已暂停时重复调用无效果。
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.running = false
}

// Resume 恢复引擎：仅在未运行且未开启减弱动画时重新登记下一帧，
// 并重置时间基准，避免暂停期间积累的时间造成一次巨大的积分步长。
func (e *Engine) Resume() {
	if e.running || e.reducedMotion {
		return
	}
	e.running = true
	e.lastTick = e.clock.Now()
}

// Reflow 立即把越界粒子拉回当前边界内（只修正位置）。
func (e *Engine) Reflow() {
	w, h := e.surface.Size()
	e.sim.Reflow(w, h)
}

// Tick 推进一帧。宿主的动画回调每帧调用一次；
// 暂停或减弱动画时直接返回，不登记后续帧、不产生任何表面修改。
//
// interactionEnabled 来自用户的粒子交互开关，每 tick 实时读取。
func (e *Engine) Tick(interactionEnabled bool) {
	if !e.running {
		return
	}

	now := e.clock.Now()
	elapsed := now - e.lastTick
	e.lastTick = now
	if elapsed <= 0 {
		return
	}
	if elapsed > MaxTickElapsed {
		elapsed = MaxTickElapsed
	}

	// 防抖期满的尺寸变化在 tick 边界生效，随即 reflow
	if e.surface.ApplyPending(now) {
		e.Reflow()
	}

	w, h := e.surface.Size()
	interaction := interactionEnabled && !e.reducedMotion
	e.sim.Advance(elapsed, w, h, interaction, !e.reducedMotion)
}

// RequestResize 登记一次逻辑尺寸变化，防抖后生效并触发 reflow。
func (e *Engine) RequestResize(width, height float64) {
	e.surface.RequestResize(width, height, e.clock.Now())
}

// Draw 渲染当前帧。暂停状态下不绘制任何内容（表面保持清空）。
// 渲染器懒初始化，纯逻辑测试不会触碰图形资源。
func (e *Engine) Draw(screen *ebiten.Image) {
	if !e.running {
		return
	}
	if e.renderer == nil {
		e.renderer = NewRenderer(e.resources)
	}
	e.renderer.Draw(screen, e.sim)
}
