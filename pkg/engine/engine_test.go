package engine

import (
	"math"
	"testing"

	"github.com/gonewx/seasonscape/pkg/config"
)

// mockClock 可手动推进的测试时钟（毫秒）
type mockClock struct {
	now float64
}

func (c *mockClock) Now() float64 {
	return c.now
}

// newTestEngine 创建使用测试时钟的引擎
func newTestEngine(reducedMotion bool) (*Engine, *mockClock) {
	clock := &mockClock{}
	e := New(Options{
		Seasons:       config.DefaultSeasonSet(),
		Season:        SeasonMonsoon,
		Width:         800,
		Height:        600,
		ReducedMotion: reducedMotion,
		Clock:         clock,
	})
	return e, clock
}

// snapshotPool 复制当前粒子池用于前后对比
func snapshotPool(e *Engine) []Particle {
	pool := e.Simulation().Particles()
	out := make([]Particle, len(pool))
	copy(out, pool)
	return out
}

func poolsEqual(a, b []Particle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestEngineInitialState 测试构造后的初始状态
func TestEngineInitialState(t *testing.T) {
	e, _ := newTestEngine(false)

	if !e.Running() {
		t.Error("engine should be running after construction")
	}
	if e.Season() != SeasonMonsoon {
		t.Errorf("Season() = %v, want monsoon", e.Season())
	}
	if len(e.Simulation().Particles()) != 140 {
		t.Errorf("pool = %d, want 140", len(e.Simulation().Particles()))
	}
}

// TestEngineTickAdvances 测试运行状态下 tick 推进模拟
func TestEngineTickAdvances(t *testing.T) {
	e, clock := newTestEngine(false)
	before := snapshotPool(e)

	clock.now += 16
	e.Tick(true)

	if poolsEqual(before, e.Simulation().Particles()) {
		t.Error("Tick should advance the simulation")
	}
}

// TestEngineTickZeroElapsed 测试时钟未推进时 tick 不产生变化
func TestEngineTickZeroElapsed(t *testing.T) {
	e, _ := newTestEngine(false)
	before := snapshotPool(e)

	e.Tick(true)

	if !poolsEqual(before, e.Simulation().Particles()) {
		t.Error("Tick with zero elapsed should not mutate the pool")
	}
}

// TestEngineElapsedCap 测试超长间隔被截断到 MaxTickElapsed
func TestEngineElapsedCap(t *testing.T) {
	e, clock := newTestEngine(false)

	p := &e.Simulation().Particles()[0]
	p.X, p.Y = 100, 100
	p.VX, p.VY = 0, 1.0
	p.Z = 1.0
	p.Kind = KindRain

	// 模拟标签页后台 5 秒后恢复
	clock.now += 5000
	e.Tick(false)

	// 积分步长上限 40ms：scale = 40/16 = 2.5
	scale := MaxTickElapsed / BaseFrameElapsed
	wantVY := (1.0 + MonsoonPull*scale) * VelocityDampingY
	got := e.Simulation().Particles()[0]
	if math.Abs(got.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %v, want %v (capped elapsed)", got.VY, wantVY)
	}
	wantY := 100 + wantVY*scale
	if math.Abs(got.Y-wantY) > 1e-9 {
		t.Errorf("Y = %v, want %v (no teleport)", got.Y, wantY)
	}
}

// TestPauseStopsTicks 测试暂停后 tick 完全不修改状态，重复暂停无害
func TestPauseStopsTicks(t *testing.T) {
	e, clock := newTestEngine(false)

	e.Pause()
	if e.Running() {
		t.Fatal("engine should not be running after Pause")
	}
	e.Pause() // 幂等

	before := snapshotPool(e)
	clock.now += 160
	e.Tick(true)

	if !poolsEqual(before, e.Simulation().Particles()) {
		t.Error("paused engine must not mutate the pool")
	}
}

// TestResumeResetsTimeBase 测试恢复重置时间基准，暂停期不计入积分
func TestResumeResetsTimeBase(t *testing.T) {
	e, clock := newTestEngine(false)

	e.Pause()
	clock.now += 60000 // 暂停一分钟
	e.Resume()
	if !e.Running() {
		t.Fatal("engine should be running after Resume")
	}

	// 恢复后的第一个 tick 只按真实帧间隔积分
	p := &e.Simulation().Particles()[0]
	p.X, p.Y = 100, 100
	p.VX, p.VY = 0, 1.0
	p.Z = 1.0
	p.Kind = KindRain

	clock.now += 16
	e.Tick(false)

	wantVY := (1.0 + MonsoonPull) * VelocityDampingY
	got := e.Simulation().Particles()[0]
	if math.Abs(got.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %v, want %v (pause time must not accumulate)", got.VY, wantVY)
	}

	// 已运行时重复 Resume 无效果
	e.Resume()
	if !e.Running() {
		t.Error("Resume on running engine should be a no-op")
	}
}

// TestReducedMotionNeverRuns 测试减弱动画模式：不运行、Resume 无效
func TestReducedMotionNeverRuns(t *testing.T) {
	e, clock := newTestEngine(true)

	if e.Running() {
		t.Fatal("reduced motion engine must not be running")
	}
	if !e.ReducedMotion() {
		t.Fatal("ReducedMotion() should report true")
	}

	// 粒子池仍然构建（静态首帧数据存在）
	if len(e.Simulation().Particles()) != 140 {
		t.Errorf("pool = %d, want 140", len(e.Simulation().Particles()))
	}

	e.Resume()
	if e.Running() {
		t.Error("Resume must be a no-op under reduced motion")
	}

	before := snapshotPool(e)
	clock.now += 160
	e.Tick(true)
	if !poolsEqual(before, e.Simulation().Particles()) {
		t.Error("reduced motion engine must never advance")
	}
}

// TestSetModeSwitchesSeason 测试季节热切换重建池
func TestSetModeSwitchesSeason(t *testing.T) {
	e, _ := newTestEngine(false)

	e.SetMode(SeasonWinter)
	if e.Season() != SeasonWinter {
		t.Errorf("Season() = %v, want winter", e.Season())
	}
	if len(e.Simulation().Particles()) != 90 {
		t.Errorf("winter pool = %d, want 90", len(e.Simulation().Particles()))
	}

	// 暂停状态下切换同样生效（恢复后呈现新季节）
	e.Pause()
	e.SetMode(SeasonSummer)
	if len(e.Simulation().Particles()) != 100 {
		t.Errorf("summer pool = %d, want 100", len(e.Simulation().Particles()))
	}
}

// TestEngineResizeDebounce 测试尺寸变化经防抖后在 tick 边界生效并 reflow
func TestEngineResizeDebounce(t *testing.T) {
	e, clock := newTestEngine(false)

	// 放一个在新边界外的粒子
	p := &e.Simulation().Particles()[0]
	p.X, p.Y = 790, 100
	p.VX, p.VY = 0, 0
	p.Kind = KindRain

	e.RequestResize(400, 300)

	// 防抖期内 tick：尺寸不变
	clock.now += 16
	e.Tick(false)
	if w, _ := e.Surface().Size(); w != 800 {
		t.Errorf("width = %v, want 800 (debounce pending)", w)
	}

	// 防抖期满后的下一个 tick：尺寸生效且粒子被拉回
	clock.now += ResizeDebounce + 16
	e.Tick(false)
	w, h := e.Surface().Size()
	if w != 400 || h != 300 {
		t.Errorf("size = (%v, %v), want (400, 300)", w, h)
	}
	// reflow 先于积分，之后同 tick 还有微小的横向摆动
	got := e.Simulation().Particles()[0]
	if got.X > 401 {
		t.Errorf("particle X = %v, want clamped near <= 400", got.X)
	}
}
