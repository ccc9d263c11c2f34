package engine

import "math"

// 积分与衰减常量。
//
// 速度衰减 VelocityDamping* 每 tick 固定应用一次、不随 elapsed 缩放，
// 而位置积分是按 elapsed 缩放的 —— 这个不一致沿袭自最初的实现，
// 直接影响动画手感，调整时改这里的常量而不是改公式。
const (
	// MaxTickElapsed 单次 tick 的积分步长上限（时间单位）。
	// 标签页切到后台再回来时 elapsed 可能非常大，截断避免粒子瞬移。
	MaxTickElapsed = 40.0
	// BaseFrameElapsed 60Hz 基准帧时长，积分缩放比 = elapsed / BaseFrameElapsed。
	BaseFrameElapsed = 16.0
	// VelocityDampingX 水平速度每 tick 衰减系数。
	VelocityDampingX = 0.995
	// VelocityDampingY 垂直速度每 tick 衰减系数。
	VelocityDampingY = 0.997
)

// 指针交互常量。
const (
	// PointerInfluenceRadius 指针影响半径，超出后影响力为零。
	PointerInfluenceRadius = 180.0
	// pointerForceGain 指针推力增益，与指针速度和距离衰减相乘。
	pointerForceGain = 0.004
)

// 回收边界：粒子超出可见范围该幅度后，槽位被工厂新建的粒子覆盖。
const (
	recycleMarginFar  = 80.0  // 右、下方向
	recycleMarginNear = 140.0 // 左、上方向
)

// 涟漪常量：每 tick 固定增量（与 tick 时长无关）。
const (
	rippleGrowth      = 1.6
	rippleFade        = 0.03
	rippleSpawnRadius = 2.0
	rippleSpawnAlpha  = 0.45
)

// 季节力常量（每基准帧叠加到速度上的加速度）。
const (
	// SpringPull 春季花瓣的恒定下坠加速度。
	SpringPull = 0.006
	// SummerPull 夏季光尘的微弱下坠加速度。
	SummerPull = 0.002
	// MonsoonPull 雨季雨滴的下坠加速度（强）。
	MonsoonPull = 0.045
	// AutumnPull 秋季落叶的下坠加速度。
	AutumnPull = 0.01
	// DewdropPull 初冬露珠的下坠加速度。
	DewdropPull = 0.012
	// EmberLift 冬季火星的上升加速度。
	EmberLift = 0.004
	// SnowPull 冬季雪花的下坠加速度。
	SnowPull = 0.005
	// mistDrift 初冬薄雾缓慢向右漂移的目标速度。
	mistDrift = 0.03
)

// Simulation 是逐帧粒子模拟：持有固定容量的粒子池与瞬态的
// 涟漪/光晕列表，每 tick 施加指针交互力与季节力、积分位置、
// 回收越界粒子。池与列表由 Simulation 独占持有和修改。
type Simulation struct {
	factory *Factory
	pointer *PointerTracker

	season  Season
	pool    []Particle
	ripples []Ripple
	flares  []Flare

	clockMs float64 // 累计模拟时间，驱动基于时间的正弦摆动相位
}

// NewSimulation 创建模拟器。粒子池为空，首次 Rebuild 后才有内容。
func NewSimulation(factory *Factory, pointer *PointerTracker) *Simulation {
	return &Simulation{
		factory: factory,
		pointer: pointer,
		season:  SeasonPrewinter,
	}
}

// Season 返回当前激活的季节。
func (s *Simulation) Season() Season {
	return s.season
}

// Particles 返回粒子池切片。仅供渲染器与测试读取，
// 池的增删与回收只由 Simulation 自己进行。
func (s *Simulation) Particles() []Particle {
	return s.pool
}

// Ripples 返回当前涟漪列表（仅供渲染与测试读取）。
func (s *Simulation) Ripples() []Ripple {
	return s.ripples
}

// Flares 返回当前光晕列表（仅供渲染与测试读取）。
func (s *Simulation) Flares() []Flare {
	return s.flares
}

// Rebuild 切换季节：丢弃涟漪与光晕、按季节容量整体重建粒子池。
// 不存在跨季节的粒子存活。
func (s *Simulation) Rebuild(season Season, width, height float64) {
	s.season = season
	capacity := s.factory.Params(season).Capacity

	s.pool = make([]Particle, capacity)
	for i := range s.pool {
		s.pool[i] = s.factory.NewParticle(season, width, height)
	}

	s.ripples = nil
	s.flares = s.factory.NewFlares(season, width, height)
}

// Reflow 在表面尺寸变化后把越界粒子拉回新边界内。
// 只修正位置，不重置速度与种类。
func (s *Simulation) Reflow(width, height float64) {
	for i := range s.pool {
		p := &s.pool[i]
		if p.X < 0 {
			p.X = 0
		} else if p.X > width {
			p.X = width
		}
		if p.Y < 0 {
			p.Y = 0
		} else if p.Y > height {
			p.Y = height
		}
	}
}

// Advance 推进一个 tick。
//
// elapsed 为本 tick 的积分时长（调用方已截断到 MaxTickElapsed），
// interaction 表示指针交互力是否生效（交互开关开启且未开启减弱动画），
// animate 为 false 时冻结角度/相位推进（减弱动画模式）。
//
// 每个粒子依次经历：指针交互力 → 季节力 → 固定速度衰减 →
// 位置积分（按 elapsed 比例与深度系数缩放）→ 越界回收。
// 雨滴触底生成涟漪并立即回收，保证一次触底恰好一个涟漪。
func (s *Simulation) Advance(elapsed, width, height float64, interaction, animate bool) {
	scale := elapsed / BaseFrameElapsed
	s.clockMs += elapsed

	if animate {
		for i := range s.flares {
			s.flares[i].Phase += s.flares[i].AngularSpeed * elapsed
		}
	}

	for i := range s.pool {
		p := &s.pool[i]

		if interaction {
			s.applyPointerForce(p, scale)
		}
		s.applySeasonForce(p, scale, animate)

		p.VX *= VelocityDampingX
		p.VY *= VelocityDampingY

		p.X += p.VX * scale * p.Z
		p.Y += p.VY * scale * p.Z

		// 雨滴触底：生成一个涟漪并立即回收该槽位
		if p.Kind == KindRain && p.Y > height-2 {
			s.ripples = append(s.ripples, Ripple{
				X:       p.X,
				Y:       height - 3,
				Radius:  rippleSpawnRadius,
				Opacity: rippleSpawnAlpha,
			})
			s.pool[i] = s.factory.NewParticleAboveTop(s.season, width)
			continue
		}

		if p.X > width+recycleMarginFar || p.X < -recycleMarginNear ||
			p.Y > height+recycleMarginFar || p.Y < -recycleMarginNear {
			s.pool[i] = s.factory.NewParticleAboveTop(s.season, width)
		}
	}

	s.ageRipples()
}

// applyPointerForce 施加指针邻近推力：按反距离加权、随指针速度缩放，
// 影响半径 PointerInfluenceRadius，方向为从指针指向粒子（推开）。
func (s *Simulation) applyPointerForce(p *Particle, scale float64) {
	speed := s.pointer.Speed()
	if speed == 0 {
		return
	}
	px, py := s.pointer.Position()
	dx := p.X - px
	dy := p.Y - py
	dist := math.Hypot(dx, dy)
	if dist >= PointerInfluenceRadius || dist < 1e-6 {
		return
	}
	f := (1 - dist/PointerInfluenceRadius) * speed * pointerForceGain * scale
	p.VX += dx / dist * f
	p.VY += dy / dist * f
}

// applySeasonForce 施加季节专属的加速度。
// 各季节使用不同的正弦摆动与重力公式；animate 为 false 时
// 冻结粒子自转角推进。
func (s *Simulation) applySeasonForce(p *Particle, scale float64, animate bool) {
	t := s.clockMs
	switch s.season {
	case SeasonSpring:
		p.VX += math.Sin(p.Angle+t*0.002) * 0.012 * scale
		p.VY += SpringPull * scale
		if animate {
			p.Angle += p.Spin * scale
		}
	case SeasonSummer:
		p.VX += math.Sin(p.Y*0.01+t*0.0015) * 0.008 * scale
		p.VY += SummerPull * scale
	case SeasonMonsoon:
		p.VX += math.Sin(p.X*0.008+t*0.002) * 0.02 * scale
		p.VY += MonsoonPull * scale
	case SeasonAutumn:
		p.VX += math.Sin(p.Y*0.006+p.Angle) * 0.016 * scale
		p.VY += AutumnPull * scale
		if animate {
			p.Angle += p.Spin * scale
		}
	case SeasonWinter:
		p.VX += math.Sin(p.Y*0.01+t*0.001) * 0.006 * scale
		if p.Kind == KindEmber {
			p.VY -= EmberLift * scale
		} else {
			p.VY += SnowPull * scale
		}
	default: // SeasonPrewinter 及未知季节的回退
		if p.Kind == KindMist {
			p.VX += (mistDrift - p.VX) * 0.002 * scale
		} else {
			p.VY += DewdropPull * scale
		}
	}
}

// ageRipples 按固定增量扩大并衰减所有涟漪，移除耗尽的涟漪。
// 就地压缩列表，避免每 tick 重新分配。
func (s *Simulation) ageRipples() {
	alive := s.ripples[:0]
	for _, r := range s.ripples {
		r.Radius += rippleGrowth
		r.Opacity -= rippleFade
		if r.Opacity > 0 {
			alive = append(alive, r)
		}
	}
	s.ripples = alive
}
