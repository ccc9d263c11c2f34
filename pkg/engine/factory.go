package engine

import (
	"math"
	"math/rand"

	"github.com/gonewx/seasonscape/pkg/config"
)

// spawnOverscan 是初始铺撒时上下边界外的额外范围。
// 季节开始时粒子分布在 [-60, h+60]，看起来已经处于飞行途中。
const spawnOverscan = 60.0

// Factory 按季节参数生成单个粒子。纯构造，无副作用。
type Factory struct {
	set *config.SeasonSet
}

// NewFactory 创建使用给定季节参数集的粒子工厂。
func NewFactory(set *config.SeasonSet) *Factory {
	return &Factory{set: set}
}

// Params 返回季节对应的参数。未知季节回退到 prewinter 参数集。
func (f *Factory) Params(season Season) *config.SeasonParams {
	return f.set.Get(season.String())
}

// NewParticle 为指定季节生成一个粒子，初始位置均匀分布在整个表面
// 及上下各 spawnOverscan 的过扫描区内。
func (f *Factory) NewParticle(season Season, width, height float64) Particle {
	p := f.build(season)
	p.X = rand.Float64() * width
	p.Y = -spawnOverscan + rand.Float64()*(height+2*spawnOverscan)
	return p
}

// NewParticleAboveTop 为回收槽位生成一个粒子，位置在上边缘略上方。
// 这是粒子池大小恒定、动画持续不断的唯一机制。
func (f *Factory) NewParticleAboveTop(season Season, width float64) Particle {
	p := f.build(season)
	p.X = rand.Float64() * width
	p.Y = -rand.Float64() * spawnOverscan
	return p
}

// build 采样季节参数，构造一个未定位的粒子。
func (f *Factory) build(season Season) Particle {
	kp := f.Params(season).PickKind(rand.Float64())
	if kp == nil {
		// 参数集为空：退化为最小可用的圆点粒子
		return Particle{
			Kind: KindDot, Radius: 2, VY: 0.2, Opacity: 0.5,
			Color: config.RGB{R: 255, G: 255, B: 255}, Z: 1,
		}
	}

	kind, ok := ParseKind(kp.Kind)
	if !ok {
		kind = KindDot
	}

	return Particle{
		VX:      kp.VX.Sample(),
		VY:      kp.VY.Sample(),
		Radius:  kp.Radius.Sample(),
		Angle:   rand.Float64() * 2 * math.Pi,
		Spin:    -0.02 + rand.Float64()*0.04,
		Kind:    kind,
		Opacity: kp.Opacity.Sample(),
		Color:   kp.Color,
		Z:       0.6 + rand.Float64()*0.4,
	}
}

// NewFlares 为夏季生成 2-3 个光晕，锚点落在表面上部 60% 区域。
// 数量由季节参数的 flares 区间决定，每次切换季节时选定一次。
func (f *Factory) NewFlares(season Season, width, height float64) []Flare {
	fr := f.Params(season).Flares
	lo, hi := int(fr.Min), int(fr.Max)
	if lo <= 0 {
		return nil
	}
	n := lo
	if hi > lo {
		n += rand.Intn(hi - lo + 1)
	}

	flares := make([]Flare, 0, n)
	for i := 0; i < n; i++ {
		flares = append(flares, Flare{
			X:            rand.Float64() * width,
			Y:            rand.Float64() * height * 0.6,
			Radius:       40 + rand.Float64()*50,
			Phase:        rand.Float64() * 2 * math.Pi,
			AngularSpeed: 0.0008 + rand.Float64()*0.0016,
			OrbitRadius:  10 + rand.Float64()*22,
		})
	}
	return flares
}
