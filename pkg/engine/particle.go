package engine

import "github.com/gonewx/seasonscape/pkg/config"

// ParticleKind 是粒子的外观种类判别值。
// 每种外观对应 Renderer 中的一种绘制方式。
type ParticleKind int

const (
	// KindDot 普通圆点（默认回退外观）
	KindDot ParticleKind = iota
	// KindPetal 花瓣（旋转泪滴形）
	KindPetal
	// KindDust 光尘（圆点 + 大范围淡光晕）
	KindDust
	// KindLeaf 落叶（优先使用图片资源，缺失时退化为程序化曲线形状）
	KindLeaf
	// KindRain 雨线（长度与速度联动的渐变线段）
	KindRain
	// KindMist 薄雾（大半径低透明度径向渐变）
	KindMist
	// KindDewdrop 露珠（实心圆 + 高光点）
	KindDewdrop
	// KindSnow 雪花（实心圆）
	KindSnow
	// KindEmber 火星（径向渐变辉光，无硬边）
	KindEmber
)

// ParseKind 将配置中的种类名解析为 ParticleKind。
// 未知名称返回 KindDot 与 false。
func ParseKind(name string) (ParticleKind, bool) {
	switch name {
	case "dot":
		return KindDot, true
	case "petal":
		return KindPetal, true
	case "dust":
		return KindDust, true
	case "leaf":
		return KindLeaf, true
	case "rain":
		return KindRain, true
	case "mist":
		return KindMist, true
	case "dewdrop":
		return KindDewdrop, true
	case "snow":
		return KindSnow, true
	case "ember":
		return KindEmber, true
	default:
		return KindDot, false
	}
}

// Particle 是一个模拟中的可视实体。
// 粒子由 Simulation 的固定容量池独占持有，每 tick 被就地修改；
// 越界时在原槽位上被工厂新建的粒子整体覆盖（回收），池永不增缩。
type Particle struct {
	X, Y    float64      // 位置（逻辑坐标）
	VX, VY  float64      // 速度
	Radius  float64      // 半径
	Angle   float64      // 朝向角（弧度）
	Spin    float64      // 角速度
	Kind    ParticleKind // 外观种类
	Opacity float64      // 不透明度 0-1
	Color   config.RGB   // 颜色（透明度单独存放）
	Z       float64      // 深度系数 0.6-1.0，近大远小，同时缩放位移
}

// Ripple 是雨滴触底时生成的涟漪环。
// 每 tick 半径按固定增量扩大、不透明度按固定增量衰减，
// 衰减到 0 时从列表移除。
type Ripple struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// Flare 是夏季专属的光晕效果，独立于粒子池。
// 光晕中心绕锚点缓慢公转，在季节切换时整组丢弃。
type Flare struct {
	X, Y         float64 // 锚点
	Radius       float64
	Phase        float64 // 公转相位角
	AngularSpeed float64 // 相位角速度（弧度 / 时间单位）
	OrbitRadius  float64
}
