package engine

import "math"

// PointerTracker 记录指针（鼠标/触摸）的位置、帧间速度与按下状态。
// 由输入事件处理方写入，模拟引擎只读 —— 写入与读取只在
// tick/事件边界交错，单线程环境下无需加锁。
type PointerTracker struct {
	x, y    float64
	dx, dy  float64
	pressed bool
	hasPrev bool
	prevX   float64
	prevY   float64
}

// NewPointerTracker 创建指针跟踪器，初始位置在屏幕外（无影响）。
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{x: -1e6, y: -1e6}
}

// Update 写入本帧的指针位置与按下状态，并计算帧间位移。
// 每个输入处理帧调用一次。
func (pt *PointerTracker) Update(x, y float64, pressed bool) {
	if pt.hasPrev {
		pt.dx = x - pt.prevX
		pt.dy = y - pt.prevY
	}
	pt.prevX, pt.prevY = x, y
	pt.x, pt.y = x, y
	pt.pressed = pressed
	pt.hasPrev = true
}

// Position 返回最近一次记录的指针位置。
func (pt *PointerTracker) Position() (x, y float64) {
	return pt.x, pt.y
}

// Velocity 返回指针的帧间位移。
func (pt *PointerTracker) Velocity() (dx, dy float64) {
	return pt.dx, pt.dy
}

// Speed 返回指针帧间位移的模长。静止指针返回 0，
// 此时交互力为零，等价于指针在无穷远处。
func (pt *PointerTracker) Speed() float64 {
	return math.Hypot(pt.dx, pt.dy)
}

// Pressed 返回指针是否处于按下状态。
func (pt *PointerTracker) Pressed() bool {
	return pt.pressed
}
