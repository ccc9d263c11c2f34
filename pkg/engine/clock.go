package engine

import "time"

// Clock 是引擎的时间源抽象，单位为毫秒（时间单位）。
// 生产环境使用系统单调时钟，测试注入可控时钟以便确定性推进 tick。
type Clock interface {
	// Now 返回当前时间，单位毫秒。只要求单调递增，不要求绝对时刻。
	Now() float64
}

// systemClock 基于 time.Since 的单调时钟。
type systemClock struct {
	start time.Time
}

// NewSystemClock 创建从零开始计时的系统时钟。
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}
