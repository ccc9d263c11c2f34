package engine

import "testing"

// TestSurfaceManagerBasics 测试逻辑尺寸与缓冲区尺寸计算
func TestSurfaceManagerBasics(t *testing.T) {
	sm := NewSurfaceManager(800, 600, 2.0)

	if w, h := sm.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = (%v, %v), want (800, 600)", w, h)
	}
	if sm.Scale() != 2.0 {
		t.Errorf("Scale() = %v, want 2.0", sm.Scale())
	}
	if w, h := sm.BufferSize(); w != 1600 || h != 1200 {
		t.Errorf("BufferSize() = (%d, %d), want (1600, 1200)", w, h)
	}

	// 非法像素比回退 1.0
	sm = NewSurfaceManager(800, 600, 0)
	if sm.Scale() != 1.0 {
		t.Errorf("Scale() = %v, want 1.0 fallback", sm.Scale())
	}
}

// TestResizeDebounceTiming 测试防抖期内不生效、期满后生效
func TestResizeDebounceTiming(t *testing.T) {
	sm := NewSurfaceManager(800, 600, 1.0)

	sm.RequestResize(400, 300, 1000)

	if sm.ApplyPending(1000 + ResizeDebounce - 1) {
		t.Error("resize applied before debounce deadline")
	}
	if w, _ := sm.Size(); w != 800 {
		t.Errorf("width = %v, want 800 before deadline", w)
	}

	if !sm.ApplyPending(1000 + ResizeDebounce) {
		t.Error("resize not applied at deadline")
	}
	if w, h := sm.Size(); w != 400 || h != 300 {
		t.Errorf("size = (%v, %v), want (400, 300)", w, h)
	}

	// 已应用后再次调用不再返回 true
	if sm.ApplyPending(5000) {
		t.Error("ApplyPending should be one-shot")
	}
}

// TestResizeDebounceCoalesces 测试连续请求只应用最后一个尺寸
func TestResizeDebounceCoalesces(t *testing.T) {
	sm := NewSurfaceManager(800, 600, 1.0)

	sm.RequestResize(700, 500, 1000)
	sm.RequestResize(650, 480, 1050)
	sm.RequestResize(640, 470, 1100)

	// 第一个请求的截止时刻已被后续请求推迟
	if sm.ApplyPending(1000 + ResizeDebounce) {
		t.Error("deadline should be pushed by later requests")
	}
	if !sm.ApplyPending(1100 + ResizeDebounce) {
		t.Error("final request not applied")
	}
	if w, h := sm.Size(); w != 640 || h != 470 {
		t.Errorf("size = (%v, %v), want (640, 470)", w, h)
	}
}

// TestResizeSameSizeCancels 测试与当前尺寸相同的请求取消待应用的变化
func TestResizeSameSizeCancels(t *testing.T) {
	sm := NewSurfaceManager(800, 600, 1.0)

	sm.RequestResize(400, 300, 1000)
	sm.RequestResize(800, 600, 1010) // 回到当前尺寸

	if sm.ApplyPending(10000) {
		t.Error("same-size request should cancel the pending resize")
	}
	if w, h := sm.Size(); w != 800 || h != 600 {
		t.Errorf("size = (%v, %v), want unchanged (800, 600)", w, h)
	}
}

// TestPointerTracker 测试指针跟踪的位移与速度计算
func TestPointerTracker(t *testing.T) {
	pt := NewPointerTracker()

	// 首次更新没有前一帧，速度为零
	pt.Update(100, 100, false)
	if pt.Speed() != 0 {
		t.Errorf("Speed() after first update = %v, want 0", pt.Speed())
	}

	pt.Update(103, 104, true)
	if dx, dy := pt.Velocity(); dx != 3 || dy != 4 {
		t.Errorf("Velocity() = (%v, %v), want (3, 4)", dx, dy)
	}
	if pt.Speed() != 5 {
		t.Errorf("Speed() = %v, want 5", pt.Speed())
	}
	if !pt.Pressed() {
		t.Error("Pressed() = false, want true")
	}

	// 静止指针速度归零
	pt.Update(103, 104, false)
	if pt.Speed() != 0 {
		t.Errorf("stationary Speed() = %v, want 0", pt.Speed())
	}
}
