package engine

// ResizeDebounce 是窗口尺寸变化到真正应用之间的防抖时长（时间单位）。
// 拖拽调整窗口时会产生连续的中间尺寸，防抖避免每个中间值都触发
// 后备缓冲区重建。
const ResizeDebounce = 120.0

// SurfaceManager 维护绘制表面的逻辑尺寸与设备像素比。
// 后备缓冲区按 逻辑尺寸 × 设备像素比 分配，引擎其余部分只使用
// 逻辑坐标；缩放变换由宿主（ebiten 的 Layout/DeviceScaleFactor）承担。
type SurfaceManager struct {
	width  float64 // 逻辑宽
	height float64 // 逻辑高
	scale  float64 // 设备像素比

	pendingW float64
	pendingH float64
	deadline float64 // 防抖截止时刻（毫秒），<0 表示无待应用尺寸
}

// NewSurfaceManager 创建指定逻辑尺寸与设备像素比的表面管理器。
// scale <= 0 时按 1.0 处理。
func NewSurfaceManager(width, height, scale float64) *SurfaceManager {
	if scale <= 0 {
		scale = 1.0
	}
	return &SurfaceManager{
		width:    width,
		height:   height,
		scale:    scale,
		deadline: -1,
	}
}

// Size 返回当前逻辑尺寸。
func (sm *SurfaceManager) Size() (w, h float64) {
	return sm.width, sm.height
}

// Scale 返回设备像素比。
func (sm *SurfaceManager) Scale() float64 {
	return sm.scale
}

// BufferSize 返回后备缓冲区的像素尺寸（逻辑尺寸 × 设备像素比）。
func (sm *SurfaceManager) BufferSize() (w, h int) {
	return int(sm.width*sm.scale + 0.5), int(sm.height*sm.scale + 0.5)
}

// RequestResize 登记一次尺寸变化请求，防抖 ResizeDebounce 后生效。
// 连续请求会不断推迟截止时刻，只有最后一个尺寸会被应用。
// 与当前尺寸相同的请求被忽略（并清除未生效的请求）。
func (sm *SurfaceManager) RequestResize(width, height, now float64) {
	if width == sm.width && height == sm.height {
		sm.deadline = -1
		return
	}
	sm.pendingW = width
	sm.pendingH = height
	sm.deadline = now + ResizeDebounce
}

// ApplyPending 在防抖期满后提交尺寸变化。
// 返回 true 表示尺寸已更新，调用方应随即触发粒子 reflow。
func (sm *SurfaceManager) ApplyPending(now float64) bool {
	if sm.deadline < 0 || now < sm.deadline {
		return false
	}
	sm.width = sm.pendingW
	sm.height = sm.pendingH
	sm.deadline = -1
	return true
}
