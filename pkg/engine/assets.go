package engine

import (
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/seasonscape/pkg/game"
)

// ImageSlot 是一个只写一次的可选图片格子。
// 后台加载任务成功后写入一次，渲染器每帧无阻塞地读取；
// 加载失败或尚未完成时读到 nil，渲染器退化为程序化形状。
type ImageSlot struct {
	img atomic.Pointer[ebiten.Image]
}

// Get 返回已加载的图片，未加载或加载失败时返回 nil。
func (s *ImageSlot) Get() *ebiten.Image {
	return s.img.Load()
}

// LoadFrom 发射后不管地在后台加载图片。
// 失败只记录日志，不重试 —— 装饰性资源缺失不是错误。
func (s *ImageSlot) LoadFrom(rm *game.ResourceManager, path string) {
	if rm == nil {
		return
	}
	go func() {
		img, err := rm.LoadImage(path)
		if err != nil {
			log.Printf("[Engine] 装饰图片 %s 不可用，使用程序化形状: %v", path, err)
			return
		}
		s.img.Store(img)
	}()
}
