package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ResourceManager 负责集中管理图片与字体资源。
// 对同一路径只解码一次，之后命中缓存。
//
// 线程安全：图片缓存以 RWMutex 保护 —— 装饰性资源（落叶图片）由
// 后台 goroutine 发射后不管地加载，会与主循环的同步加载并发访问缓存。
type ResourceManager struct {
	fsys fs.FS

	mu         sync.RWMutex
	imageCache map[string]*ebiten.Image

	fontSource *text.GoTextFaceSource // 可为 nil，回退到内置点阵字体
	fallback   text.Face
}

// NewResourceManager 创建资源管理器。
// fsys 通常是嵌入资源的根；构造时尝试从 assets/fonts/ 读取第一个
// TTF/OTF 作为矢量字体源，缺失时使用 basicfont 点阵字体回退（不是错误）。
func NewResourceManager(fsys fs.FS) *ResourceManager {
	rm := &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
		fallback:   text.NewGoXFace(basicfont.Face7x13),
	}
	rm.fontSource = loadFontSource(fsys)
	return rm
}

// loadFontSource 尝试加载 assets/fonts 下的第一个字体文件。
// 目录不存在或没有可解析的字体时返回 nil。
func loadFontSource(fsys fs.FS) *text.GoTextFaceSource {
	if fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(fsys, "assets/fonts")
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, "assets/fonts/"+e.Name())
		if err != nil {
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Printf("[ResourceManager] 警告：字体 %s 解析失败: %v", e.Name(), err)
			continue
		}
		log.Printf("[ResourceManager] 加载字体: %s", e.Name())
		return src
	}
	return nil
}

// LoadImage 加载并缓存一张图片。支持 PNG/JPEG。
// 可以从任意 goroutine 调用。
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	rm.mu.RLock()
	cached, ok := rm.imageCache[path]
	rm.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if rm.fsys == nil {
		return nil, fmt.Errorf("资源文件系统未初始化")
	}
	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("读取图片 %s 失败: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", path, err)
	}

	eimg := ebiten.NewImageFromImage(img)
	rm.mu.Lock()
	rm.imageCache[path] = eimg
	rm.mu.Unlock()
	return eimg, nil
}

// FontFace 返回指定字号的文字字体。
// 有矢量字体源时返回对应字号的字体；否则返回固定尺寸的点阵回退字体，
// 调用方按需用 GeoM 缩放到目标行高。
func (rm *ResourceManager) FontFace(size float64) text.Face {
	if rm.fontSource != nil {
		return &text.GoTextFace{Source: rm.fontSource, Size: size}
	}
	return rm.fallback
}
