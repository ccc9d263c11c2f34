// Package app 提供仪表盘应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动窗口。
package app

import (
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/seasonscape/pkg/config"
	"github.com/gonewx/seasonscape/pkg/engine"
	"github.com/gonewx/seasonscape/pkg/game"
	"github.com/gonewx/seasonscape/pkg/scenes"
)

const (
	// DefaultWindowWidth 默认窗口逻辑宽度
	DefaultWindowWidth = 960
	// DefaultWindowHeight 默认窗口逻辑高度
	DefaultWindowHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Season 指定启动季节（如 "monsoon"），为空则使用存档，存档也没有则用 prewinter
	Season string
	// ReducedMotion 强制减弱动画模式（相当于系统级无障碍开关）
	ReducedMotion bool
	// AssetsFS 嵌入的美术资源
	AssetsFS fs.FS
	// DataFS 嵌入的数据配置（季节参数、问候语）
	DataFS fs.FS
}

// layoutAware 由需要感知窗口尺寸变化的场景实现。
type layoutAware interface {
	NotifyLayout(w, h float64)
}

// App 是仪表盘应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	lastOutsideW             int
	lastOutsideH             int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化仪表盘应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 设置持久化：打开失败降级为仅内存（不影响运行）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "seasonscape"})
	if err != nil {
		log.Printf("[App] 打开设置存储失败，设置不会持久化: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] 加载设置失败，使用默认值: %v", err)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager(cfg.AssetsFS)

	// 加载季节参数与问候语配置
	seasonSet, err := config.LoadSeasonSet(cfg.DataFS, "data/seasons.yaml")
	if err != nil {
		return nil, fmt.Errorf("季节配置加载失败: %w", err)
	}
	greetings, err := config.LoadGreetingConfig(cfg.DataFS, "data/greetings.yaml")
	if err != nil {
		return nil, fmt.Errorf("问候语配置加载失败: %w", err)
	}

	// 确定启动季节：命令行参数优先于存档
	seasonName := cfg.Season
	if seasonName == "" {
		seasonName = settingsManager.Settings().Season
	}
	season := engine.ParseSeason(seasonName)
	log.Printf("[App] Starting season: %s", season)

	// 减弱动画在构造时一次性确定，运行期间不再改变
	reducedMotion := cfg.ReducedMotion || settingsManager.Settings().ReducedMotion

	eng := engine.New(engine.Options{
		Seasons:       seasonSet,
		Season:        season,
		Width:         DefaultWindowWidth,
		Height:        DefaultWindowHeight,
		Scale:         ebiten.Monitor().DeviceScaleFactor(),
		ReducedMotion: reducedMotion,
		Resources:     resourceManager,
	})

	// 创建场景管理器并进入仪表盘
	sceneManager := game.NewSceneManager()
	dashboard := scenes.NewDashboardScene(eng, settingsManager, resourceManager, greetings)
	sceneManager.SwitchTo(dashboard)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		lastOutsideW: DefaultWindowWidth,
		lastOutsideH: DefaultWindowHeight,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭前保存设置
	if ebiten.IsWindowBeingClosed() {
		if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
			s.SaveOnExit()
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 仪表盘随窗口缩放，逻辑尺寸直接跟随外部尺寸，变化时通知场景。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.lastOutsideW || outsideHeight != a.lastOutsideH {
		a.lastOutsideW = outsideWidth
		a.lastOutsideH = outsideHeight
		if s, ok := a.sceneManager.GetCurrentScene().(layoutAware); ok {
			s.NotifyLayout(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
