package engine

// Season 定义仪表盘的主题季节。
// 同一时刻只有一个季节处于激活状态，切换季节会完整重建粒子池。
type Season int

const (
	// SeasonSpring 春：飘落的花瓣
	SeasonSpring Season = iota
	// SeasonSummer 夏：光尘与偶尔的落叶，带光晕效果
	SeasonSummer
	// SeasonMonsoon 雨季：雨线与触底涟漪
	SeasonMonsoon
	// SeasonAutumn 秋：旋转落叶
	SeasonAutumn
	// SeasonWinter 冬：雪花与上升的火星
	SeasonWinter
	// SeasonPrewinter 初冬：薄雾与露珠（未知季节的回退默认值）
	SeasonPrewinter
)

// String 返回季节的配置键名（小写，区分大小写）。
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonMonsoon:
		return "monsoon"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "prewinter"
	}
}

// ParseSeason 解析季节名（区分大小写）。
// 未知输入回退到 SeasonPrewinter，不报错 —— 引擎的所有错误都静默降级。
func ParseSeason(name string) Season {
	switch name {
	case "spring":
		return SeasonSpring
	case "summer":
		return SeasonSummer
	case "monsoon":
		return SeasonMonsoon
	case "autumn":
		return SeasonAutumn
	case "winter":
		return SeasonWinter
	default:
		return SeasonPrewinter
	}
}

// AllSeasons 按固定顺序列出全部季节，用于设置面板与预览工具。
func AllSeasons() []Season {
	return []Season{
		SeasonSpring, SeasonSummer, SeasonMonsoon,
		SeasonAutumn, SeasonWinter, SeasonPrewinter,
	}
}
