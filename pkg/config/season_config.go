package config

import (
	"fmt"
	"io/fs"
	"log"

	"gopkg.in/yaml.v3"
)

// KindParams 描述一种粒子外观在某个季节下的生成参数。
// Weight 为该种类在季节内的生成权重（同一季节内权重之和应为 1.0，
// 加载时不强制校验，采样时按累计权重选择）。
type KindParams struct {
	Kind    string  `yaml:"kind"`
	Weight  float64 `yaml:"weight"`
	Radius  Range   `yaml:"radius"`
	VX      Range   `yaml:"vx"`
	VY      Range   `yaml:"vy"`
	Opacity Range   `yaml:"opacity"`
	Color   RGB     `yaml:"color"`
}

// SeasonParams 描述一个季节的粒子池容量与粒子种类分布。
// Flares 仅夏季有效，表示光晕数量区间。
type SeasonParams struct {
	Capacity int          `yaml:"capacity"`
	Flares   Range        `yaml:"flares"`
	Kinds    []KindParams `yaml:"kinds"`
}

// PickKind 按权重选择一个种类参数，roll 为 [0,1) 的随机数。
// Kinds 为空时返回 nil（调用方退化为最小默认粒子）。
func (sp *SeasonParams) PickKind(roll float64) *KindParams {
	if len(sp.Kinds) == 0 {
		return nil
	}
	acc := 0.0
	for i := range sp.Kinds {
		acc += sp.Kinds[i].Weight
		if roll < acc {
			return &sp.Kinds[i]
		}
	}
	// 权重之和小于 1 时的浮点残差落到最后一项
	return &sp.Kinds[len(sp.Kinds)-1]
}

// SeasonSet 是全部季节的参数集合，键为季节名（小写）。
type SeasonSet struct {
	Seasons map[string]*SeasonParams `yaml:"seasons"`
}

// Get 返回指定季节的参数。未知季节回退到 prewinter 参数集，
// 与引擎的静默降级语义一致。
func (ss *SeasonSet) Get(season string) *SeasonParams {
	if sp, ok := ss.Seasons[season]; ok {
		return sp
	}
	return ss.Seasons["prewinter"]
}

// DefaultSeasonSet 返回编译内置的季节参数，与 data/seasons.yaml 一致。
// 数据文件缺失或损坏时引擎仍可凭默认值正常工作。
func DefaultSeasonSet() *SeasonSet {
	mustRange := func(s string) Range {
		r, err := ParseRange(s)
		if err != nil {
			panic(fmt.Sprintf("config: bad builtin range %q: %v", s, err))
		}
		return r
	}
	mustRGB := func(s string) RGB {
		c, err := ParseRGB(s)
		if err != nil {
			panic(fmt.Sprintf("config: bad builtin color %q: %v", s, err))
		}
		return c
	}
	return &SeasonSet{Seasons: map[string]*SeasonParams{
		"spring": {
			Capacity: 110,
			Kinds: []KindParams{
				{Kind: "petal", Weight: 1.0,
					Radius: mustRange("3.5 7.5"), VX: mustRange("-0.28 0.35"),
					VY: mustRange("0.18 0.55"), Opacity: mustRange("0.55 0.95"),
					Color: mustRGB("255 170 200")},
			},
		},
		"summer": {
			Capacity: 100,
			Flares:   mustRange("2 3"),
			Kinds: []KindParams{
				{Kind: "leaf", Weight: 0.12,
					Radius: mustRange("6 12"), VX: mustRange("-0.2 0.2"),
					VY: mustRange("0.05 0.25"), Opacity: mustRange("0.5 0.85"),
					Color: mustRGB("196 148 60")},
				{Kind: "dust", Weight: 0.88,
					Radius: mustRange("0.8 2.8"), VX: mustRange("-0.08 0.08"),
					VY: mustRange("-0.02 0.18"), Opacity: mustRange("0.25 0.7"),
					Color: mustRGB("232 190 110")},
			},
		},
		"monsoon": {
			Capacity: 140,
			Kinds: []KindParams{
				{Kind: "rain", Weight: 1.0,
					Radius: mustRange("1.0 1.6"), VX: mustRange("-0.25 0.2"),
					VY: mustRange("0.65 1.4"), Opacity: mustRange("0.35 0.8"),
					Color: mustRGB("176 206 235")},
			},
		},
		"autumn": {
			Capacity: 120,
			Kinds: []KindParams{
				{Kind: "leaf", Weight: 1.0,
					Radius: mustRange("6 13"), VX: mustRange("-0.6 0.45"),
					VY: mustRange("0.25 0.7"), Opacity: mustRange("0.6 0.95"),
					Color: mustRGB("214 120 48")},
			},
		},
		"winter": {
			Capacity: 90,
			Kinds: []KindParams{
				{Kind: "ember", Weight: 0.12,
					Radius: mustRange("1.2 2.6"), VX: mustRange("-0.05 0.05"),
					VY: mustRange("-0.06 -0.02"), Opacity: mustRange("0.4 0.85"),
					Color: mustRGB("255 150 70")},
				{Kind: "snow", Weight: 0.88,
					Radius: mustRange("1.5 4.0"), VX: mustRange("-0.12 0.12"),
					VY: mustRange("0.08 0.32"), Opacity: mustRange("0.5 0.95"),
					Color: mustRGB("245 248 255")},
			},
		},
		"prewinter": {
			Capacity: 90,
			Kinds: []KindParams{
				{Kind: "mist", Weight: 0.25,
					Radius: mustRange("60 140"), VX: mustRange("0.01 0.05"),
					VY: mustRange("-0.01 0.01"), Opacity: mustRange("0.05 0.12"),
					Color: mustRGB("235 238 242")},
				{Kind: "dewdrop", Weight: 0.75,
					Radius: mustRange("1.4 3.6"), VX: mustRange("-0.06 0.06"),
					VY: mustRange("0.12 0.3"), Opacity: mustRange("0.4 0.85"),
					Color: mustRGB("228 236 244")},
			},
		},
	}}
}

// LoadSeasonSet 从嵌入文件系统加载季节参数配置。
//
// 加载策略：
//   - 文件缺失：记录日志并返回内置默认值（不是错误）
//   - 解析失败：返回错误（配置文件存在但损坏说明打包有问题）
//   - 文件中未出现的季节：用内置默认值补齐
func LoadSeasonSet(fsys fs.FS, path string) (*SeasonSet, error) {
	defaults := DefaultSeasonSet()

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("[Config] 季节配置 %s 不存在，使用内置默认值", path)
		return defaults, nil
	}

	var loaded SeasonSet
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("解析季节配置 %s 失败: %w", path, err)
	}

	// 用默认值补齐缺失的季节，丢弃未知季节名
	merged := &SeasonSet{Seasons: make(map[string]*SeasonParams)}
	for name, sp := range defaults.Seasons {
		merged.Seasons[name] = sp
	}
	for name, sp := range loaded.Seasons {
		if _, known := defaults.Seasons[name]; !known {
			log.Printf("[Config] 警告：忽略未知季节 %q", name)
			continue
		}
		if sp.Capacity <= 0 || len(sp.Kinds) == 0 {
			log.Printf("[Config] 警告：季节 %q 配置不完整，使用内置默认值", name)
			continue
		}
		merged.Seasons[name] = sp
	}
	return merged, nil
}
