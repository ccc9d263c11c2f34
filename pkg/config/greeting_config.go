package config

import (
	"fmt"
	"io/fs"
	"log"

	"gopkg.in/yaml.v3"
)

// GreetingEntry 将一个小时区间映射到一条问候语。
// Hours 为左闭右开区间 [From, To)，跨午夜的区间在配置里拆成两段。
type GreetingEntry struct {
	Hours Range  `yaml:"hours"`
	Text  string `yaml:"text"`
}

// GreetingConfig 保存按时段排列的问候语列表。
type GreetingConfig struct {
	Greetings []GreetingEntry `yaml:"greetings"`
}

// TextForHour 返回给定小时（0-23）对应的问候语。
// 没有匹配区间时返回默认问候语。
func (gc *GreetingConfig) TextForHour(hour int) string {
	for _, e := range gc.Greetings {
		if float64(hour) >= e.Hours.Min && float64(hour) < e.Hours.Max {
			return e.Text
		}
	}
	return "Hello"
}

// DefaultGreetingConfig 返回内置问候语，与 data/greetings.yaml 一致。
func DefaultGreetingConfig() *GreetingConfig {
	return &GreetingConfig{Greetings: []GreetingEntry{
		{Hours: Range{Min: 5, Max: 12}, Text: "Good morning"},
		{Hours: Range{Min: 12, Max: 17}, Text: "Good afternoon"},
		{Hours: Range{Min: 17, Max: 22}, Text: "Good evening"},
		{Hours: Range{Min: 22, Max: 24}, Text: "Good night"},
		{Hours: Range{Min: 0, Max: 5}, Text: "Good night"},
	}}
}

// LoadGreetingConfig 从嵌入文件系统加载问候语配置。
// 文件缺失时返回内置默认值，解析失败返回错误。
func LoadGreetingConfig(fsys fs.FS, path string) (*GreetingConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("[Config] 问候语配置 %s 不存在，使用内置默认值", path)
		return DefaultGreetingConfig(), nil
	}

	var loaded GreetingConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("解析问候语配置 %s 失败: %w", path, err)
	}
	if len(loaded.Greetings) == 0 {
		return DefaultGreetingConfig(), nil
	}
	return &loaded, nil
}
