// Package config 提供季节粒子参数与问候语的 YAML 配置加载。
// 所有区间参数使用 "min max" 字符串格式，加载时解析为 Range 并在
// 生成粒子时均匀随机采样。
package config

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range 表示一个 [Min, Max] 闭区间，用于粒子参数的随机采样。
type Range struct {
	Min float64
	Max float64
}

// ParseRange 解析区间字符串。
// 支持两种格式：
//   - 固定值: "1.5"      → Min=1.5, Max=1.5
//   - 区间值: "3.5 7.5"  → Min=3.5, Max=7.5
//
// 解析失败返回错误，调用方通常回退到内置默认值。
func ParseRange(s string) (Range, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
		}
		return Range{Min: v, Max: v}, nil
	case 2:
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return Range{}, fmt.Errorf("invalid range %q", s)
		}
		if hi < lo {
			lo, hi = hi, lo
		}
		return Range{Min: lo, Max: hi}, nil
	default:
		return Range{}, fmt.Errorf("invalid range %q: want 1 or 2 fields", s)
	}
}

// Sample 在区间内均匀随机采样一个值。
// Min >= Max 时直接返回 Min（退化为固定值）。
func (r Range) Sample() float64 {
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// UnmarshalYAML 实现 yaml.v3 的自定义解码，使 Range 可以直接
// 从 "min max" 字符串字段解码。
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RGB 表示 0-255 的三通道颜色，透明度由粒子自身的 opacity 决定。
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseRGB 解析 "r g b" 格式的颜色字符串。
func ParseRGB(s string) (RGB, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: want 3 fields", s)
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("invalid color channel %q in %q", f, s)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// UnmarshalYAML 实现 yaml.v3 的自定义解码。
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
