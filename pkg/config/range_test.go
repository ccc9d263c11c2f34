package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseRange 测试区间字符串的两种格式
func TestParseRange(t *testing.T) {
	tests := []struct {
		input   string
		wantMin float64
		wantMax float64
		wantErr bool
	}{
		{"1.5", 1.5, 1.5, false},
		{"3.5 7.5", 3.5, 7.5, false},
		{"  0.18   0.55 ", 0.18, 0.55, false},
		{"-0.28 0.35", -0.28, 0.35, false},
		// 上下界颠倒时自动交换
		{"7.5 3.5", 3.5, 7.5, false},
		{"", 0, 0, true},
		{"a b", 0, 0, true},
		{"1 2 3", 0, 0, true},
	}

	for _, tt := range tests {
		r, err := ParseRange(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q): expected error, got %+v", tt.input, r)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if r.Min != tt.wantMin || r.Max != tt.wantMax {
			t.Errorf("ParseRange(%q): got [%v, %v], want [%v, %v]",
				tt.input, r.Min, r.Max, tt.wantMin, tt.wantMax)
		}
	}
}

// TestRangeSample 测试采样值始终落在区间内
func TestRangeSample(t *testing.T) {
	r := Range{Min: 3.5, Max: 7.5}
	for i := 0; i < 1000; i++ {
		v := r.Sample()
		if v < r.Min || v >= r.Max {
			t.Fatalf("Sample() = %v, want in [%v, %v)", v, r.Min, r.Max)
		}
	}

	// 退化区间返回固定值
	fixed := Range{Min: 2.0, Max: 2.0}
	if v := fixed.Sample(); v != 2.0 {
		t.Errorf("degenerate Sample() = %v, want 2.0", v)
	}
}

// TestParseRGB 测试颜色字符串解析
func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("255 170 200")
	if err != nil {
		t.Fatalf("ParseRGB() error: %v", err)
	}
	if c.R != 255 || c.G != 170 || c.B != 200 {
		t.Errorf("ParseRGB() = %+v, want {255 170 200}", c)
	}

	for _, bad := range []string{"", "255 170", "256 0 0", "-1 0 0", "a b c"} {
		if _, err := ParseRGB(bad); err == nil {
			t.Errorf("ParseRGB(%q): expected error", bad)
		}
	}
}

// TestRangeUnmarshalYAML 测试 Range 和 RGB 作为 YAML 字段解码
func TestRangeUnmarshalYAML(t *testing.T) {
	var kp KindParams
	doc := `
kind: petal
weight: 1.0
radius: "3.5 7.5"
vx: "-0.28 0.35"
vy: "0.18 0.55"
opacity: "0.55 0.95"
color: "255 170 200"
`
	if err := yaml.Unmarshal([]byte(doc), &kp); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}
	if kp.Kind != "petal" {
		t.Errorf("Kind = %q, want petal", kp.Kind)
	}
	if kp.Radius.Min != 3.5 || kp.Radius.Max != 7.5 {
		t.Errorf("Radius = %+v, want [3.5, 7.5]", kp.Radius)
	}
	if kp.VX.Min != -0.28 {
		t.Errorf("VX.Min = %v, want -0.28", kp.VX.Min)
	}
	if kp.Color != (RGB{R: 255, G: 170, B: 200}) {
		t.Errorf("Color = %+v, want {255 170 200}", kp.Color)
	}

	var bad KindParams
	if err := yaml.Unmarshal([]byte(`radius: "x y"`), &bad); err == nil {
		t.Error("expected error for malformed range field")
	}
}
