package types

import (
	"fmt"
	"math"
)

// ComponentValue 元件值，数值为基本单位 Ω/H/F/m
type ComponentValue struct {
	Kind      ComponentKind
	Value     float64
	Frequency float64 // 计算该值时的频率(Hz)
}

// IsNone 是否无需元件
func (c ComponentValue) IsNone() bool { return c.Kind == KindNone }

// Scaled 按工程前缀缩放后的数值与前缀
func (c ComponentValue) Scaled() (float64, string) { return ScaleSI(c.Value) }

// String 格式化输出 如 "12.35 nH"
func (c ComponentValue) String() string {
	if c.IsNone() {
		return "None"
	}
	return FormatSI(c.Value, c.Kind.Unit(), 2)
}

// MatchingElement 匹配网络中的一个元件
type MatchingElement struct {
	ComponentValue
	Connection Connection
	LineZ0     float64 // 分布参数元件特征阻抗，集总元件为零
	Label      string
}

// String 格式化输出
func (e MatchingElement) String() string {
	s := fmt.Sprintf("%s %s %s", e.Connection, e.Kind, e.ComponentValue)
	if e.Kind.Distributed() {
		s += fmt.Sprintf(" (Z0 = %.2f Ω)", e.LineZ0)
	}
	return s
}

// siPrefix 工程前缀，按指数从大到小
var siPrefix = []struct {
	Exp    int
	Prefix string
}{
	{12, "T"}, {9, "G"}, {6, "M"}, {3, "k"}, {0, ""},
	{-3, "m"}, {-6, "µ"}, {-9, "n"}, {-12, "p"}, {-15, "f"},
}

// ScaleSI 选择使数值落在 [1,1000) 的工程前缀
func ScaleSI(v float64) (float64, string) {
	mag := math.Abs(v)
	if mag == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v, ""
	}
	for _, p := range siPrefix {
		scale := math.Pow10(p.Exp)
		if mag >= scale {
			return v / scale, p.Prefix
		}
	}
	last := siPrefix[len(siPrefix)-1]
	return v / math.Pow10(last.Exp), last.Prefix
}

// FormatSI 带工程前缀和单位的字符串
func FormatSI(v float64, unit string, prec int) string {
	scaled, prefix := ScaleSI(v)
	return fmt.Sprintf("%.*f %s%s", prec, scaled, prefix, unit)
}
