package trace

import (
	"image/color"
	"slices"

	"smith/types"
)

// ArcKind 轨迹段所在的等值曲线
type ArcKind uint8

const (
	ConstantR ArcKind = iota // 等电阻圆，串联电抗元件
	ConstantX                // 等电抗圆弧，串联电阻
	ConstantG                // 等电导圆，并联电抗元件
	ConstantB                // 等电纳圆弧，并联电阻
)

// String 返回曲线类型的字符串表示
func (a ArcKind) String() string {
	switch a {
	case ConstantR:
		return "ConstantR"
	case ConstantX:
		return "ConstantX"
	case ConstantG:
		return "ConstantG"
	case ConstantB:
		return "ConstantB"
	default:
		return "Unknown"
	}
}

// Palette 轨迹段配色，按段序号循环使用
var Palette = []color.RGBA{
	{R: 0, G: 100, B: 200, A: 255},
	{R: 200, G: 50, B: 50, A: 255},
	{R: 50, G: 150, B: 50, A: 255},
	{R: 180, G: 100, B: 0, A: 255},
	{R: 128, G: 0, B: 128, A: 255},
	{R: 0, G: 150, B: 150, A: 255},
	{R: 200, G: 150, B: 0, A: 255},
	{R: 100, G: 100, B: 100, A: 255},
}

// Point 轨迹采样点
type Point struct {
	Gamma     complex128 // 反射系数
	Impedance complex128 // 阻抗(Ω)
	Frequency float64    // 频率(Hz)
}

// Segment 一个元件产生的轨迹段
type Segment struct {
	Points     []Point
	Arc        ArcKind
	Component  types.ComponentValue
	Connection types.Connection
	Label      string
	Color      int // Palette 索引
}

// Start 起点，空段返回零值
func (s Segment) Start() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[0]
}

// End 终点，空段返回零值
func (s Segment) End() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[len(s.Points)-1]
}

// RGBA 段颜色
func (s Segment) RGBA() color.RGBA { return Palette[s.Color%len(Palette)] }

// Element 对应的匹配元件
func (s Segment) Element() types.MatchingElement {
	return types.MatchingElement{
		ComponentValue: s.Component,
		Connection:     s.Connection,
		Label:          s.Label,
	}
}

// clone 深拷贝采样点
func (s Segment) clone() Segment {
	s.Points = slices.Clone(s.Points)
	return s
}
