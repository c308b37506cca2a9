// Package debug 轨迹记录与圆图输出
//
// Record 保存匹配轨迹的快照，可输出 JSON、go-echarts 网页或 PNG 图片。
package debug

import (
	"encoding/json"
	"fmt"
	"io"

	"smith/trace"
)

// SegmentRecord 一段轨迹
type SegmentRecord struct {
	Label     string       // 元件标签
	Arc       string       // 等值曲线
	Color     string       // #rrggbb
	Gamma     [][2]float64 // 反射系数 [实部,虚部]
	Impedance [][2]float64 // 阻抗 [R,X]
}

// Record 记录轨迹状态
type Record struct {
	Z0        float64
	Frequency float64
	Source    [2]float64
	Load      [2]float64
	Current   [2]float64
	Segments  []SegmentRecord
	QCircles  []float64
	Measured  [][2]float64 // 测量 S11 轨迹
}

// Update 记录轨迹快照
func (list *Record) Update(t *trace.MatchingTrace) {
	list.Z0 = t.Z0()
	list.Frequency = t.Frequency()
	list.Source = pair(t.Source())
	list.Load = pair(t.Load())
	list.Current = pair(t.CurrentImpedance())

	segs := t.Segments()
	list.Segments = make([]SegmentRecord, len(segs))
	for i, s := range segs {
		c := s.RGBA()
		rec := SegmentRecord{
			Label:     s.Label,
			Arc:       s.Arc.String(),
			Color:     fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			Gamma:     make([][2]float64, len(s.Points)),
			Impedance: make([][2]float64, len(s.Points)),
		}
		for j, p := range s.Points {
			rec.Gamma[j] = pair(p.Gamma)
			rec.Impedance[j] = pair(p.Impedance)
		}
		list.Segments[i] = rec
	}

	list.QCircles = list.QCircles[:0]
	for _, q := range t.QCircles() {
		list.QCircles = append(list.QCircles, q.Q)
	}
}

// AddMeasured 记录测量数据轨迹
func (list *Record) AddMeasured(points []trace.Point) {
	for _, p := range points {
		list.Measured = append(list.Measured, pair(p.Gamma))
	}
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func pair(v complex128) [2]float64 { return [2]float64{real(v), imag(v)} }
