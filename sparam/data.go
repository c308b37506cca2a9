// Package sparam S 参数测量数据
//
// 只保存调用方提供的频点，不解析文件。按频率查找与插值，
// 并把 S11 转换为可与匹配轨迹同图显示的采样点。
package sparam

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"smith/maths"
	"smith/trace"
)

// ErrIndexOutOfRange 频点索引越界
var ErrIndexOutOfRange = errors.New("频点索引越界")

// PortCount 端口数
type PortCount uint8

const (
	OnePort PortCount = 1
	TwoPort PortCount = 2
)

// Point 一个频点的 S 参数
type Point struct {
	Frequency float64 // Hz
	S11       complex128
	S21       complex128
	S12       complex128
	S22       complex128
}

// Data S 参数数据集
type Data struct {
	Z0     float64 // 参考阻抗(Ω)
	Ports  PortCount
	Name   string
	points []Point
}

// New 创建数据集
func New(z0 float64, ports PortCount) *Data {
	return &Data{Z0: z0, Ports: ports}
}

// Add 追加频点
func (d *Data) Add(points ...Point) { d.points = append(d.points, points...) }

// Sort 按频率升序排列
func (d *Data) Sort() {
	slices.SortStableFunc(d.points, func(a, b Point) int { return cmp.Compare(a.Frequency, b.Frequency) })
}

// Len 频点数量
func (d *Data) Len() int { return len(d.points) }

// Empty 是否为空
func (d *Data) Empty() bool { return len(d.points) == 0 }

// Clear 清空频点
func (d *Data) Clear() { d.points = nil }

// Point 第 i 个频点
func (d *Data) Point(i int) (Point, error) {
	if i < 0 || i >= len(d.points) {
		return Point{}, fmt.Errorf("%w: %d (共 %d 点)", ErrIndexOutOfRange, i, len(d.points))
	}
	return d.points[i], nil
}

// Points 全部频点副本
func (d *Data) Points() []Point { return slices.Clone(d.points) }

// MinFrequency 最低频率，无数据时为零
func (d *Data) MinFrequency() float64 {
	if len(d.points) == 0 {
		return 0
	}
	return slices.MinFunc(d.points, func(a, b Point) int { return cmp.Compare(a.Frequency, b.Frequency) }).Frequency
}

// MaxFrequency 最高频率，无数据时为零
func (d *Data) MaxFrequency() float64 {
	if len(d.points) == 0 {
		return 0
	}
	return slices.MaxFunc(d.points, func(a, b Point) int { return cmp.Compare(a.Frequency, b.Frequency) }).Frequency
}

// Frequencies 频率列
func (d *Data) Frequencies() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.Frequency
	}
	return out
}

// S11 S11 列
func (d *Data) S11() []complex128 {
	out := make([]complex128, len(d.points))
	for i, p := range d.points {
		out[i] = p.S11
	}
	return out
}

// ClosestIndex 频率最接近 freq 的频点索引，无数据时为 -1
func (d *Data) ClosestIndex(freq float64) int {
	if len(d.points) == 0 {
		return -1
	}
	closest, minDiff := 0, math.Abs(d.points[0].Frequency-freq)
	for i := 1; i < len(d.points); i++ {
		if diff := math.Abs(d.points[i].Frequency - freq); diff < minDiff {
			closest, minDiff = i, diff
		}
	}
	return closest
}

// S11At 按频率线性插值 S11，超出范围取端点值
// 要求数据已按频率排序，无数据时 ok 为 false。
func (d *Data) S11At(freq float64) (complex128, bool) {
	n := len(d.points)
	switch {
	case n == 0:
		return 0, false
	case freq <= d.points[0].Frequency:
		return d.points[0].S11, true
	case freq >= d.points[n-1].Frequency:
		return d.points[n-1].S11, true
	}
	i := sort.Search(n, func(i int) bool { return d.points[i].Frequency >= freq })
	lo, hi := d.points[i-1], d.points[i]
	span := hi.Frequency - lo.Frequency
	if span < maths.Epsilon {
		return lo.S11, true
	}
	t := (freq - lo.Frequency) / span
	return lo.S11 + complex(t, 0)*(hi.S11-lo.S11), true
}

// S21At 最近频点的 S21
func (d *Data) S21At(freq float64) complex128 { return d.closest(freq).S21 }

// S12At 最近频点的 S12
func (d *Data) S12At(freq float64) complex128 { return d.closest(freq).S12 }

// S22At 最近频点的 S22
func (d *Data) S22At(freq float64) complex128 { return d.closest(freq).S22 }

func (d *Data) closest(freq float64) Point {
	if i := d.ClosestIndex(freq); i >= 0 {
		return d.points[i]
	}
	return Point{}
}

// Trace S11 转换为轨迹采样点，阻抗按数据集参考阻抗换算
// 反射系数按 z0 重新归一化后保存。
func (d *Data) Trace(z0 float64) []trace.Point {
	out := make([]trace.Point, len(d.points))
	for i, p := range d.points {
		z := maths.GammaToImpedance(p.S11, d.Z0)
		out[i] = trace.Point{
			Gamma:     maths.ImpedanceToGamma(z, z0),
			Impedance: z,
			Frequency: p.Frequency,
		}
	}
	return out
}
