// Package maths 史密斯圆图坐标引擎
//
// 反射系数平面与阻抗、导纳平面之间的换算，等R/X/G/B圆几何，
// Q值圆以及驻波比、回波损耗等标量指标。所有函数均为全函数，
// 退化输入返回哨兵值而不是 NaN 或 Inf。
package maths

import (
	"math"
	"math/cmplx"
)

// 浮点精度阈值与哨兵值
const (
	Epsilon         = 1e-12  // 除零保护阈值
	Sentinel        = 1e12   // 无穷大阻抗/导纳及退化圆的哨兵
	VSWRSentinel    = 1e6    // 全反射时的驻波比
	ReturnLossFloor = -200.0 // 零反射时的回波损耗(dB)
	MismatchFloor   = -100.0 // 全反射时的失配损耗(dB)
)

// Number 是一个约束，允许任何浮点或复数类型
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// NearZero 判断数值是否低于除零保护阈值
func NearZero[T Number](v T) bool { return Abs(v) < Epsilon }

// Finite 判断复数实部虚部均为有限值
func Finite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}
