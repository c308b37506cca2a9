package maths

import "math"

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// ImpedanceToGamma 阻抗转反射系数 Γ = (Z-Z0)/(Z+Z0)
func ImpedanceToGamma(z complex128, z0 float64) complex128 {
	den := z + complex(z0, 0)
	if NearZero(den) {
		return complex(Sentinel, 0)
	}
	return (z - complex(z0, 0)) / den
}

// GammaToImpedance 反射系数转阻抗 Z = Z0(1+Γ)/(1-Γ)
// Γ 接近 1 时返回开路哨兵。
func GammaToImpedance(gamma complex128, z0 float64) complex128 {
	den := 1 - gamma
	if NearZero(den) {
		return complex(Sentinel, 0)
	}
	return complex(z0, 0) * (1 + gamma) / den
}

// AdmittanceToGamma 导纳转反射系数 Γ = (Y0-Y)/(Y0+Y)
func AdmittanceToGamma(y complex128, y0 float64) complex128 {
	den := complex(y0, 0) + y
	if NearZero(den) {
		return complex(Sentinel, 0)
	}
	return (complex(y0, 0) - y) / den
}

// GammaToAdmittance 反射系数转导纳 Y = Y0(1-Γ)/(1+Γ)
// Γ 接近 -1 时返回短路哨兵。
func GammaToAdmittance(gamma complex128, y0 float64) complex128 {
	den := 1 + gamma
	if NearZero(den) {
		return complex(Sentinel, 0)
	}
	return complex(y0, 0) * (1 - gamma) / den
}

// NormalizedZToGamma 归一化阻抗转反射系数
func NormalizedZToGamma(zn complex128) complex128 {
	return ImpedanceToGamma(zn, 1)
}

// GammaToNormalizedZ 反射系数转归一化阻抗
func GammaToNormalizedZ(gamma complex128) complex128 {
	return GammaToImpedance(gamma, 1)
}

// InvertImmittance 阻抗导纳互换 1/v，v 接近零时返回哨兵
func InvertImmittance(v complex128) complex128 {
	if NearZero(v) {
		return complex(Sentinel, 0)
	}
	return 1 / v
}

// GammaToScreen 反射系数映射到屏幕坐标，屏幕 Y 轴向下
func GammaToScreen(gamma complex128, center Point, radius float64) Point {
	return Point{
		X: center.X + real(gamma)*radius,
		Y: center.Y - imag(gamma)*radius,
	}
}

// ScreenToGamma 屏幕坐标还原反射系数
func ScreenToGamma(p Point, center Point, radius float64) complex128 {
	if math.Abs(radius) < Epsilon {
		return 0
	}
	return complex((p.X-center.X)/radius, (center.Y-p.Y)/radius)
}

// PhaseDegrees 反射系数相角(度)
func PhaseDegrees(gamma complex128) float64 {
	return math.Atan2(imag(gamma), real(gamma)) * 180 / math.Pi
}

// InsideUnitCircle 是否位于单位圆内(含边界)
func InsideUnitCircle(gamma complex128) bool {
	return real(gamma)*real(gamma)+imag(gamma)*imag(gamma) <= 1
}
