package types

import (
	"fmt"
	"math"
	"math/cmplx"

	"smith/maths"
)

// Impedance 阻抗 Z = R + jX，绑定参考阻抗 Z0
type Impedance struct {
	Value complex128
	Z0    float64
}

// NewImpedance 创建阻抗
func NewImpedance(r, x, z0 float64) Impedance {
	return Impedance{Value: complex(r, x), Z0: z0}
}

// Resistance 电阻(Ω)
func (z Impedance) Resistance() float64 { return real(z.Value) }

// Reactance 电抗(Ω)
func (z Impedance) Reactance() float64 { return imag(z.Value) }

// Normalized 归一化阻抗 z = Z/Z0
func (z Impedance) Normalized() complex128 { return z.Value / complex(z.Z0, 0) }

// Magnitude 模
func (z Impedance) Magnitude() float64 { return cmplx.Abs(z.Value) }

// Phase 相角(弧度)
func (z Impedance) Phase() float64 { return cmplx.Phase(z.Value) }

// PhaseDegrees 相角(度)
func (z Impedance) PhaseDegrees() float64 { return z.Phase() * 180 / math.Pi }

// Gamma 反射系数
func (z Impedance) Gamma() Reflection {
	return Reflection{Gamma: maths.ImpedanceToGamma(z.Value, z.Z0), Z0: z.Z0}
}

// Admittance 转导纳，阻抗为零时 ok 为 false 且数值为哨兵
func (z Impedance) Admittance() (Admittance, bool) {
	y := Admittance{Value: maths.InvertImmittance(z.Value), Y0: 1 / z.Z0}
	return y, !maths.NearZero(z.Value)
}

// String 格式化输出
func (z Impedance) String() string { return formatComplex(z.Value, "Ω") }

// NormalizedString 归一化格式输出
func (z Impedance) NormalizedString() string { return formatComplex(z.Normalized(), "") }

// Admittance 导纳 Y = G + jB，绑定参考导纳 Y0 = 1/Z0
type Admittance struct {
	Value complex128
	Y0    float64
}

// NewAdmittance 创建导纳
func NewAdmittance(g, b, y0 float64) Admittance {
	return Admittance{Value: complex(g, b), Y0: y0}
}

// Conductance 电导(S)
func (y Admittance) Conductance() float64 { return real(y.Value) }

// Susceptance 电纳(S)
func (y Admittance) Susceptance() float64 { return imag(y.Value) }

// Normalized 归一化导纳 y = Y/Y0
func (y Admittance) Normalized() complex128 { return y.Value / complex(y.Y0, 0) }

// Magnitude 模
func (y Admittance) Magnitude() float64 { return cmplx.Abs(y.Value) }

// Phase 相角(弧度)
func (y Admittance) Phase() float64 { return cmplx.Phase(y.Value) }

// Gamma 反射系数
func (y Admittance) Gamma() Reflection {
	return Reflection{Gamma: maths.AdmittanceToGamma(y.Value, y.Y0), Z0: 1 / y.Y0}
}

// Impedance 转阻抗，导纳为零时 ok 为 false 且数值为哨兵
func (y Admittance) Impedance() (Impedance, bool) {
	z := Impedance{Value: maths.InvertImmittance(y.Value), Z0: 1 / y.Y0}
	return z, !maths.NearZero(y.Value)
}

// String 格式化输出
func (y Admittance) String() string { return formatComplex(y.Value*1e3, "mS") }

// Reflection 反射系数 Γ，绑定参考阻抗 Z0
type Reflection struct {
	Gamma complex128
	Z0    float64
}

// Magnitude 模 |Γ|
func (r Reflection) Magnitude() float64 { return cmplx.Abs(r.Gamma) }

// Phase 相角(弧度)
func (r Reflection) Phase() float64 { return cmplx.Phase(r.Gamma) }

// PhaseDegrees 相角(度)
func (r Reflection) PhaseDegrees() float64 { return maths.PhaseDegrees(r.Gamma) }

// VSWR 驻波比
func (r Reflection) VSWR() float64 { return maths.VSWR(r.Magnitude()) }

// ReturnLoss 回波损耗(dB)
func (r Reflection) ReturnLoss() float64 { return maths.ReturnLoss(r.Gamma) }

// MismatchLoss 失配损耗(dB)
func (r Reflection) MismatchLoss() float64 { return maths.MismatchLoss(r.Gamma) }

// Passive 无源 |Γ| ≤ 1
func (r Reflection) Passive() bool { return maths.InsideUnitCircle(r.Gamma) }

// Impedance 转阻抗，Γ 接近 1 时 ok 为 false
func (r Reflection) Impedance() (Impedance, bool) {
	z := Impedance{Value: maths.GammaToImpedance(r.Gamma, r.Z0), Z0: r.Z0}
	return z, !maths.NearZero(1 - r.Gamma)
}

// Admittance 转导纳，Γ 接近 -1 时 ok 为 false
func (r Reflection) Admittance() (Admittance, bool) {
	y := Admittance{Value: maths.GammaToAdmittance(r.Gamma, 1/r.Z0), Y0: 1 / r.Z0}
	return y, !maths.NearZero(1 + r.Gamma)
}

// String 直角坐标格式
func (r Reflection) String() string { return formatComplex(r.Gamma, "") }

// PolarString 极坐标格式
func (r Reflection) PolarString() string {
	return fmt.Sprintf("%.4f ∠ %.2f°", r.Magnitude(), r.PhaseDegrees())
}

func formatComplex(v complex128, unit string) string {
	sign := "+"
	im := imag(v)
	if im < 0 {
		sign = "-"
		im = -im
	}
	s := fmt.Sprintf("%.4g %s j%.4g", real(v), sign, im)
	if unit != "" {
		s += " " + unit
	}
	return s
}
