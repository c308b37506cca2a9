package matching

import (
	"math"

	"smith/element"
	"smith/maths"
	"smith/types"
)

// SpeedOfLight 传输线相速度(m/s)
const SpeedOfLight = 3e8

// Wavelength 波长 λ = c/f
func Wavelength(freq float64) float64 { return SpeedOfLight / freq }

// Apply 在阻抗 z 的源侧接入一个元件，返回新的输入阻抗
func Apply(z complex128, e types.MatchingElement) complex128 {
	if e.Kind.Distributed() {
		return applyDistributed(z, e)
	}
	face, ok := element.GetElement(e.Kind)
	if !ok {
		return z
	}
	switch e.Connection {
	case types.Series:
		return z + face.SeriesDelta(e.Value, e.Frequency)
	case types.Shunt:
		y := maths.InvertImmittance(z) + face.ShuntDelta(e.Value, e.Frequency)
		return maths.InvertImmittance(y)
	default:
		return z
	}
}

func applyDistributed(z complex128, e types.MatchingElement) complex128 {
	if e.LineZ0 < maths.Epsilon {
		return z
	}
	bl := 2 * math.Pi * e.Frequency / SpeedOfLight * e.Value
	z0 := complex(e.LineZ0, 0)
	switch e.Kind {
	case types.KindTransmissionLine:
		// Zin = Z0 (ZL cosβl + jZ0 sinβl)/(Z0 cosβl + jZL sinβl)
		cos, sin := complex(math.Cos(bl), 0), complex(0, math.Sin(bl))
		den := z0*cos + sin*z
		if maths.NearZero(den) {
			return complex(maths.Sentinel, 0)
		}
		return z0 * (z*cos + sin*z0) / den
	case types.KindOpenStub:
		// Y = j tanβl / Z0
		return attachStub(z, complex(0, math.Tan(bl)/e.LineZ0), e.Connection)
	case types.KindShortStub:
		// Y = -j cotβl / Z0
		t := math.Tan(bl)
		if math.Abs(t) < maths.Epsilon {
			return attachStub(z, complex(0, -maths.Sentinel), e.Connection)
		}
		return attachStub(z, complex(0, -1/(e.LineZ0*t)), e.Connection)
	default:
		return z
	}
}

// attachStub 接入输入导纳为 y 的枝节
func attachStub(z, y complex128, conn types.Connection) complex128 {
	if conn == types.Series {
		return z + maths.InvertImmittance(y)
	}
	return maths.InvertImmittance(maths.InvertImmittance(z) + y)
}
