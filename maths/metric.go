package maths

import "math"

// VSWR 驻波比 (1+|Γ|)/(1-|Γ|)，|Γ|≥1 时返回哨兵
func VSWR(mag float64) float64 {
	if mag < 0 {
		mag = 0
	}
	if mag >= 1 {
		return VSWRSentinel
	}
	return (1 + mag) / (1 - mag)
}

// VSWRToGamma 驻波比转反射系数模 (s-1)/(s+1)
func VSWRToGamma(s float64) float64 {
	if s < 1 {
		s = 1
	}
	return (s - 1) / (s + 1)
}

// ReturnLoss 回波损耗 20·log10|Γ| (dB)，恒不大于零
func ReturnLoss(gamma complex128) float64 {
	mag := Abs(gamma)
	if mag < Epsilon {
		return ReturnLossFloor
	}
	return 20 * math.Log10(mag)
}

// MismatchLoss 失配损耗 10·log10(1-|Γ|²) (dB)
func MismatchLoss(gamma complex128) float64 {
	mag := Abs(gamma)
	if mag >= 1 {
		return MismatchFloor
	}
	return 10 * math.Log10(1-mag*mag)
}
