package maths

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// TestGammaRoundTrip 阻抗与反射系数往返换算
func TestGammaRoundTrip(t *testing.T) {
	for _, z := range []complex128{
		50, 25, 100 + 50i, 75 - 30i, 1 + 1i, 1000 - 900i, 0.5 + 0.01i,
	} {
		gamma := ImpedanceToGamma(z, 50)
		back := GammaToImpedance(gamma, 50)
		assert.Truef(t, cscalar.EqualWithinAbsOrRel(z, back, 1e-9, 1e-9), "Z=%v 往返得到 %v", z, back)

		y := 1 / z
		gy := AdmittanceToGamma(y, 1.0/50)
		assert.Truef(t, cscalar.EqualWithinAbsOrRel(gamma, gy, 1e-12, 1e-12), "导纳路径 Γ=%v 期望 %v", gy, gamma)
		assert.Truef(t, cscalar.EqualWithinAbsOrRel(y, GammaToAdmittance(gamma, 1.0/50), 1e-12, 1e-9), "导纳往返失败 %v", y)

		zn := z / 50
		assert.Truef(t, cscalar.EqualWithinAbs(gamma, NormalizedZToGamma(zn), 1e-12), "归一化 Γ 不一致")
		assert.Truef(t, cscalar.EqualWithinAbsOrRel(zn, GammaToNormalizedZ(gamma), 1e-9, 1e-9), "归一化往返失败")
	}
}

// TestGammaSentinel 退化点返回哨兵而不是 Inf
func TestGammaSentinel(t *testing.T) {
	assert.Equal(t, complex(Sentinel, 0), GammaToImpedance(1, 50))
	assert.Equal(t, complex(Sentinel, 0), GammaToAdmittance(-1, 0.02))
	assert.Equal(t, complex(Sentinel, 0), InvertImmittance(0))
	assert.Equal(t, complex(Sentinel, 0), ImpedanceToGamma(-50, 50))
	assert.True(t, Finite(GammaToNormalizedZ(1)))
	assert.Equal(t, complex128(0.5-0.5i), InvertImmittance(1+1i))
}

// TestScreenMapping 屏幕映射可逆且 Y 轴向下
func TestScreenMapping(t *testing.T) {
	center := Point{X: 200, Y: 150}
	p := GammaToScreen(0.5+0.25i, center, 100)
	assert.InDelta(t, 250, p.X, 1e-12)
	assert.InDelta(t, 125, p.Y, 1e-12)

	for _, g := range []complex128{0, 1, -1i, 0.3 - 0.7i} {
		back := ScreenToGamma(GammaToScreen(g, center, 80), center, 80)
		assert.True(t, cscalar.EqualWithinAbs(g, back, 1e-12), "屏幕往返 %v -> %v", g, back)
	}
	assert.Equal(t, complex128(0), ScreenToGamma(p, center, 0))
}

// TestConcreteLoad 75+j50 负载的各项指标
func TestConcreteLoad(t *testing.T) {
	gamma := ImpedanceToGamma(75+50i, 50)
	assert.InDelta(t, 0.310345, real(gamma), 1e-6)
	assert.InDelta(t, 0.275862, imag(gamma), 1e-6)
	assert.InDelta(t, 0.415227, cmplx.Abs(gamma), 1e-6)
	assert.InDelta(t, 2.420133, VSWR(cmplx.Abs(gamma)), 1e-6)
	assert.InDelta(t, -7.634280, ReturnLoss(gamma), 1e-6)
	assert.InDelta(t, -0.821868, MismatchLoss(gamma), 1e-6)
	assert.InDelta(t, 41.633539, PhaseDegrees(gamma), 1e-6)
	assert.True(t, InsideUnitCircle(gamma))
	assert.False(t, InsideUnitCircle(1.01))
}

// TestVSWR 驻波比单调递增及边界
func TestVSWR(t *testing.T) {
	prev := VSWR(0)
	assert.Equal(t, 1.0, prev)
	for mag := 0.01; mag < 1; mag += 0.01 {
		s := VSWR(mag)
		require.Greater(t, s, prev, "|Γ|=%v 驻波比未递增", mag)
		prev = s
		assert.InDelta(t, mag, VSWRToGamma(s), 1e-9)
	}
	assert.Equal(t, VSWRSentinel, VSWR(1))
	assert.Equal(t, VSWRSentinel, VSWR(3))
	assert.Equal(t, 1.0, VSWR(-0.5))
	assert.Equal(t, 0.0, VSWRToGamma(0.2))
}

// TestLossFloors 回波损耗与失配损耗
func TestLossFloors(t *testing.T) {
	for i := 0; i < 20; i++ {
		g := cmplx.Rect(float64(i)/20, 0.7)
		assert.LessOrEqual(t, ReturnLoss(g), 0.0)
	}
	assert.Equal(t, ReturnLossFloor, ReturnLoss(0))
	assert.InDelta(t, -6.0206, ReturnLoss(0.5), 1e-4)
	assert.Equal(t, MismatchFloor, MismatchLoss(1))
	assert.Equal(t, 0.0, MismatchLoss(0))
}

// TestAbs 泛型绝对值
func TestAbs(t *testing.T) {
	assert.Equal(t, 3.0, Abs(float32(-3)))
	assert.Equal(t, 5.0, Abs(complex(3.0, 4.0)))
	assert.True(t, NearZero(1e-13))
	assert.False(t, NearZero(complex(0, 1e-6)))
	assert.False(t, Finite(cmplx.Inf()))
	assert.False(t, Finite(complex(math.NaN(), 0)))
}
