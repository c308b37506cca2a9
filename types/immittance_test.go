package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs/cscalar"

	"smith/maths"
)

// TestImpedanceChain 阻抗→导纳→反射系数→阻抗
func TestImpedanceChain(t *testing.T) {
	z := NewImpedance(75, 50, 50)
	assert.Equal(t, complex(1.5, 1), z.Normalized())
	assert.Equal(t, 75.0, z.Resistance())
	assert.Equal(t, 50.0, z.Reactance())

	y, ok := z.Admittance()
	require.True(t, ok)
	assert.InDelta(t, 0.02, y.Y0, 1e-15)
	assert.True(t, cscalar.EqualWithinAbs(1/z.Value, y.Value, 1e-15))

	// 导纳与阻抗给出同一个反射系数
	assert.True(t, cscalar.EqualWithinAbs(z.Gamma().Gamma, y.Gamma().Gamma, 1e-12))

	back, ok := z.Gamma().Impedance()
	require.True(t, ok)
	assert.True(t, cscalar.EqualWithinAbsOrRel(z.Value, back.Value, 1e-9, 1e-9))
	assert.Equal(t, z.Z0, back.Z0)

	zz, ok := y.Impedance()
	require.True(t, ok)
	assert.True(t, cscalar.EqualWithinAbsOrRel(z.Value, zz.Value, 1e-9, 1e-9))
}

// TestDegenerateConversions 无有限逆时 ok 为 false
func TestDegenerateConversions(t *testing.T) {
	_, ok := NewImpedance(0, 0, 50).Admittance()
	assert.False(t, ok)

	z, ok := Reflection{Gamma: 1, Z0: 50}.Impedance()
	assert.False(t, ok)
	assert.Equal(t, complex(maths.Sentinel, 0), z.Value)

	_, ok = Reflection{Gamma: -1, Z0: 50}.Admittance()
	assert.False(t, ok)

	_, ok = NewAdmittance(0, 0, 0.02).Impedance()
	assert.False(t, ok)
}

// TestReflectionMetrics 反射系数派生指标
func TestReflectionMetrics(t *testing.T) {
	r := NewImpedance(75, 50, 50).Gamma()
	assert.InDelta(t, 0.415227, r.Magnitude(), 1e-6)
	assert.InDelta(t, 2.420133, r.VSWR(), 1e-6)
	assert.InDelta(t, -7.634280, r.ReturnLoss(), 1e-6)
	assert.True(t, r.Passive())
	assert.False(t, Reflection{Gamma: 1.2, Z0: 50}.Passive())
	assert.Equal(t, "0.3103 + j0.2759", r.String())
	assert.Equal(t, "0.4152 ∠ 41.63°", r.PolarString())
	assert.Equal(t, "75 + j50 Ω", NewImpedance(75, 50, 50).String())
	assert.Equal(t, "1.5 - j0.4", NewImpedance(75, -20, 50).NormalizedString())
}

// TestComponentFormat 元件值工程前缀格式化
func TestComponentFormat(t *testing.T) {
	cases := []struct {
		value ComponentValue
		want  string
	}{
		{ComponentValue{Kind: KindInductor, Value: 12.346e-9}, "12.35 nH"},
		{ComponentValue{Kind: KindCapacitor, Value: 1.5e-12}, "1.50 pF"},
		{ComponentValue{Kind: KindResistor, Value: 4700}, "4.70 kΩ"},
		{ComponentValue{Kind: KindOpenStub, Value: 0.0375}, "37.50 mm"},
		{ComponentValue{Kind: KindNone}, "None"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.value.String())
	}

	v, prefix := ScaleSI(3.3e-6)
	assert.InDelta(t, 3.3, v, 1e-12)
	assert.Equal(t, "µ", prefix)
	v, prefix = ScaleSI(0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "", prefix)
}

// TestComponentKind 类型名称与符号
func TestComponentKind(t *testing.T) {
	assert.Equal(t, "Inductor", KindInductor.String())
	assert.Equal(t, "Unknown", ComponentKind(99).String())
	assert.Equal(t, "C", KindCapacitor.Symbol())
	assert.True(t, KindResistor.Lumped())
	assert.True(t, KindShortStub.Distributed())
	assert.False(t, KindNone.Lumped() || KindNone.Distributed())

	k, ok := GetSymbolKind("TL")
	require.True(t, ok)
	assert.Equal(t, KindTransmissionLine, k)
	_, ok = GetSymbolKind("")
	assert.False(t, ok)

	assert.Equal(t, "Shunt", Shunt.String())
	e := MatchingElement{
		ComponentValue: ComponentValue{Kind: KindTransmissionLine, Value: 0.075},
		Connection:     Series,
		LineZ0:         70.71,
	}
	assert.Equal(t, "Series TransmissionLine 75.00 mm (Z0 = 70.71 Ω)", e.String())
}
