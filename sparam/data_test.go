package sparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

func sample() *Data {
	d := New(50, OnePort)
	d.Add(
		Point{Frequency: 3e9, S11: 0.5i},
		Point{Frequency: 1e9, S11: 0.2, S21: 0.9},
		Point{Frequency: 2e9, S11: 0.4 + 0.2i, S21: 0.8},
	)
	return d
}

// TestFrequencyRange 频率范围与排序
func TestFrequencyRange(t *testing.T) {
	d := sample()
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 1e9, d.MinFrequency())
	assert.Equal(t, 3e9, d.MaxFrequency())

	d.Sort()
	assert.Equal(t, []float64{1e9, 2e9, 3e9}, d.Frequencies())
	assert.Equal(t, []complex128{0.2, 0.4 + 0.2i, 0.5i}, d.S11())

	p, err := d.Point(1)
	require.NoError(t, err)
	assert.Equal(t, 2e9, p.Frequency)
	_, err = d.Point(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	empty := New(50, TwoPort)
	assert.True(t, empty.Empty())
	assert.Equal(t, 0.0, empty.MinFrequency())
	assert.Equal(t, -1, empty.ClosestIndex(1e9))
	_, ok := empty.S11At(1e9)
	assert.False(t, ok)
	assert.Equal(t, complex128(0), empty.S21At(1e9))
}

// TestInterpolation 线性插值与端点取值
func TestInterpolation(t *testing.T) {
	d := sample()
	d.Sort()

	v, ok := d.S11At(1.5e9)
	require.True(t, ok)
	assert.True(t, cscalar.EqualWithinAbs(0.3+0.1i, v, 1e-12), "插值 %v", v)

	v, _ = d.S11At(0.5e9)
	assert.Equal(t, complex128(0.2), v)
	v, _ = d.S11At(9e9)
	assert.Equal(t, complex128(0.5i), v)
	v, _ = d.S11At(2e9)
	assert.Equal(t, 0.4+0.2i, v)

	assert.Equal(t, 1, d.ClosestIndex(2.2e9))
	assert.Equal(t, complex128(0.8), d.S21At(1.9e9))
	assert.Len(t, d.Points(), 3)

	d.Clear()
	assert.Equal(t, 0, d.Len())
}

// TestTrace S11 转轨迹点
func TestTrace(t *testing.T) {
	d := New(50, OnePort)
	d.Add(Point{Frequency: 1e9, S11: 0}, Point{Frequency: 2e9, S11: 1.0 / 3})

	pts := d.Trace(50)
	require.Len(t, pts, 2)
	assert.True(t, cscalar.EqualWithinAbs(50, pts[0].Impedance, 1e-12))
	assert.True(t, cscalar.EqualWithinAbs(100, pts[1].Impedance, 1e-9))
	assert.True(t, cscalar.EqualWithinAbs(1.0/3, pts[1].Gamma, 1e-12))
	assert.Equal(t, 2e9, pts[1].Frequency)

	// 以 100Ω 重新归一化
	pts = d.Trace(100)
	assert.True(t, cscalar.EqualWithinAbs(0, pts[1].Gamma, 1e-12))
}
