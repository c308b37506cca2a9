package matching

import (
	"math"

	"smith/element"
	"smith/types"
)

// 分布参数判定阈值
const lineTolerance = 1e-10

// wrapHalf 长度归一到 [0, λ/2)
func wrapHalf(l, lambda float64) float64 {
	half := lambda / 2
	l = math.Mod(l, half)
	if l < 0 {
		l += half
	}
	if l >= half {
		l = 0
	}
	return l
}

func (c Calculator) line(kind types.ComponentKind, conn types.Connection, length, z0 float64) types.MatchingElement {
	v := types.ComponentValue{Kind: kind, Value: length, Frequency: c.Frequency}
	return types.MatchingElement{
		ComponentValue: v,
		Connection:     conn,
		LineZ0:         z0,
		Label:          element.Label(v, conn),
	}
}

// SingleStub 单枝节匹配，把负载匹配到参考阻抗 Z0
//
// 每个 tanβd 根各给出一个开路和一个短路方案，元件顺序为
// 并联枝节、串联传输线。两个根都保留，由调用方按线长排序取舍。
func (c Calculator) SingleStub() []Solution {
	if !c.valid() {
		return nil
	}
	zn := c.Load / complex(c.Z0, 0)
	r, x := real(zn), imag(zn)
	if r <= 0 {
		return nil
	}
	yl := 1 / zn
	if math.Abs(real(yl)-1) < lineTolerance && math.Abs(imag(yl)) < lineTolerance {
		return nil
	}
	lambda := Wavelength(c.Frequency)
	beta := 2 * math.Pi / lambda

	var roots []float64
	if math.Abs(r-1) < lineTolerance {
		roots = []float64{-x / 2}
	} else {
		s := math.Sqrt(r * ((1-r)*(1-r) + x*x))
		roots = []float64{(x + s) / (r - 1), (x - s) / (r - 1)}
	}

	q := ratioQ(real(c.Load), c.Z0)
	var out []Solution
	for _, t := range roots {
		d := wrapHalf(math.Atan(t)/beta, lambda)
		// 距负载 d 处的归一化导纳
		jt := complex(0, t)
		yin := (yl + jt) / (1 + jt*yl)
		b := -imag(yin)

		open := wrapHalf(math.Atan(b)/beta, lambda)
		short := lambda / 4
		if math.Abs(b) >= lineTolerance {
			short = wrapHalf(-math.Atan(1/b)/beta, lambda)
		}
		feed := c.line(types.KindTransmissionLine, types.Series, d, c.Z0)
		out = appendValid(out,
			c.stubSolution(SingleStubOpen, q, c.line(types.KindOpenStub, types.Shunt, open, c.Z0), feed),
			c.stubSolution(SingleStubShort, q, c.line(types.KindShortStub, types.Shunt, short, c.Z0), feed),
		)
	}
	return out
}

// stubSolution 枝节方案的匹配目标为参考阻抗
func (c Calculator) stubSolution(topology TopologyKind, q float64, elements ...types.MatchingElement) Solution {
	target := c
	target.Source = complex(c.Z0, 0)
	return target.solution(topology, q, elements...)
}

// QuarterWave 四分之一波长变换器 Zqw = √(Rs·Rl)
// 负载含电抗时在负载侧串联抵消元件，元件顺序为传输线、抵消元件。
func (c Calculator) QuarterWave() []Solution {
	if !c.physical() {
		return nil
	}
	rs, rl, xl := real(c.Source), real(c.Load), imag(c.Load)
	zqw := math.Sqrt(rs * rl)
	tl := c.line(types.KindTransmissionLine, types.Series, Wavelength(c.Frequency)/4, zqw)
	q := ratioQ(rs, rl)
	if math.Abs(xl) < lineTolerance {
		return appendValid(nil, c.solution(QuarterWave, q, tl))
	}
	return appendValid(nil, c.solution(QuarterWave, q, tl, c.series(-xl)))
}
