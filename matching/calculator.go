// Package matching 匹配网络综合
//
// 给定源阻抗、负载阻抗、参考阻抗和频率，计算把负载变换到源阻抗
// 的候选网络：
//
//   - L 型（两组解，按源负载电阻大小决定并联元件位置）
//   - Π 型与 T 型（由目标Q值确定虚拟电阻）
//   - 单枝节（开路与短路，匹配到参考阻抗）
//   - 四分之一波长变换器（必要时附加抵消负载电抗的串联元件）
//
// 所有求解函数都不返回错误，非物理或无解的输入返回空列表。
package matching

import (
	"math"

	"gonum.org/v1/gonum/cmplxs/cscalar"
	"gonum.org/v1/gonum/floats/scalar"

	"smith/config"
	"smith/element"
	"smith/maths"
	"smith/types"
)

// Calculator 匹配网络计算器，无状态值类型
type Calculator struct {
	Source    complex128 // 源阻抗，即匹配目标
	Load      complex128 // 负载阻抗
	Frequency float64    // 设计频率(Hz)
	Z0        float64    // 参考阻抗(Ω)
	TargetQ   float64    // Π/T 型默认Q值
}

// NewCalculator 以配置中的参考阻抗、频率与目标Q值创建计算器
func NewCalculator(cfg config.Config, source, load complex128) Calculator {
	return Calculator{
		Source:    source,
		Load:      load,
		Frequency: cfg.Frequency,
		Z0:        cfg.Z0,
		TargetQ:   cfg.TargetQ,
	}
}

// valid 频率、参考阻抗与端口阻抗均为有限正值
func (c Calculator) valid() bool {
	if !(c.Frequency > 0) || !(c.Z0 > 0) || math.IsInf(c.Frequency, 0) {
		return false
	}
	return maths.Finite(c.Source) && maths.Finite(c.Load)
}

// physical 源与负载电阻均为正
func (c Calculator) physical() bool {
	return c.valid() && real(c.Source) > 0 && real(c.Load) > 0
}

// targetQ 默认Q值
func (c Calculator) targetQ() float64 {
	if c.TargetQ > 0 {
		return c.TargetQ
	}
	return config.DefaultTargetQ
}

func (c Calculator) series(x float64) types.MatchingElement {
	return element.NewMatchingElement(element.FromReactance(x, c.Frequency), types.Series)
}

func (c Calculator) shunt(b float64) types.MatchingElement {
	return element.NewMatchingElement(element.FromSusceptance(b, c.Frequency), types.Shunt)
}

// solution 组装方案，丢弃无需元件的位置
func (c Calculator) solution(topology TopologyKind, q float64, elements ...types.MatchingElement) Solution {
	list := make([]types.MatchingElement, 0, len(elements))
	for _, e := range elements {
		if !e.IsNone() {
			list = append(list, e)
		}
	}
	return Solution{
		Topology:  topology,
		Frequency: c.Frequency,
		Z0:        c.Z0,
		Source:    c.Source,
		Load:      c.Load,
		Valid:     len(list) > 0,
		Q:         q,
		elements:  list,
	}
}

// appendValid 只追加有效方案
func appendValid(list []Solution, sols ...Solution) []Solution {
	for _, s := range sols {
		if s.Valid {
			list = append(list, s)
		}
	}
	return list
}

// ratioQ 电阻变换比对应的Q值 √(Rmax/Rmin - 1)
func ratioQ(a, b float64) float64 {
	hi, lo := math.Max(a, b), math.Min(a, b)
	if lo < maths.Epsilon {
		return 0
	}
	return math.Sqrt(hi/lo - 1)
}

// sqrtClamp 舍入误差导致的微小负数按零处理
func sqrtClamp(v float64) (float64, bool) {
	if v < 0 {
		if v > -maths.Epsilon {
			return 0, true
		}
		return 0, false
	}
	return math.Sqrt(v), true
}

// LSection L 型匹配
//
// Rs>Rl 时并联元件在源侧、串联元件在负载侧；Rs<Rl 时相反。
// 源负载电阻相等时仅需一个串联电抗，已匹配则无解。
func (c Calculator) LSection() []Solution {
	if !c.physical() {
		return nil
	}
	rs, xs := real(c.Source), imag(c.Source)
	rl, xl := real(c.Load), imag(c.Load)
	switch {
	case scalar.EqualWithinRel(rs, rl, maths.Epsilon):
		return appendValid(nil, c.solution(LSection, 0, c.series(xs-xl)))
	case rs > rl:
		// 负载串联 X'' 后的导纳实部等于源电导 Gs
		ys := maths.InvertImmittance(c.Source)
		gs, bs := real(ys), imag(ys)
		root, ok := sqrtClamp(rl/gs - rl*rl)
		if !ok {
			return nil
		}
		q := ratioQ(rs, rl)
		var out []Solution
		for _, sign := range []float64{1, -1} {
			xpp := sign * root
			bMid := imag(1 / complex(rl, xpp))
			out = appendValid(out, c.solution(LSection, q,
				c.shunt(bs-bMid),
				c.series(xpp-xl),
			))
		}
		return out
	default:
		// 负载并联 B' 后的阻抗实部等于源电阻 Rs
		yl := maths.InvertImmittance(c.Load)
		gl, bl := real(yl), imag(yl)
		root, ok := sqrtClamp(gl/rs - gl*gl)
		if !ok {
			return nil
		}
		q := ratioQ(rs, rl)
		var out []Solution
		for _, sign := range []float64{1, -1} {
			bp := sign * root
			xMid := imag(1 / complex(gl, bp))
			out = appendValid(out, c.solution(LSectionReversed, q,
				c.series(xs-xMid),
				c.shunt(bp-bl),
			))
		}
		return out
	}
}

// PiNetwork Π 型匹配 并联-串联-并联
//
// 虚拟电阻 Rv = min(Rs,Rl)/(1+Q²)，两侧电抗并入相邻并联电纳。
func (c Calculator) PiNetwork(targetQ float64) []Solution {
	if !c.physical() || !(targetQ > 0) || math.IsInf(targetQ, 0) {
		return nil
	}
	ys, yl := maths.InvertImmittance(c.Source), maths.InvertImmittance(c.Load)
	rps, rpl := 1/real(ys), 1/real(yl)
	rv := PiVirtualResistance(rps, rpl, targetQ)
	q1, q2 := SideQ(rps, rv), SideQ(rpl, rv)
	return appendValid(nil, c.solution(PiNetwork, math.Max(q1, q2),
		c.shunt(q1/rps+imag(ys)),
		c.series((q1+q2)*rv),
		c.shunt(q2/rpl-imag(yl)),
	))
}

// TNetwork T 型匹配 串联-并联-串联
//
// 虚拟电阻 Rv = max(Rs,Rl)(1+Q²)，两侧电抗并入相邻串联电抗。
func (c Calculator) TNetwork(targetQ float64) []Solution {
	if !c.physical() || !(targetQ > 0) || math.IsInf(targetQ, 0) {
		return nil
	}
	rs, xs := real(c.Source), imag(c.Source)
	rl, xl := real(c.Load), imag(c.Load)
	rv := TVirtualResistance(rs, rl, targetQ)
	q1, q2 := SideQ(rs, rv), SideQ(rl, rv)
	return appendValid(nil, c.solution(TNetwork, math.Max(q1, q2),
		c.series(q1*rs+xs),
		c.shunt((q1+q2)/rv),
		c.series(q2*rl-xl),
	))
}

// PiVirtualResistance Π 型虚拟电阻 min(Rs,Rl)/(1+Q²)
func PiVirtualResistance(rs, rl, q float64) float64 {
	return math.Min(rs, rl) / (1 + q*q)
}

// TVirtualResistance T 型虚拟电阻 max(Rs,Rl)(1+Q²)
func TVirtualResistance(rs, rl, q float64) float64 {
	return math.Max(rs, rl) * (1 + q*q)
}

// SideQ 一侧变换到虚拟电阻的Q值 √(Rmax/Rmin - 1)
func SideQ(r, rv float64) float64 { return ratioQ(r, rv) }

// All 全部拓扑的方案
// 源阻抗等于参考阻抗时追加单枝节方案。
func (c Calculator) All() []Solution {
	var out []Solution
	out = append(out, c.LSection()...)
	out = append(out, c.PiNetwork(c.targetQ())...)
	out = append(out, c.TNetwork(c.targetQ())...)
	out = append(out, c.QuarterWave()...)
	if cscalar.EqualWithinAbsOrRel(c.Source, complex(c.Z0, 0), 1e-9, 1e-9) {
		out = append(out, c.SingleStub()...)
	}
	return out
}
