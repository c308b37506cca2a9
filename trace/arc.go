package trace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"smith/element"
	"smith/maths"
	"smith/types"
)

// 电阻与电导下限
const (
	MinResistance  = 1e-3 // Ω
	MinConductance = 1e-6 // S
)

// build 由起点阻抗生成一段轨迹
func (t *MatchingTrace) build(kind types.ComponentKind, conn types.Connection, value float64, start complex128, color int) (Segment, error) {
	face, ok := element.GetElement(kind)
	if !ok {
		return Segment{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	if !validValue(value) {
		return Segment{}, fmt.Errorf("%w: %s %v", ErrInvalidValue, kind, value)
	}
	resistive := face.GetConfig().Resistive

	var (
		arc    ArcKind
		points []Point
	)
	switch conn {
	case types.Series:
		delta := face.SeriesDelta(value, t.frequency)
		if resistive {
			arc, points = ConstantX, t.resistanceArc(start, real(delta))
		} else {
			arc, points = ConstantR, t.reactanceArc(start, imag(delta))
		}
	case types.Shunt:
		y := maths.InvertImmittance(start)
		delta := face.ShuntDelta(value, t.frequency)
		if resistive {
			arc, points = ConstantB, t.conductanceArc(y, real(delta))
		} else {
			arc, points = ConstantG, t.susceptanceArc(y, imag(delta))
		}
	default:
		return Segment{}, fmt.Errorf("%w: connection %s", ErrUnsupportedKind, conn)
	}
	points[0] = t.point(start)

	cv := types.ComponentValue{Kind: kind, Value: value, Frequency: t.frequency}
	return Segment{
		Points:     points,
		Arc:        arc,
		Component:  cv,
		Connection: conn,
		Label:      element.Label(cv, conn),
		Color:      color,
	}, nil
}

func (t *MatchingTrace) point(z complex128) Point {
	return Point{
		Gamma:     maths.ImpedanceToGamma(z, t.z0),
		Impedance: z,
		Frequency: t.frequency,
	}
}

// span 等间距采样
func (t *MatchingTrace) span(from, to float64) []float64 {
	return floats.Span(make([]float64, t.steps), from, to)
}

// reactanceArc 等电阻圆，电抗由 X 变化到 X+ΔX
func (t *MatchingTrace) reactanceArc(start complex128, dx float64) []Point {
	r := real(start)
	xs := t.span(imag(start), imag(start)+dx)
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = t.point(complex(r, x))
	}
	return points
}

// resistanceArc 等电抗圆弧，电阻由 R 变化到 R+ΔR
func (t *MatchingTrace) resistanceArc(start complex128, dr float64) []Point {
	x := imag(start)
	rs := t.span(real(start), real(start)+dr)
	points := make([]Point, len(rs))
	for i, r := range rs {
		points[i] = t.point(complex(math.Max(r, MinResistance), x))
	}
	return points
}

// susceptanceArc 等电导圆，电纳由 B 变化到 B+ΔB
func (t *MatchingTrace) susceptanceArc(y complex128, db float64) []Point {
	g := real(y)
	bs := t.span(imag(y), imag(y)+db)
	points := make([]Point, len(bs))
	for i, b := range bs {
		points[i] = t.point(maths.InvertImmittance(complex(g, b)))
	}
	return points
}

// conductanceArc 等电纳圆弧，电导由 G 变化到 G+ΔG
func (t *MatchingTrace) conductanceArc(y complex128, dg float64) []Point {
	b := imag(y)
	gs := t.span(real(y), real(y)+dg)
	points := make([]Point, len(gs))
	for i, g := range gs {
		points[i] = t.point(maths.InvertImmittance(complex(math.Max(g, MinConductance), b)))
	}
	return points
}
