package maths

import "math"

// Circle Γ 平面上的圆，圆心以复数表示
type Circle struct {
	Center complex128
	Radius float64
}

// Contains 点是否在圆周上
func (c Circle) Contains(gamma complex128, tol float64) bool {
	return math.Abs(Abs(gamma-c.Center)-c.Radius) <= tol
}

// degenerate 退化为直线的圆
func degenerate() Circle {
	return Circle{Center: complex(0, Sentinel), Radius: Sentinel}
}

// ConstantRCircle 等电阻圆 圆心(r/(r+1),0) 半径 1/(r+1)
func ConstantRCircle(r float64) Circle {
	return Circle{
		Center: complex(r/(r+1), 0),
		Radius: 1 / (r + 1),
	}
}

// ConstantXArc 等电抗圆弧 圆心(1,1/x) 半径 1/|x|
func ConstantXArc(x float64) Circle {
	if math.Abs(x) < Epsilon {
		return degenerate()
	}
	return Circle{
		Center: complex(1, 1/x),
		Radius: 1 / math.Abs(x),
	}
}

// ConstantGCircle 等电导圆 圆心(-g/(g+1),0) 半径 1/(g+1)
func ConstantGCircle(g float64) Circle {
	return Circle{
		Center: complex(-g/(g+1), 0),
		Radius: 1 / (g + 1),
	}
}

// ConstantBArc 等电纳圆弧 圆心(-1,-1/b) 半径 1/|b|
func ConstantBArc(b float64) Circle {
	if math.Abs(b) < Epsilon {
		return degenerate()
	}
	return Circle{
		Center: complex(-1, -1/b),
		Radius: 1 / math.Abs(b),
	}
}

// QCircle 等Q值圆，上半圆对应感性，下半圆对应容性
type QCircle struct {
	Q     float64
	Upper Circle
	Lower Circle
}

// NewQCircle 创建Q值圆 圆心(0,±1/Q) 半径 √(1+1/Q²)
func NewQCircle(q float64) QCircle {
	if q < Epsilon {
		return QCircle{Q: q, Upper: degenerate(), Lower: Circle{Center: complex(0, -Sentinel), Radius: Sentinel}}
	}
	inv := 1 / q
	r := math.Sqrt(1 + inv*inv)
	return QCircle{
		Q:     q,
		Upper: Circle{Center: complex(0, inv), Radius: r},
		Lower: Circle{Center: complex(0, -inv), Radius: r},
	}
}
