package debug

import (
	"math"

	"smith/maths"
)

// 圆图网格取值
var (
	gridResistance = []float64{0, 0.2, 0.5, 1, 2, 5}
	gridReactance  = []float64{-5, -2, -1, -0.5, -0.2, 0.2, 0.5, 1, 2, 5}
)

// gridSteps 每条网格线采样点数
const gridSteps = 181

// resistanceCircle 等电阻圆，z = r + j·tanθ
func resistanceCircle(r float64) [][2]float64 {
	out := make([][2]float64, 0, gridSteps)
	for i := 1; i < gridSteps-1; i++ {
		theta := -math.Pi/2 + math.Pi*float64(i)/float64(gridSteps-1)
		out = append(out, pair(maths.NormalizedZToGamma(complex(r, math.Tan(theta)))))
	}
	return out
}

// reactanceArc 单位圆内的等电抗圆弧，z = tanθ + jx
func reactanceArc(x float64) [][2]float64 {
	out := make([][2]float64, 0, gridSteps)
	for i := 0; i < gridSteps-1; i++ {
		theta := math.Pi / 2 * float64(i) / float64(gridSteps-1)
		out = append(out, pair(maths.NormalizedZToGamma(complex(math.Tan(theta), x))))
	}
	return out
}

// insideArc 圆在单位圆内的部分
func insideArc(c maths.Circle) [][2]float64 {
	out := make([][2]float64, 0, gridSteps)
	for i := 0; i < gridSteps; i++ {
		phi := -math.Pi + 2*math.Pi*float64(i)/float64(gridSteps-1)
		g := c.Center + complex(c.Radius*math.Cos(phi), c.Radius*math.Sin(phi))
		if maths.Abs(g) <= 1+1e-9 {
			out = append(out, pair(g))
		}
	}
	return out
}

// unitCircle |Γ| = 1
func unitCircle() [][2]float64 {
	out := make([][2]float64, gridSteps)
	for i := range out {
		phi := 2 * math.Pi * float64(i) / float64(gridSteps-1)
		out[i] = [2]float64{math.Cos(phi), math.Sin(phi)}
	}
	return out
}
