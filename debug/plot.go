package debug

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"smith/maths"
)

// 图片格式
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// xys 转换为 plotter 数据
func xys(points [][2]float64) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i].X, out[i].Y = p[0], p[1]
	}
	return out
}

// addLine 追加一条折线，少于两点时跳过
func addLine(p *plot.Plot, points [][2]float64, c color.Color, width vg.Length) (*plotter.Line, error) {
	if len(points) < 2 {
		return nil, nil
	}
	line, err := plotter.NewLine(xys(points))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	p.Add(line)
	return line, nil
}

// Plot 绘制 Γ 平面图像
func (list *Record) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Smith Chart  Z0 = %.2f Ω  f = %.4g Hz", list.Z0, list.Frequency)
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.X.Label.Text = "Re Γ"
	p.Y.Label.Text = "Im Γ"

	grid := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if _, err := addLine(p, unitCircle(), color.Black, vg.Points(1)); err != nil {
		return nil, fmt.Errorf("unit circle: %w", err)
	}
	for _, r := range gridResistance[1:] {
		if _, err := addLine(p, resistanceCircle(r), grid, vg.Points(0.5)); err != nil {
			return nil, fmt.Errorf("resistance grid %v: %w", r, err)
		}
	}
	for _, x := range gridReactance {
		if _, err := addLine(p, reactanceArc(x), grid, vg.Points(0.5)); err != nil {
			return nil, fmt.Errorf("reactance grid %v: %w", x, err)
		}
	}
	for _, q := range list.QCircles {
		qc := maths.NewQCircle(q)
		orange := color.RGBA{R: 255, G: 153, A: 255}
		for _, c := range []maths.Circle{qc.Upper, qc.Lower} {
			if _, err := addLine(p, insideArc(c), orange, vg.Points(0.75)); err != nil {
				return nil, fmt.Errorf("Q circle %v: %w", q, err)
			}
		}
	}
	for i, s := range list.Segments {
		var c color.RGBA
		if _, err := fmt.Sscanf(s.Color, "#%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
			c = color.RGBA{A: 255}
		}
		c.A = 255
		line, err := addLine(p, s.Gamma, c, vg.Points(2))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if line != nil && s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	if len(list.Measured) > 0 {
		points, err := plotter.NewScatter(xys(list.Measured))
		if err != nil {
			return nil, fmt.Errorf("measured: %w", err)
		}
		points.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(points)
		p.Legend.Add("S11", points)
	}
	return p, nil
}

// WritePlot 输出图片，format 为 png 或 svg
func (list *Record) WritePlot(w io.Writer, size vg.Length, format string) error {
	p, err := list.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return fmt.Errorf("plot writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
