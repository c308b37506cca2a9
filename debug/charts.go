package debug

import (
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"smith/maths"
)

// Charts 圆图网页绘制
type Charts struct {
	Record
}

func scatterData(points [][2]float64, size int) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{Value: []interface{}{p[0], p[1]}, SymbolSize: size}
	}
	return data
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// Γ 平面
	smith := charts.NewScatter()
	smith.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "760px",
			Height: "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "史密斯圆图",
			Subtitle: fmt.Sprintf("Z0 = %.2f Ω  f = %.4g Hz", c.Z0, c.Frequency),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -1.1, Max: 1.1}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -1.1, Max: 1.1}),
	)
	grid := &opts.ItemStyle{Color: "#c8c8c8"}
	smith.AddSeries("单位圆", scatterData(unitCircle(), 1), charts.WithItemStyleOpts(*grid))
	for _, r := range gridResistance[1:] {
		smith.AddSeries("网格", scatterData(resistanceCircle(r), 1), charts.WithItemStyleOpts(*grid))
	}
	for _, x := range gridReactance {
		smith.AddSeries("网格", scatterData(reactanceArc(x), 1), charts.WithItemStyleOpts(*grid))
	}
	for _, q := range c.QCircles {
		qc := maths.NewQCircle(q)
		style := charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff9900"})
		name := fmt.Sprintf("Q = %.3g", q)
		smith.AddSeries(name, scatterData(insideArc(qc.Upper), 2), style)
		smith.AddSeries(name, scatterData(insideArc(qc.Lower), 2), style)
	}
	for i, s := range c.Segments {
		name := s.Label
		if name == "" {
			name = fmt.Sprintf("Segment(%d)", i)
		}
		smith.AddSeries(name, scatterData(s.Gamma, 4), charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	if len(c.Measured) > 0 {
		smith.AddSeries("S11", scatterData(c.Measured, 3))
	}
	load := [][2]float64{gammaPair(c.Load, c.Z0)}
	smith.AddSeries("负载", scatterData(load, 10), charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}))

	// 各采样点驻波比
	vswr := charts.NewLine()
	vswr.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "驻波比",
			Subtitle: "沿轨迹各采样点",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)
	var (
		index []int
		items []opts.LineData
	)
	for _, s := range c.Segments {
		for _, g := range s.Gamma {
			index = append(index, len(index))
			items = append(items, opts.LineData{Value: maths.VSWR(math.Hypot(g[0], g[1]))})
		}
	}
	vswr.SetXAxis(index).AddSeries("VSWR", items)

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		smith,
		vswr,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }

// gammaPair 阻抗 [R,X] 转反射系数 [实部,虚部]
func gammaPair(z [2]float64, z0 float64) [2]float64 {
	return pair(maths.ImpedanceToGamma(complex(z[0], z[1]), z0))
}
