package debug

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs/cscalar"
	"gonum.org/v1/plot/vg"

	"smith/config"
	"smith/maths"
	"smith/sparam"
	"smith/trace"
	"smith/types"
)

func sampleRecord(t *testing.T) *Record {
	t.Helper()
	tr := trace.New(config.Default(), 50, 75+50i, trace.WithSteps(10))
	require.NoError(t, tr.AddSeriesElement(types.KindCapacitor, 3e-12))
	require.NoError(t, tr.AddShuntElement(types.KindInductor, 8e-9))
	require.NoError(t, tr.SetQCircles(1, 3))

	data := sparam.New(50, sparam.OnePort)
	data.Add(sparam.Point{Frequency: 1e9, S11: 0.2}, sparam.Point{Frequency: 2e9, S11: 0.3i})

	rec := &Record{}
	rec.Update(tr)
	rec.AddMeasured(data.Trace(50))
	return rec
}

// TestRecord 快照与 JSON 输出
func TestRecord(t *testing.T) {
	rec := sampleRecord(t)
	require.Len(t, rec.Segments, 2)
	assert.Equal(t, [2]float64{75, 50}, rec.Load)
	assert.Equal(t, "#0064c8", rec.Segments[0].Color)
	assert.Equal(t, "#c83232", rec.Segments[1].Color)
	assert.Equal(t, "ConstantR", rec.Segments[0].Arc)
	assert.Len(t, rec.Segments[1].Gamma, 10)
	assert.Equal(t, []float64{1, 3}, rec.QCircles)
	assert.Len(t, rec.Measured, 2)
	assert.Equal(t, rec.Segments[0].Gamma[9], rec.Segments[1].Gamma[0])

	var buf bytes.Buffer
	require.NoError(t, rec.Render(&buf))
	var back Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, rec.Segments[1].Label, back.Segments[1].Label)
	assert.Equal(t, rec.Current, back.Current)
}

// TestGrid 网格点位于对应的等值圆上
func TestGrid(t *testing.T) {
	for _, r := range gridResistance {
		c := maths.ConstantRCircle(r)
		for _, p := range resistanceCircle(r) {
			assert.True(t, c.Contains(complex(p[0], p[1]), 1e-9))
		}
	}
	for _, x := range gridReactance {
		c := maths.ConstantXArc(x)
		for _, p := range reactanceArc(x) {
			g := complex(p[0], p[1])
			assert.True(t, c.Contains(g, 1e-9))
			assert.LessOrEqual(t, maths.Abs(g), 1+1e-9)
		}
	}
	q := maths.NewQCircle(2)
	arc := insideArc(q.Upper)
	require.NotEmpty(t, arc)
	for _, p := range arc {
		assert.LessOrEqual(t, maths.Abs(complex(p[0], p[1])), 1+1e-9)
	}
	assert.Len(t, unitCircle(), gridSteps)
	assert.True(t, cscalar.EqualWithinAbs(1, complex(unitCircle()[0][0], unitCircle()[0][1]), 1e-12))
}

// TestCharts 网页输出
func TestCharts(t *testing.T) {
	c := &Charts{Record: *sampleRecord(t)}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "VSWR")

	rr := httptest.NewRecorder()
	c.Handler(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), "echarts")
}

// TestPlot PNG 输出
func TestPlot(t *testing.T) {
	rec := sampleRecord(t)
	var buf bytes.Buffer
	require.NoError(t, rec.WritePlot(&buf, 4*vg.Inch, FormatPNG))
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])

	buf.Reset()
	require.NoError(t, rec.WritePlot(&buf, 4*vg.Inch, FormatSVG))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, rec.WritePlot(&buf, 4*vg.Inch, "bmp"))
}
