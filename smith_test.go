package smith

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smith/config"
	"smith/sparam"
	"smith/types"
)

func TestNetListRoundTrip(t *testing.T) {
	in := []types.MatchingElement{
		{ComponentValue: types.ComponentValue{Kind: types.KindCapacitor, Value: 1.2e-12, Frequency: 1e9}, Connection: types.Shunt},
		{ComponentValue: types.ComponentValue{Kind: types.KindInductor, Value: 5e-9, Frequency: 1e9}, Connection: types.Series},
		{ComponentValue: types.ComponentValue{Kind: types.KindTransmissionLine, Value: 0.075, Frequency: 1e9}, Connection: types.Series, LineZ0: 70.71},
	}
	var buf bytes.Buffer
	require.NoError(t, ExportNetList(&buf, in))

	out, err := LoadNetList(&buf, 1e9)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Kind, out[i].Kind)
		assert.Equal(t, in[i].Connection, out[i].Connection)
		assert.InDelta(t, in[i].Value, out[i].Value, in[i].Value*1e-9)
		assert.InDelta(t, in[i].LineZ0, out[i].LineZ0, 1e-9)
		assert.NotEmpty(t, out[i].Label)
	}
}

func TestLoadNetListSkipsComments(t *testing.T) {
	src := "# 匹配网络\n\n.freq 1G\nL1 1 2 10n\nC2 2 0 1.5p\n"
	out, err := LoadNetList(strings.NewReader(src), 1e9)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, types.Series, out[0].Connection)
	assert.InDelta(t, 10e-9, out[0].Value, 1e-18)
	assert.Equal(t, types.Shunt, out[1].Connection)
	assert.InDelta(t, 1.5e-12, out[1].Value, 1e-21)
}

func TestLoadNetListErrors(t *testing.T) {
	for _, src := range []string{
		"L1 1 2\n",
		"X1 1 2 10n\n",
		"L1 1 2 abc\n",
		"TL1 1 2 0.05\n",
	} {
		_, err := LoadNetList(strings.NewReader(src), 1e9)
		assert.ErrorIs(t, err, ErrNetList, src)
	}
}

func TestSessionApplyAndExport(t *testing.T) {
	s := NewSession(config.Default(), nil)
	require.NoError(t, s.SetLoad(complex(25, -30)))
	assert.Equal(t, complex(25, -30), s.Trace().Load())

	sols := s.Calculator().LSection()
	require.NotEmpty(t, sols)
	require.NoError(t, s.Apply(sols[0].Elements()))
	assert.Less(t, s.Trace().Mismatch().Magnitude(), 1e-6)

	name := filepath.Join(t.TempDir(), "match.net")
	require.NoError(t, s.Export(name))

	other := NewSession(config.Default(), nil)
	require.NoError(t, other.SetLoad(complex(25, -30)))
	require.NoError(t, other.Import(name))
	assert.Equal(t, s.Trace().Len(), other.Trace().Len())
	assert.InDelta(t, real(s.Trace().CurrentImpedance()), real(other.Trace().CurrentImpedance()), 1e-6)
	assert.InDelta(t, imag(s.Trace().CurrentImpedance()), imag(other.Trace().CurrentImpedance()), 1e-6)
}

func TestSessionApplyRestoresOnError(t *testing.T) {
	s := NewSession(config.Default(), nil)
	require.NoError(t, s.SetLoad(complex(100, 0)))
	require.NoError(t, s.Trace().AddSeriesElement(types.KindInductor, 5e-9))

	bad := []types.MatchingElement{
		{ComponentValue: types.ComponentValue{Kind: types.KindTransmissionLine, Value: 0.05}, Connection: types.Series, LineZ0: 50},
	}
	assert.Error(t, s.Apply(bad))
	assert.Equal(t, 1, s.Trace().Len())
	assert.Equal(t, types.KindInductor, s.Trace().Elements()[0].Kind)
}

func TestSessionSolutions(t *testing.T) {
	s := NewSession(config.Default(), nil)
	require.NoError(t, s.SetLoad(complex(100, 50)))
	for _, sol := range s.Solutions() {
		assert.True(t, sol.Valid)
	}
	assert.NotEmpty(t, s.Solutions())
	assert.NotNil(t, s.Record())
}

func TestSessionRecordMeasured(t *testing.T) {
	s := NewSession(config.Default(), nil)
	assert.Empty(t, s.Record().Measured)

	data := sparam.New(50, sparam.OnePort)
	data.Add(sparam.Point{Frequency: 1e9, S11: 0.2})
	data.Add(sparam.Point{Frequency: 2e9, S11: 0.1i})
	s.SetMeasured(data)
	assert.Len(t, s.Record().Measured, 2)

	s.SetMeasured(nil)
	assert.Empty(t, s.Record().Measured)
}
