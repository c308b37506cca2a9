package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smith/config"
	"smith/matching"
	"smith/types"
)

func TestParseElement(t *testing.T) {
	conn, kind, value, err := parseElement("series:L:10n")
	require.NoError(t, err)
	assert.Equal(t, types.Series, conn)
	assert.Equal(t, types.KindInductor, kind)
	assert.InDelta(t, 10e-9, value, 1e-18)

	conn, kind, value, err = parseElement("shunt:c:1.5p")
	require.NoError(t, err)
	assert.Equal(t, types.Shunt, conn)
	assert.Equal(t, types.KindCapacitor, kind)
	assert.InDelta(t, 1.5e-12, value, 1e-21)

	for _, arg := range []string{"series:L", "bridge:L:1n", "series:X:1n", "series:TL:0.1", "shunt:C:abc"} {
		_, _, _, err := parseElement(arg)
		assert.Error(t, err, arg)
	}
}

func TestParseImpedance(t *testing.T) {
	z, err := parseImpedance("75+50j")
	require.NoError(t, err)
	assert.Equal(t, complex(75, 50), z)

	z, err = parseImpedance("50")
	require.NoError(t, err)
	assert.Equal(t, complex(50, 0), z)

	_, err = parseImpedance("abc")
	assert.Error(t, err)
}

func TestFilterTopology(t *testing.T) {
	c := matching.NewCalculator(config.Default(), 50, complex(100, 50))
	all, err := filterTopology(c, "all")
	require.NoError(t, err)
	l, err := filterTopology(c, "L")
	require.NoError(t, err)
	assert.NotEmpty(t, l)
	assert.GreaterOrEqual(t, len(all), len(l))

	_, err = filterTopology(c, "bridge")
	assert.ErrorIs(t, err, errArgument)
}

func TestGammaCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"gamma", "75+50j"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "VSWR = 2.4201")
}

func TestBuildTrace(t *testing.T) {
	cfg = config.Default()
	s, err := buildTrace([]string{"25-30j", "series:L:4.8n", "shunt:C:1p"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Trace().Len())

	_, err = buildTrace([]string{"25-30j", "series:L"})
	assert.Error(t, err)
}
