package clog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/internal/clog"
)

func TestLoggerIsStable(t *testing.T) {
	a := clog.Logger()
	b := clog.Logger()
	require.Equal(t, a.GetLevel(), b.GetLevel())
}

func TestForBuilderCarriesCircuitSize(t *testing.T) {
	l := clog.ForBuilder(1024)
	require.NotNil(t, l)

	var buf bytes.Buffer
	out := l.Output(&buf)
	out.Info().Msg("probe")
	require.Contains(t, buf.String(), `"circuit_size":1024`)
}
