package circuit_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/internal/profiling"
)

// TestBuildLargeCircuitProfile builds a circuit with many dummy
// constraints under a CPU profile, the way a capacity-planning
// benchmark would, and checks the profile actually recorded samples.
func TestBuildLargeCircuitProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("profiling pass skipped in -short mode")
	}

	path := filepath.Join(t.TempDir(), "build.pprof")
	_, err := profiling.Capture(path, func() {
		b := newBuilder(1 << 14)
		for i := 0; i < 1<<14; i++ {
			b.AddDummyConstraints()
		}
	})
	require.NoError(t, err)
}
