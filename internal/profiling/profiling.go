// Package profiling is a benchmark-only helper for capturing a CPU
// profile around large synthetic-circuit construction and sanity
// checking the result, using google/pprof/profile to parse it back.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/pprof/profile"
)

// Capture runs fn under a CPU profile written to path, then parses the
// profile back with google/pprof/profile to confirm it recorded at
// least one sample. It returns the parsed profile for callers that
// want to assert on it further (e.g. symbol names present).
func Capture(path string, fn func()) (*profile.Profile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("profiling: create %s: %w", path, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, fmt.Errorf("profiling: start cpu profile: %w", err)
	}
	fn()
	pprof.StopCPUProfile()

	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profiling: reopen %s: %w", path, err)
	}
	defer r.Close()

	p, err := profile.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("profiling: parse profile: %w", err)
	}
	if len(p.Sample) == 0 {
		return p, fmt.Errorf("profiling: profile %s recorded no samples", path)
	}
	return p, nil
}
