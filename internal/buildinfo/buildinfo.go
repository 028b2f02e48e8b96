// Package buildinfo stamps this module's version onto log lines and
// snapshot metadata, the way gnark threads blang/semver through its
// own version reporting.
package buildinfo

import "github.com/blang/semver/v4"

// Version is the constraint-system core's semantic version.
var Version = semver.MustParse("0.1.0")

// String returns the version in "x.y.z" form.
func String() string {
	return Version.String()
}
