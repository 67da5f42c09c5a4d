// Package profile provides optional runtime profiling for cliargs demo
// binaries.
//
// It wraps [github.com/pkg/profile] behind the "pprof" build tag: without
// the tag every operation is a no-op with zero overhead, and [Modes] is
// empty. With the tag, [Start] begins profiling in the requested mode and
// writes the profile under the given directory:
//
//	stop := profile.Start("cpu", "/tmp/profiles")
//	defer stop.Stop()
//
// Analyze the output with "go tool pprof <dir>/cpu.pprof".
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
