//go:build !pprof

package profile

// Modes returns nil when built without the pprof tag.
func Modes() []string { return nil }

// Start is a no-op when built without the pprof tag.
func Start(string, string) interface{ Stop() } { return ignore{} }
