package clipboard

var PlatformCommands = platformCommands

// WithLookPath replaces exec.LookPath.
func (e *Exec) WithLookPath(fn func(string) (string, error)) *Exec {
	e.lookPath = fn
	return e
}
