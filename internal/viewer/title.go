package viewer

// OverrunWarning is shown while loaded geometry leaves the viewbox.
const OverrunWarning = "geometry exceeds the viewbox"

// Title names a viewer window showing path.
func Title(path string, overrun bool) string {
	t := "vecview"
	if path != "" {
		t += " - " + path
	}
	if overrun {
		t += " (" + OverrunWarning + ")"
	}
	return t
}
