package livefield

import "strings"

// SignalKey turns a property path into a datastar signal name.
// Dots would nest signals, so they become underscores.
func SignalKey(path string) string {
	return strings.ReplaceAll(path, ".", "_")
}

// ErrorListID is the DOM id of the error list rendered for path.
func ErrorListID(path string) string {
	return "errors-" + SignalKey(path)
}
