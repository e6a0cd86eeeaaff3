// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence for terminals on remote hosts.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-tuner/logging"
)

// Method reports which path a copy took.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

var (
	systemAvailable = func() bool { return !clipboard.Unsupported }
	writeSystem     = clipboard.WriteAll
)

// Copy places text on the clipboard.
func Copy(text string) (Method, error) {
	if systemAvailable() {
		err := writeSystem(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return MethodSystem, nil
		}
		logging.Debugf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return "", err
	}
	return MethodOSC52, nil
}
