package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-tuner/logging"
)

var (
	osc52Out       io.Writer = os.Stdout
	osc52Supported           = func() bool {
		if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd())
	}
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (no system clipboard and OSC52 unsupported by terminal)")
	}
	termenv.NewOutput(osc52Out).Copy(text)
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}
