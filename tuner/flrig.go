// Package tuner talks to the receiver through flrig's XML-RPC interface.
package tuner

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kolo/xmlrpc"

	"github.com/andareed/siftly-tuner/logging"
)

const (
	methodGetVFO       = "rig.get_vfo"
	methodSetFrequency = "main.set_frequency"
)

// Tuner reads and sets the receiver frequency. FrequencyHz reports ok=false
// when no sample is available; it never fails otherwise.
type Tuner interface {
	FrequencyHz() (hz float64, ok bool)
	SetFrequencyHz(hz float64) error
}

// Flrig is a Tuner backed by an flrig XML-RPC endpoint. A new connection is
// made per call so an flrig restart needs no reconnect logic.
type Flrig struct {
	url       string
	transport http.RoundTripper

	// lastErr suppresses repeated warnings while flrig stays unreachable.
	// Samples run in concurrent commands, so it is guarded by mu.
	mu      sync.Mutex
	lastErr string
}

// NewFlrig builds a client for addr ("host:port"). timeout bounds both the
// connect and the wait for a reply.
func NewFlrig(addr string, timeout time.Duration) *Flrig {
	dialer := &net.Dialer{Timeout: timeout}
	return &Flrig{
		url: "http://" + addr + "/RPC2",
		transport: &http.Transport{
			DialContext:           dialer.DialContext,
			ResponseHeaderTimeout: timeout,
			DisableKeepAlives:     true,
		},
	}
}

// URL returns the endpoint the client calls.
func (f *Flrig) URL() string {
	return f.url
}

// FrequencyHz samples the VFO. Unreachable endpoints and non-numeric replies
// are reported as no sample.
func (f *Flrig) FrequencyHz() (float64, bool) {
	var raw any
	if err := f.call(methodGetVFO, nil, &raw); err != nil {
		f.warn(err)
		return 0, false
	}
	hz, err := toHz(raw)
	if err != nil {
		f.warn(err)
		return 0, false
	}
	f.mu.Lock()
	f.lastErr = ""
	f.mu.Unlock()
	return hz, true
}

// SetFrequencyHz tunes the receiver.
func (f *Flrig) SetFrequencyHz(hz float64) error {
	if hz < 0 {
		return fmt.Errorf("invalid frequency %.0f Hz", hz)
	}
	var reply any
	if err := f.call(methodSetFrequency, hz, &reply); err != nil {
		logging.Warnf("tuner: set frequency %.0f Hz: %v", hz, err)
		return err
	}
	logging.Infof("tuner: frequency set to %.0f Hz", hz)
	return nil
}

func (f *Flrig) call(method string, args any, reply any) error {
	client, err := xmlrpc.NewClient(f.url, f.transport)
	if err != nil {
		return fmt.Errorf("flrig client: %w", err)
	}
	defer client.Close()
	if err := client.Call(method, args, reply); err != nil {
		if isRefused(err) {
			return fmt.Errorf("%s: connection to flrig refused, is flrig running?", method)
		}
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (f *Flrig) warn(err error) {
	msg := err.Error()
	f.mu.Lock()
	changed := msg != f.lastErr
	f.lastErr = msg
	f.mu.Unlock()
	if changed {
		logging.Warnf("tuner: %s", msg)
	}
}

func (f *Flrig) lastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// toHz accepts the shapes flrig has been seen to answer with: a numeric
// string, an int or a double.
func toHz(raw any) (float64, error) {
	switch v := raw.(type) {
	case string:
		hz, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert flrig frequency %q to a number", v)
		}
		return hz, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected flrig frequency type %T", raw)
	}
}

func isRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return strings.Contains(err.Error(), "connection refused")
}
