package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func stub(t *testing.T, system bool, sysErr error, osc bool) (*bytes.Buffer, *[]string) {
	t.Helper()
	var buf bytes.Buffer
	var written []string
	oldAvail, oldWrite, oldOut, oldSupported := systemAvailable, writeSystem, osc52Out, osc52Supported
	t.Cleanup(func() {
		systemAvailable, writeSystem, osc52Out, osc52Supported = oldAvail, oldWrite, oldOut, oldSupported
	})
	systemAvailable = func() bool { return system }
	writeSystem = func(s string) error {
		written = append(written, s)
		return sysErr
	}
	osc52Out = &buf
	osc52Supported = func() bool { return osc }
	return &buf, &written
}

func TestCopyPrefersSystemClipboard(t *testing.T) {
	buf, written := stub(t, true, nil, true)
	method, err := Copy("9400.00;Radio Bulgaria")
	if err != nil || method != MethodSystem {
		t.Fatalf("Copy = %q, %v", method, err)
	}
	if len(*written) != 1 || (*written)[0] != "9400.00;Radio Bulgaria" {
		t.Fatalf("system clipboard got %q", *written)
	}
	if buf.Len() != 0 {
		t.Fatal("OSC52 should not be used when the system clipboard works")
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	buf, _ := stub(t, true, errors.New("no display"), true)
	method, err := Copy("6005.00")
	if err != nil || method != MethodOSC52 {
		t.Fatalf("Copy = %q, %v", method, err)
	}
	if want := base64.StdEncoding.EncodeToString([]byte("6005.00")); !strings.Contains(buf.String(), want) {
		t.Fatalf("OSC52 output %q lacks the payload", buf.String())
	}
}

func TestCopyUnavailable(t *testing.T) {
	buf, written := stub(t, false, nil, false)
	if _, err := Copy("x"); err == nil {
		t.Fatal("expected an error with no clipboard at all")
	}
	if len(*written) != 0 || buf.Len() != 0 {
		t.Fatal("nothing should be written")
	}
}
