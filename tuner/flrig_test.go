package tuner

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func xmlResponse(value string) string {
	return `<?xml version="1.0"?><methodResponse><params><param><value>` +
		value + `</value></param></params></methodResponse>`
}

const faultResponse = `<?xml version="1.0"?><methodResponse><fault><value><struct>` +
	`<member><name>faultCode</name><value><int>-1</int></value></member>` +
	`<member><name>faultString</name><value><string>no rig</string></value></member>` +
	`</struct></value></fault></methodResponse>`

// stubFlrig answers every call with body and records the request bodies.
type stubFlrig struct {
	mu       sync.Mutex
	body     string
	requests []string
}

func (s *stubFlrig) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, string(b))
	body := s.body
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/xml")
	io.WriteString(w, body)
}

func newStub(t *testing.T, body string) (*stubFlrig, *Flrig) {
	t.Helper()
	stub := &stubFlrig{body: body}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, NewFlrig(strings.TrimPrefix(srv.URL, "http://"), time.Second)
}

func TestFrequencyHz(t *testing.T) {
	tests := []struct {
		name  string
		value string
		hz    float64
		ok    bool
	}{
		{"string", "<string>14070000</string>", 14070000, true},
		{"padded string", "<string> 7100000 </string>", 7100000, true},
		{"int", "<i4>9400000</i4>", 9400000, true},
		{"double", "<double>6005000.5</double>", 6005000.5, true},
		{"not a number", "<string>VFO-A</string>", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, f := newStub(t, xmlResponse(tt.value))
			hz, ok := f.FrequencyHz()
			if ok != tt.ok || hz != tt.hz {
				t.Fatalf("FrequencyHz = %v, %v; want %v, %v", hz, ok, tt.hz, tt.ok)
			}
			if len(stub.requests) != 1 || !strings.Contains(stub.requests[0], "rig.get_vfo") {
				t.Fatalf("unexpected requests %q", stub.requests)
			}
		})
	}
}

func TestFrequencyHzFault(t *testing.T) {
	_, f := newStub(t, faultResponse)
	if _, ok := f.FrequencyHz(); ok {
		t.Fatal("fault should yield no sample")
	}
}

func TestFrequencyHzUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	f := NewFlrig(addr, 500*time.Millisecond)
	if _, ok := f.FrequencyHz(); ok {
		t.Fatal("closed port should yield no sample")
	}
	if f.lastError() == "" {
		t.Fatal("failure should be remembered to suppress repeat warnings")
	}
	if !strings.Contains(f.lastError(), "rig.get_vfo") {
		t.Errorf("error should name the call: %q", f.lastError())
	}
}

// Tick and forced samples run as separate commands; run with -race.
func TestFrequencyHzConcurrentSamples(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	f := NewFlrig(addr, 200*time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.FrequencyHz()
		}()
	}
	wg.Wait()
	if !strings.Contains(f.lastError(), "rig.get_vfo") {
		t.Errorf("last error = %q", f.lastError())
	}
}

func TestSetFrequencyHz(t *testing.T) {
	stub, f := newStub(t, xmlResponse("<string></string>"))
	if err := f.SetFrequencyHz(7_100_000); err != nil {
		t.Fatalf("SetFrequencyHz: %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(stub.requests))
	}
	if req := stub.requests[0]; !strings.Contains(req, "main.set_frequency") {
		t.Fatalf("request does not call main.set_frequency: %s", req)
	}

	if err := f.SetFrequencyHz(-1); err == nil {
		t.Fatal("negative frequency should be rejected")
	}
	if len(stub.requests) != 1 {
		t.Fatal("rejected frequency should not reach flrig")
	}
}

func TestToHz(t *testing.T) {
	if hz, err := toHz(int64(3)); err != nil || hz != 3 {
		t.Errorf("int64: %v %v", hz, err)
	}
	if _, err := toHz([]byte("1")); err == nil {
		t.Error("unexpected type should fail")
	}
}
