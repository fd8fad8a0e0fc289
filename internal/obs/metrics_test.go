package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentCountsByStatus(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/check", "400"))

	h := Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	req := httptest.NewRequest(http.MethodPost, "/check", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/check", "400"))
	if after != before+1 {
		t.Fatalf("requests counter = %v, want %v", after, before+1)
	}
}

func TestInstrumentDefaultsTo200(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))

	h := Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200"))
	if after != before+1 {
		t.Fatalf("requests counter = %v, want %v", after, before+1)
	}
}

func TestObserveMatchingResponse(t *testing.T) {
	before := testutil.ToFloat64(matchingResponsesTotal.WithLabelValues("424"))
	ObserveMatchingResponse(424)
	after := testutil.ToFloat64(matchingResponsesTotal.WithLabelValues("424"))
	if after != before+1 {
		t.Fatalf("matching counter = %v, want %v", after, before+1)
	}
}
