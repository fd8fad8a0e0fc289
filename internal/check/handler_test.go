package check

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func postCheck(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ProcessCheck(rec, req)
	return rec
}

func TestHandlerMatchedAnswers200(t *testing.T) {
	f := newFixture(t)
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{"sessionId":"sess-1","nino":"AA000003D"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out Outcome
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.RequestRetry {
		t.Error("requestRetry = true, want false")
	}
}

func TestHandlerUnknownSessionAnswers400(t *testing.T) {
	f := newFixture(t)
	f.sessions.session = nil
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{"sessionId":"sess-1","nino":"AA000003D"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerExpiredSessionAnswers400(t *testing.T) {
	f := newFixture(t)
	f.sessions.session.ExpiryDate = testNow.Add(-time.Second).Unix()
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{"sessionId":"sess-1","nino":"AA000003D"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerInternalFaultAnswers500(t *testing.T) {
	f := newFixture(t)
	f.identities.identity = nil
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{"sessionId":"sess-1","nino":"AA000003D"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "identity") {
		t.Errorf("internal detail leaked to caller: %s", rec.Body.String())
	}
}

func TestHandlerMalformedBodyAnswers500(t *testing.T) {
	f := newFixture(t)
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{not json`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if f.matcher.called {
		t.Error("matching endpoint called for malformed body")
	}
}

func TestHandlerRetryAnswer(t *testing.T) {
	f := newFixture(t)
	f.matcher.result.StatusCode = http.StatusUnauthorized
	f.matcher.result.Errors = map[string]string{"nino": "does not match"}
	h := NewHandler(f.svc)

	rec := postCheck(t, h, `{"sessionId":"sess-1","nino":"AA000003D"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"requestRetry":true`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
