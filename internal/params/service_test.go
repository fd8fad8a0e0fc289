package params

import (
	"context"
	"errors"
	"testing"
)

type memParamRepo struct {
	values map[string]string
	err    error
	asked  []string
}

func (r *memParamRepo) GetValues(ctx context.Context, names []string) (map[string]string, error) {
	r.asked = names
	if r.err != nil {
		return nil, r.err
	}
	out := map[string]string{}
	for _, n := range names {
		if v, ok := r.values[n]; ok {
			out[n] = v
		}
	}
	return out, nil
}

func TestResolve(t *testing.T) {
	repo := &memParamRepo{values: map[string]string{
		"/check-hmrc-cri-api/OtgUrl/client-a":       "https://otg.example/token",
		"/check-hmrc-cri-api/NinoCheckUrl/client-a": "https://pdv.example/match",
		"/common-cri-api/SessionTableName":          "sessions",
		"/common-cri-api/verifiable-credential/issuer": "https://issuer.example",
	}}
	svc := NewService(repo)

	p, err := svc.Resolve(context.Background(), "client-a")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.OtgURL != "https://otg.example/token" {
		t.Errorf("OtgURL = %q", p.OtgURL)
	}
	if p.MatchingURL != "https://pdv.example/match" {
		t.Errorf("MatchingURL = %q", p.MatchingURL)
	}
	if p.Issuer != "https://issuer.example" {
		t.Errorf("Issuer = %q", p.Issuer)
	}
	// PersonIdentityTableName has no stored value; absence is not an error.
	if p.PersonIdentityTableName != "" {
		t.Errorf("PersonIdentityTableName = %q, want empty", p.PersonIdentityTableName)
	}
	if len(repo.asked) != 5 {
		t.Errorf("asked for %d names, want 5", len(repo.asked))
	}
}

func TestResolve_StoreFailure(t *testing.T) {
	repo := &memParamRepo{err: errors.New("connection refused")}
	svc := NewService(repo)

	if _, err := svc.Resolve(context.Background(), "client-a"); err == nil {
		t.Fatal("Resolve should propagate store failures")
	}
}
