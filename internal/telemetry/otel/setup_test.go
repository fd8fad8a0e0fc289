package otel

import (
	"context"
	"testing"
)

func TestNewProviders_EmptyEndpoint(t *testing.T) {
	ctx := context.Background()
	providers, err := NewProviders(ctx, "", "test-service", false)
	if err != nil {
		t.Fatalf("NewProviders empty endpoint: %v", err)
	}
	if providers == nil {
		t.Fatal("providers should not be nil")
	}
	if providers.TracerProvider == nil {
		t.Error("TracerProvider should not be nil")
	}
	if providers.MeterProvider == nil {
		t.Error("MeterProvider should not be nil")
	}
	if providers.LoggerProvider == nil {
		t.Error("LoggerProvider should not be nil")
	}

	// Shutdown is a no-op for the unconfigured case
	if err := providers.Shutdown(ctx); err != nil {
		t.Errorf("shutdown should be no-op for empty endpoint, got error: %v", err)
	}
}

func TestNewProviders_WhitespaceEndpoint(t *testing.T) {
	providers, err := NewProviders(context.Background(), "   ", "test-service", false)
	if err != nil {
		t.Fatalf("NewProviders whitespace endpoint: %v", err)
	}
	if providers == nil {
		t.Fatal("providers should not be nil")
	}
}

func TestGRPCTarget(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		wantTarget   string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host port", "localhost:4317", "localhost:4317", true, false},
		{"http scheme", "http://collector:4317", "collector:4317", true, false},
		{"https scheme", "https://collector:4317", "collector:4317", false, false},
		{"https with path dropped", "https://collector:4317/v1/traces", "collector:4317", false, false},
		{"missing host", "http://", "", false, true},
		{"malformed", "http://[invalid", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, insecure, err := grpcTarget(tt.endpoint, false)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("grpcTarget(%q): want error", tt.endpoint)
				}
				return
			}
			if err != nil {
				t.Fatalf("grpcTarget(%q): %v", tt.endpoint, err)
			}
			if target != tt.wantTarget || insecure != tt.wantInsecure {
				t.Errorf("grpcTarget(%q) = (%q, %v), want (%q, %v)",
					tt.endpoint, target, insecure, tt.wantTarget, tt.wantInsecure)
			}
		})
	}
}

func TestGRPCTargetInsecureOverride(t *testing.T) {
	_, insecure, err := grpcTarget("https://collector:4317", true)
	if err != nil {
		t.Fatalf("grpcTarget: %v", err)
	}
	if !insecure {
		t.Error("override should force insecure for https endpoint")
	}
}
