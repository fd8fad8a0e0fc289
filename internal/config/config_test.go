package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.UserAgent != "record-check-service" {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
	if cfg.MatchingTxnHeader != "x-amz-cf-id" {
		t.Errorf("MatchingTxnHeader = %q, want %q", cfg.MatchingTxnHeader, "x-amz-cf-id")
	}
	if cfg.AuditKafkaTopic != "record-check-audit" {
		t.Errorf("AuditKafkaTopic = %q, want default", cfg.AuditKafkaTopic)
	}
	if cfg.AuditEventPrefix != "IPV_HMRC_RECORD_CHECK_CRI" {
		t.Errorf("AuditEventPrefix = %q, want default", cfg.AuditEventPrefix)
	}
	if got := cfg.AuditKafkaBrokersList(); got != nil {
		t.Errorf("AuditKafkaBrokersList = %v, want nil", got)
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("USER_AGENT", "custom-agent")
	os.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.UserAgent != "custom-agent" {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, "custom-agent")
	}
	brokers := cfg.AuditKafkaBrokersList()
	if len(brokers) != 2 || brokers[0] != "k1:9092" || brokers[1] != "k2:9092" {
		t.Errorf("AuditKafkaBrokersList = %v, want [k1:9092 k2:9092]", brokers)
	}
}

func TestLoad_InvalidTxnHeader(t *testing.T) {
	os.Clearenv()
	os.Setenv("MATCHING_TXN_HEADER", "   ")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail when MATCHING_TXN_HEADER is blank")
	}
}
