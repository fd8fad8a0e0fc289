// seed inserts development sample data for local testing; run with go run ./cmd/seed.
// Idempotent: skips inserts if the dev session already exists.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"record-check-service/internal/config"
	"record-check-service/internal/db"
	identitydomain "record-check-service/internal/identity/domain"
)

const (
	devSessionID = "dev-session-001"
	devClientID  = "dev-client"
	devJourneyID = "dev-journey-001"
	devSubject   = "urn:fdc:gov.uk:2022:dev-subject-001"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()

	var existing string
	err = conn.QueryRowContext(ctx, `SELECT session_id FROM sessions WHERE session_id = $1`, devSessionID).Scan(&existing)
	if err == nil {
		log.Println("Seed already applied (dev session exists). Skipping.")
		os.Exit(0)
	}
	if err != sql.ErrNoRows {
		log.Fatalf("seed check: %v", err)
	}

	now := time.Now().UTC()
	expiry := now.Add(time.Hour).Unix()

	if _, err := conn.ExecContext(ctx, `
		INSERT INTO sessions (
			session_id, client_id, expiry_date, client_ip_address,
			persistent_session_id, subject, client_session_id, txn, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8)`,
		devSessionID, devClientID, expiry, "127.0.0.1",
		"dev-persistent-001", devSubject, devJourneyID, now,
	); err != nil {
		log.Fatalf("create dev session: %v", err)
	}

	names, err := json.Marshal([]identitydomain.Name{{NameParts: []identitydomain.NamePart{
		{Type: "GivenName", Value: "Jim"},
		{Type: "FamilyName", Value: "Ferguson"},
	}}})
	if err != nil {
		log.Fatalf("encode names: %v", err)
	}
	birthDates, err := json.Marshal([]identitydomain.BirthDate{{Value: "1948-04-23"}})
	if err != nil {
		log.Fatalf("encode birth dates: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `
		INSERT INTO person_identities (session_id, names, birth_dates, expiry_date)
		VALUES ($1, $2, $3, $4)`,
		devSessionID, names, birthDates, expiry,
	); err != nil {
		log.Fatalf("create dev person identity: %v", err)
	}

	parameters := map[string]string{
		fmt.Sprintf("/check-hmrc-cri-api/OtgUrl/%s", devClientID):       "http://localhost:9090/token",
		fmt.Sprintf("/check-hmrc-cri-api/NinoCheckUrl/%s", devClientID): "http://localhost:9090/match",
		"/common-cri-api/PersonIdentityTableName":                       "person_identities",
		"/common-cri-api/SessionTableName":                              "sessions",
		"/common-cri-api/verifiable-credential/issuer":                  "https://dev.review-hc.example/",
	}
	for name, value := range parameters {
		if _, err := conn.ExecContext(ctx, `
			INSERT INTO parameters (name, value) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
			name, value,
		); err != nil {
			log.Fatalf("seed parameter %s: %v", name, err)
		}
	}

	log.Println("Seed completed successfully.")
	fmt.Printf("Dev session: %s (client %s)\n", devSessionID, devClientID)
}
