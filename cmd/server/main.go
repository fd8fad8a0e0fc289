package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"record-check-service/internal/abandon"
	attemptrepo "record-check-service/internal/attempt/repository"
	"record-check-service/internal/audit"
	"record-check-service/internal/check"
	"record-check-service/internal/config"
	"record-check-service/internal/db"
	healthhandler "record-check-service/internal/health/handler"
	identityrepo "record-check-service/internal/identity/repository"
	"record-check-service/internal/obs"
	"record-check-service/internal/otg"
	"record-check-service/internal/params"
	paramsrepo "record-check-service/internal/params/repository"
	"record-check-service/internal/pdv"
	"record-check-service/internal/server"
	sessionrepo "record-check-service/internal/session/repository"
	"record-check-service/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "record-check-service", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	var emitter audit.Emitter
	kafkaEmitter, err := audit.NewKafkaEmitter(cfg.AuditKafkaBrokersList(), cfg.AuditKafkaTopic)
	if err != nil {
		log.Fatalf("audit: %v", err)
	}
	if kafkaEmitter != nil {
		emitter = kafkaEmitter
	} else {
		log.Println("audit: no Kafka brokers configured, logging events instead")
		emitter = audit.LogEmitter{}
	}
	defer emitter.Close()

	sessions := sessionrepo.NewPostgresRepository(conn)
	identities := identityrepo.NewPostgresRepository(conn)
	attempts := attemptrepo.NewPostgresRepository(conn)
	paramSvc := params.NewService(paramsrepo.NewPostgresRepository(conn))

	checkSvc := check.NewService(
		sessions,
		identities,
		attempts,
		paramSvc,
		otg.NewClient(),
		pdv.NewClient(cfg.UserAgent),
		emitter,
		cfg.MatchingTxnHeader,
		cfg.AuditEventPrefix,
	)

	obs.Init()
	router := server.NewRouter(server.Deps{
		Check:   check.NewHandler(checkSvc),
		Abandon: abandon.NewHandler(sessions, paramSvc, emitter, cfg.AuditEventPrefix),
		Health:  healthhandler.NewHandler(conn),
	})
	srv := server.New(cfg.HTTPAddr, router)

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// let in-flight async audit emits finish before closing providers
	time.Sleep(audit.ShutdownDrainDuration)
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("otel shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
