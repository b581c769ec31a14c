package main

import (
	"errors"
	"log"
	"net/http"

	adapthttp "weighttrack/internal/adapter/http"
	"weighttrack/internal/adapter/postgres"
	"weighttrack/internal/app"
	"weighttrack/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	tokens := app.NewTokenService([]byte(cfg.SecretKey), cfg.TokenTTL)
	authSvc := app.NewAuthService(db, tokens)
	weightSvc := app.NewWeightService(db)

	h := adapthttp.New(authSvc, weightSvc).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
