package main

import (
	"log"

	"github.com/foodlinkai/foodlink-backend/internal/config"
	"github.com/foodlinkai/foodlink-backend/internal/db"
	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	srv := server.New(cfg, nil)
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Connect in the background so /health answers even while the store is
	// still coming up.
	go func() {
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(&model.Item{}, &model.PaymentEvent{}); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
