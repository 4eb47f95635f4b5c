package main

import (
	"blog-server/confs"
	"blog-server/db"
	"blog-server/server"
	"log"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv, err := server.NewServer(database, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	srv.Start()
}
