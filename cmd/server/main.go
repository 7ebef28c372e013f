package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"word-cliques/internal/api"
	"word-cliques/internal/cache"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	dbPath := getDBPath()
	log.Printf("Connecting to cache database: %s", dbPath)
	store, err := cache.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open cache database: %v", err)
	}
	defer store.Close()

	server := api.NewServer(store)

	s := &http.Server{
		Addr:    *addr,
		Handler: server.Routes(),
	}

	fmt.Printf("Starting server on %s\n", *addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./wordcliques.db"
	}
	return dbPath
}
