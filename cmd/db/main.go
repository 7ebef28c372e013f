package main

import (
	"flag"
	"log"
	"os"

	"word-cliques/internal/cache"
)

func main() {
	reset := flag.Bool("reset", false, "Drop all cached completions and run records before reporting")
	flag.Parse()

	dbPath := getDBPath()
	log.Printf("Opening cache database at: %s", dbPath)

	if *reset {
		log.Println("Resetting cache database...")
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove database: %v", err)
		}
	}

	store, err := cache.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open cache database: %v", err)
	}
	defer store.Close()

	entries, err := store.CountEntries("")
	if err != nil {
		log.Fatalf("Failed to count cache entries: %v", err)
	}

	runs, err := store.CountRuns()
	if err != nil {
		log.Fatalf("Failed to count runs: %v", err)
	}

	log.Printf("Cache ready: %d completion entries, %d recorded runs", entries, runs)
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./wordcliques.db"
	}
	return dbPath
}
