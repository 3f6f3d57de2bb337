package main

import (
	"context"
	"flag"
	"log"
	"os"

	"kaloltsavam-backend/database"
	"kaloltsavam-backend/results"

	"github.com/joho/godotenv"
)

// One-shot bulk import for results files, sharing the same decode/validate
// pipeline as the admin upload endpoint. Invalid rows are skipped and listed;
// valid rows are written one insert at a time.
func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var (
		filePath = flag.String("file", "", "Path to a .csv, .xlsx or .xls results file")
		dryRun   = flag.Bool("dry-run", false, "Validate only, write nothing")
	)
	flag.Parse()

	if *filePath == "" {
		log.Fatal("--file is required")
	}

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer file.Close()

	rows, err := results.DecodeUpload(file, *filePath)
	if err != nil {
		log.Fatalf("decode upload: %v", err)
	}

	valid, rejected := results.ValidateRows(rows)
	for _, msg := range results.FlattenErrors(rejected) {
		log.Println(msg)
	}
	log.Printf("%d valid rows, %d rejected rows", len(valid), len(rejected))

	if *dryRun || len(valid) == 0 {
		return
	}

	database.ConnectDB()
	if err := database.CreateSchema(database.DB); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	store := results.NewPostgresStore(database.DB)

	ctx := context.Background()
	imported := 0
	for i, row := range valid {
		rank := row.Rank
		_, err := store.Create(ctx, results.NewResult{
			ParticipantID:   row.ParticipantID,
			ParticipantName: row.Name,
			Event:           row.Event,
			Time:            row.Score,
			Rank:            &rank,
		})
		if err != nil {
			log.Printf("row %d (%s): %v", i+1, row.ParticipantID, err)
			continue
		}
		imported++
	}

	log.Printf("imported %d of %d rows", imported, len(valid))
}
