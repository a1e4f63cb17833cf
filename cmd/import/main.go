package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oklog/ulid/v2"

	"arc-checkin/internal/checkin"
	"arc-checkin/internal/mysqlstore"
	"arc-checkin/internal/platform/config"
	"arc-checkin/internal/platform/db"
	"arc-checkin/internal/sheetstore"
)

// Bulk attendee import. The CSV carries the registration export:
// id,phone,name,course_name,course_date,course_type — header row first.
// status and check_in_time always start empty; blank ids are minted.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	csvPath := flag.String("csv", "", "path to attendee CSV")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("[ERROR] -csv is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}

	rows, err := readAttendeeCSV(*csvPath)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	ctx := context.Background()
	switch cfg.Store {
	case "sheet":
		store := sheetstore.New(cfg.Sheet.Path, cfg.Sheet.SheetName)
		for _, row := range rows {
			if err := store.AppendRow(ctx, row); err != nil {
				log.Fatalf("[ERROR] append %s: %v", row[checkin.ColID], err)
			}
		}
	case "mysql":
		conn, err := db.Connect(cfg.DB)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		defer conn.Close()

		// all-or-nothing: a half-imported table is worse than none
		err = db.RunInTx(ctx, conn, nil, func(ctx context.Context, tx db.DBTX) error {
			store := mysqlstore.New(tx)
			for _, row := range rows {
				if err := store.AppendRow(ctx, row); err != nil {
					return fmt.Errorf("append %s: %w", row[checkin.ColID], err)
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
	default:
		log.Fatalf("[ERROR] unknown store backend %q", cfg.Store)
	}

	log.Printf("[INFO] imported %d attendees", len(rows))
}

func readAttendeeCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var rows [][]string
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < checkin.ColCourseType+1 {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, checkin.ColCourseType+1, len(rec))
		}

		id := rec[checkin.ColID]
		if id == "" {
			id = ulid.Make().String()
		}

		rows = append(rows, []string{
			id,
			checkin.NormalizePhone(rec[checkin.ColPhone]),
			rec[checkin.ColName],
			rec[checkin.ColCourseName],
			rec[checkin.ColCourseDate],
			rec[checkin.ColCourseType],
			"", // status
			"", // check_in_time
		})
	}
	return rows, nil
}
