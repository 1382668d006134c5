package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type config struct {
	dsn       string
	count     int
	startDate string
	months    int
	schema    bool
}

var (
	plates  = []string{"B 9123 TRK", "B 9456 TRK", "D 8821 KL", "F 8110 JK", "B 7754 NT"}
	drivers = []string{"Budi", "Agus", "Slamet", "Joko", "Hendra"}
	origins = []string{"Jakarta", "Surabaya", "Bandung", "Semarang", "Cikarang"}
	dests   = []string{"Medan", "Makassar", "Palembang", "Denpasar", "Balikpapan"}
	states  = []string{"pending", "confirmed", "canceled"}
	sjState = []string{"Belum selesai", "Terkirim", "Diterima", "Selesai"}
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS shipments (
	id BIGSERIAL PRIMARY KEY,
	tanggal DATE,
	nopol TEXT NOT NULL,
	driver TEXT NOT NULL,
	origin TEXT NOT NULL DEFAULT '',
	destinasi TEXT NOT NULL DEFAULT '',
	uj NUMERIC,
	harga NUMERIC,
	status TEXT NOT NULL DEFAULT 'pending',
	status_sj TEXT NOT NULL DEFAULT 'Belum selesai',
	tanggal_update_sj TEXT
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id TEXT PRIMARY KEY,
	actor TEXT,
	role TEXT,
	action TEXT NOT NULL,
	resource_type TEXT,
	resource_id TEXT,
	metadata JSONB,
	payload_digest TEXT,
	ip TEXT,
	user_agent TEXT,
	created_at TIMESTAMPTZ NOT NULL
);
`

func main() {
	cfg := parseConfig()
	if cfg.dsn == "" {
		log.Fatal("PG_DSN or DATABASE_URL is required")
	}
	if cfg.count <= 0 {
		log.Fatal("count must be > 0")
	}
	if cfg.months <= 0 {
		log.Fatal("months must be > 0")
	}

	start, err := time.Parse("2006-01-02", cfg.startDate)
	if err != nil {
		log.Fatalf("invalid start-date: %v", err)
	}

	db, err := sql.Open("pgx", cfg.dsn)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if cfg.schema {
		if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
			log.Fatalf("schema error: %v", err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	inserted := 0
	for i := 0; i < cfg.count; i++ {
		date := start.AddDate(0, rng.Intn(cfg.months), rng.Intn(28))
		uj := float64(500_000 + rng.Intn(2_500_000))
		harga := float64(750_000 + rng.Intn(4_000_000))
		_, err := db.ExecContext(ctx, `
INSERT INTO shipments (tanggal, nopol, driver, origin, destinasi, uj, harga, status, status_sj)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			date.Format("2006-01-02"),
			plates[rng.Intn(len(plates))],
			drivers[rng.Intn(len(drivers))],
			origins[rng.Intn(len(origins))],
			dests[rng.Intn(len(dests))],
			uj, harga,
			states[rng.Intn(len(states))],
			sjState[rng.Intn(len(sjState))],
		)
		if err != nil {
			log.Fatalf("insert error: %v", err)
		}
		inserted++
	}
	fmt.Printf("seeded %d shipments from %s over %d month(s)\n", inserted, start.Format("2006-01-02"), cfg.months)
}

func parseConfig() config {
	cfg := config{}
	flag.StringVar(&cfg.dsn, "dsn", envDefault("PG_DSN", os.Getenv("DATABASE_URL")), "postgres dsn")
	flag.IntVar(&cfg.count, "count", 100, "number of shipments to insert")
	flag.StringVar(&cfg.startDate, "start-date", time.Now().AddDate(0, -2, 0).Format("2006-01-02"), "first shipment date")
	flag.IntVar(&cfg.months, "months", 3, "spread shipments over this many months")
	flag.BoolVar(&cfg.schema, "schema", true, "create tables if missing")
	flag.Parse()
	return cfg
}

func envDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
