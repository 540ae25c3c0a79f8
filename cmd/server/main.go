package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "academia/internal/adapters/email"
	web "academia/internal/adapters/http"
	"academia/internal/adapters/http/perf"
	"academia/internal/adapters/storage"
	accountStore "academia/internal/adapters/storage/account"
	categoryStore "academia/internal/adapters/storage/category"
	registrationStore "academia/internal/adapters/storage/registration"
	scheduleStore "academia/internal/adapters/storage/schedule"
	venueStore "academia/internal/adapters/storage/venue"
	"academia/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Local development reads env vars from a .env file; missing is fine
	_ = godotenv.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("ACADEMIA_DB", "academia.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	vStore := venueStore.NewSQLiteStore(timedDB)
	cStore := categoryStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:      acctStore,
		VenueStore:        vStore,
		CategoryStore:     cStore,
		ScheduleStore:     scheduleStore.NewSQLiteStore(timedDB),
		RegistrationStore: registrationStore.NewSQLiteStore(timedDB),
	}

	// Seed the default venues and age categories on first run
	ctx := context.Background()
	if err := orchestrators.ExecuteSeedAcademy(ctx, orchestrators.SeedAcademyDeps{
		VenueStore:    vStore,
		CategoryStore: cStore,
	}); err != nil {
		log.Fatalf("failed to seed venues and categories: %v", err)
	}

	// Seed the admin login when configured; skipped silently otherwise
	adminEmail := os.Getenv("ACADEMIA_ADMIN_EMAIL")
	adminPassword := os.Getenv("ACADEMIA_ADMIN_PASSWORD")
	if err := orchestrators.ExecuteSeedAdminAccount(ctx, adminEmail, adminPassword, acctStore); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	// Configure email sender for registration notifications
	resendKey := os.Getenv("ACADEMIA_RESEND_KEY")
	emailFrom := envOrDefault("ACADEMIA_RESEND_FROM", "Academia Orizaba <noreply@academiaorizaba.mx>")
	notifyTo := splitAddresses(os.Getenv("ACADEMIA_NOTIFY_TO"))
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, notifyTo)
		if os.Getenv("ACADEMIA_ENV") == "production" {
			log.Println("WARNING: ACADEMIA_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set ACADEMIA_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + perf endpoint)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("ACADEMIA_ADDR", ":8080")
	log.Printf("Academia %s starting on %s (env=%s)", version, addr, envOrDefault("ACADEMIA_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitAddresses parses a comma-separated address list, dropping empties.
func splitAddresses(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
