package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"academia/internal/adapters/email"
	"academia/internal/adapters/http/middleware"
	"academia/internal/adapters/http/perf"
	accountStore "academia/internal/adapters/storage/account"
	categoryStore "academia/internal/adapters/storage/category"
	registrationStore "academia/internal/adapters/storage/registration"
	scheduleStore "academia/internal/adapters/storage/schedule"
	venueStore "academia/internal/adapters/storage/venue"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore      accountStore.Store
	VenueStore        venueStore.Store
	CategoryStore     categoryStore.Store
	ScheduleStore     scheduleStore.Store
	RegistrationStore registrationStore.Store
}

// loadCSRFKey reads the CSRF secret from ACADEMIA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("ACADEMIA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ACADEMIA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("ACADEMIA_ENV") == "production" {
		log.Fatal("ACADEMIA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set ACADEMIA_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var notifyAddresses []string

// SetEmailSender sets the global email sender for registration notifications.
func SetEmailSender(sender email.Sender, from string, notifyTo []string) {
	emailSender = sender
	emailFromAddress = from
	notifyAddresses = notifyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("ACADEMIA_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
