package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/agriquote/server/cliparse"
	"github.com/agriquote/server/db"
	"github.com/agriquote/server/middleware"
	"github.com/agriquote/server/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the proposal store
	conn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Register all logical databases; the registry owns the handles
	// from here until shutdown.
	registry := db.NewRegistry()
	registry.Register(db.ProposalsDB, conn)
	defer registry.Close()

	if cfg.ReportingDatabaseURL != "" {
		reporting, err := sql.Open("postgres", cfg.ReportingDatabaseURL)
		if err != nil {
			slog.Error("reporting database open failed", "error", err)
		} else {
			registry.Register(db.ReportingDB, reporting)
			slog.Info("reporting database registered")
		}
	}

	// Create schema (tables). A failure is logged, not fatal: the
	// service starts and individual data operations fail on their own.
	if err := db.CreateSchema(conn); err != nil {
		slog.Warn("schema creation failed", "error", err)
	} else {
		slog.Info("Database schema ready")
	}

	// Create router
	mux := router.NewRouter(conn, registry, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
