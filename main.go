package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/prompt-battle/cliparse"
	"github.com/danielhkuo/prompt-battle/db"
	"github.com/danielhkuo/prompt-battle/middleware"
	"github.com/danielhkuo/prompt-battle/router"
	"github.com/danielhkuo/prompt-battle/store"
)

func main() {
	var err error

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the snapshot backend
	var persister store.Persister
	switch cfg.StoreType {
	case cliparse.StoreSQLite, cliparse.StorePostgres:
		dbConn, err := db.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.StoreType)

		persister = store.NewSQLPersister(dbConn)
	default:
		fp := store.NewFilePersister(cfg.DataFile)
		slog.Info("Using file store", "path", fp.Path())
		persister = fp
	}

	submissions := store.New(persister, store.Options{ReloadOnWrite: cfg.ReloadOnWrite})

	// Create router
	mux := router.NewRouter(submissions, cfg)

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
	slog.Info("Listening", "port", cfg.Port, "submissions", submissions.Count())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
