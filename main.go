package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hotel-reservation/api"
	"hotel-reservation/cli"
	"hotel-reservation/config"
	"hotel-reservation/hotel"
	"hotel-reservation/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "hotel"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg      *config.Config
		store    string
		seedFile string
		logLevel string
	)

	root := &cobra.Command{
		Use:          serviceName,
		Short:        "Hotel reservation console",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("store") {
				loaded.Store = store
			}
			if flags.Changed("seed") {
				loaded.SeedFile = seedFile
			}
			if flags.Changed("log-level") {
				loaded.Log.Level = logLevel
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cfg, func(mgr *hotel.HotelManager, log *zap.SugaredLogger) error {
				menu := cli.NewMenu(os.Stdin, os.Stdout, mgr, cli.Options{
					MaxAttempts: cfg.Menu.MaxAttempts,
					ClearScreen: cli.IsInteractive(os.Stdin) && cli.IsInteractive(os.Stdout),
				})
				menu.Run()
				return nil
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&store, "store", hotel.StoreMemory, "ledger backend: memory or sqlite")
	pf.StringVar(&seedFile, "seed", "", "JSON file of rooms to load at startup")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the reservation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cfg, func(mgr *hotel.HotelManager, log *zap.SugaredLogger) error {
				return serve(cmd.Context(), cfg.HTTP, mgr, log)
			})
		},
	})

	return root
}

// withManager builds the logger and manager from cfg, seeds rooms and runs fn.
func withManager(cfg *config.Config, fn func(*hotel.HotelManager, *zap.SugaredLogger) error) error {
	log, err := logger.New(serviceName, cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return err
	}
	defer log.Sync()

	log.Infow("startup", "status", "opening ledger", "store", cfg.Store)
	ledger, err := hotel.OpenLedger(cfg.Store)
	if err != nil {
		log.Errorw("startup", "error", err)
		return err
	}

	mgr := hotel.NewHotelManager(hotel.NewCustomerDirectory(), ledger, log)
	defer func() {
		log.Infow("shutdown", "status", "closing ledger", "store", cfg.Store)
		mgr.Close()
	}()

	if cfg.SeedFile != "" {
		n, err := mgr.ImportRooms(cfg.SeedFile)
		if err != nil {
			log.Errorw("startup", "status", "seeding rooms", "error", err)
			return err
		}
		log.Infow("startup", "status", "rooms seeded", "file", cfg.SeedFile, "rooms", n)
	}

	return fn(mgr, log)
}

func serve(ctx context.Context, cfg config.HTTPConfig, mgr *hotel.HotelManager, log *zap.SugaredLogger) error {
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewHandler(mgr, log).Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "api listening", "addr", cfg.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig.String())
	case <-ctx.Done():
		log.Infow("shutdown", "status", "shutdown started", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		server.Close()
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}
	return nil
}
