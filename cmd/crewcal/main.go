package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"crewcal/internal/config"
	"crewcal/internal/importer"
	"crewcal/internal/model"
	"crewcal/internal/server"
	"crewcal/internal/store"
	"crewcal/internal/util"
)

var (
	port     = flag.Int("port", 0, "server port (overrides config.toml)")
	devMode  = flag.Bool("dev", false, "development mode")
	dataDir  = flag.String("dataDir", "", "data directory (overrides config.toml)")
	filePath = flag.String("file", "", "import this workbook and exit instead of serving HTTP")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("load config failed, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if *filePath != "" {
		if err := runImport(cfg, *filePath); err != nil {
			log.Fatal(err)
		}
		return
	}

	serve(cfg)
}

// runImport executes one headless import and prints the rendered summary.
func runImport(cfg *config.AppConfig, path string) error {
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	dbStore, err := store.New(filepath.Join(dataDir, "crewcal.db"))
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer dbStore.Close()

	registry, err := dbStore.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	coordinator := importer.NewCoordinator(dbStore, registry, importer.Options{
		FilePath:       path,
		Status:         model.ProjectStatus(cfg.Import.ProjectStatus),
		TravelOutDays:  cfg.Import.TravelOutDays,
		TravelBackDays: cfg.Import.TravelBackDays,
		Filter:         cfg.Import.CellFilter(),
		OnProgress: func(ev importer.ProgressEvent) {
			if ev.Type == "sheet_start" {
				log.Printf("worksheet: %s", ev.Message)
			}
		},
	})

	result, runErr := coordinator.Run()
	fmt.Print(importer.RenderSummary(result))
	return runErr
}

func serve(cfg *config.AppConfig) {
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			log.Printf("open browser failed, visit %s manually", url)
		}
	} else {
		log.Printf("dev mode: visit %s", url)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := srv.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
}
