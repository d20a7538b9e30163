package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joshuahur/term_weight_engine/config"
	"github.com/joshuahur/term_weight_engine/internal/extractor"
	"github.com/joshuahur/term_weight_engine/internal/weighting"
)

func main() {
	var (
		configFile = flag.String("config", "termweight.yaml", "Path to configuration file")
		mode       = flag.String("mode", "all", "Mode: tokenize, weight or all")
		importDir  = flag.String("import", "", "Override the import directory")
		exportDir  = flag.String("export", "", "Override the export directory")
		stoplist   = flag.String("stoplist", "", "Override the stoplist file")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Printf("Failed to load configuration from %s: %v", *configFile, err)
		log.Println("Using default configuration...")
		cfg = config.GetDefaultConfig()
	}
	if *importDir != "" {
		cfg.ImportDir = *importDir
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}
	if *stoplist != "" {
		cfg.Stoplist = *stoplist
	}

	if _, err := os.Stat(cfg.ImportDir); err != nil {
		log.Fatalf("Import directory %s does not exist", cfg.ImportDir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	switch *mode {
	case "tokenize":
		ext := extractor.NewExtractor(cfg.ImportDir, cfg.ExportDir, &cfg.Extractor)
		if err := ext.Run(ctx); err != nil {
			log.Fatalf("Tokenize stage failed: %v", err)
		}

	case "weight":
		requireStoplist(cfg.Stoplist)
		pipeline := weighting.NewPipeline(cfg.ImportDir, cfg.ExportDir, cfg.Stoplist, &cfg.Weighting)
		if err := pipeline.Run(ctx); err != nil {
			log.Fatalf("Weighting stage failed: %v", err)
		}

	case "all":
		requireStoplist(cfg.Stoplist)
		ext := extractor.NewExtractor(cfg.ImportDir, cfg.ExportDir, &cfg.Extractor)
		if err := ext.Run(ctx); err != nil {
			log.Fatalf("Tokenize stage failed: %v", err)
		}
		// The weighting stage consumes the frequency files the extractor
		// just wrote.
		pipeline := weighting.NewPipeline(cfg.ExportDir, cfg.ExportDir, cfg.Stoplist, &cfg.Weighting)
		if err := pipeline.Run(ctx); err != nil {
			log.Fatalf("Weighting stage failed: %v", err)
		}

	default:
		log.Fatalf("Unknown mode: %s. Use tokenize, weight or all.", *mode)
	}
}

func requireStoplist(path string) {
	if _, err := os.Stat(path); err != nil {
		log.Fatalf("Stoplist file %s does not exist", path)
	}
}
