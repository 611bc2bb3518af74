// ironlog-backup exports, imports, or wipes the workout database from the
// command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/zacharyschulte/ironlog/internal/config"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults when empty)")
	out := flag.String("out", "", "export: write backup JSON here (- for stdout)")
	in := flag.String("in", "", "import: read backup JSON from here")
	reset := flag.Bool("reset", false, "erase all stored data")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	modes := 0
	for _, set := range []bool{*out != "", *in != "", *reset} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintf(os.Stderr, "Usage: ironlog-backup [-config config.yaml] (-out backup.json | -in backup.json | -reset)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	switch {
	case *out != "":
		backup, err := storage.Export(ctx, store)
		if err != nil {
			log.Error("export failed", "error", err)
			os.Exit(1)
		}
		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			log.Error("encoding backup failed", "error", err)
			os.Exit(1)
		}
		if *out == "-" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(*out, data, 0o600); err != nil {
			log.Error("writing backup failed", "path", *out, "error", err)
			os.Exit(1)
		}
		log.Info("export complete", "path", *out)

	case *in != "":
		data, err := os.ReadFile(*in)
		if err != nil {
			log.Error("reading backup failed", "path", *in, "error", err)
			os.Exit(1)
		}
		if err := storage.Import(ctx, store, data); err != nil {
			log.Error("import failed", "error", err)
			os.Exit(1)
		}
		log.Info("import complete", "path", *in)

	case *reset:
		if err := storage.Reset(ctx, store); err != nil {
			log.Error("reset failed", "error", err)
			os.Exit(1)
		}
		log.Info("all data erased")
	}
}
