package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exzerolog"

	"github.com/beeper/file-analysis-mcp/pkg/config"
	"github.com/beeper/file-analysis-mcp/pkg/localfs"
	"github.com/beeper/file-analysis-mcp/pkg/server"
	"github.com/beeper/file-analysis-mcp/pkg/tokens"
	"github.com/beeper/file-analysis-mcp/pkg/tools"
)

// Information to find out exactly which commit the server was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file (YAML or JSON5)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("file-analysis-mcp %s (%s, built %s)\n", Tag, Commit, BuildTime)
		return
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("FILE_ANALYSIS_MCP_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging.Level)
	exzerolog.SetupDefaults(&log)

	fsys := &localfs.FS{
		Root:        cfg.Files.Root,
		MaxFileSize: cfg.Files.MaxFileSizeBytes,
	}
	deps := tools.Deps{
		DefaultTopWords: cfg.Analysis.TopWords,
		FS:              fsys,
	}
	if cfg.Analysis.TokenizerEnabled() {
		deps.Tokens = tokens.NewCounter()
	}
	registry := tools.DefaultRegistry(deps)

	srv := server.New(cfg, registry, fsys, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("session_id", uuid.NewString()).
		Str("tag", Tag).
		Str("commit", Commit).
		Msg("file-analysis-mcp initialized")

	err = srv.Run(ctx)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info().Msg("Client disconnected, shutting down")
	default:
		log.Fatal().Err(err).Msg("Server error")
	}
}

// newLogger builds the process logger. Output goes to stderr because
// stdout carries the MCP protocol.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}
