// Package main provides the CLI entrypoint for autocorrectd.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anselmlong/autocorrect/internal/adminapi"
	"github.com/anselmlong/autocorrect/internal/config"
	"github.com/anselmlong/autocorrect/internal/dictionary"
	"github.com/anselmlong/autocorrect/internal/engine"
	"github.com/anselmlong/autocorrect/internal/updater"
	"github.com/anselmlong/autocorrect/pkg/symspell"
	"github.com/anselmlong/autocorrect/pkg/symspell/options"
)

const version = "0.1.0"

var (
	flagDisabled    bool
	flagDictionary  string
	flagConsole     bool
	flagCheckUpdate bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitErr carries the exit code spec §6 assigns to a failure: 1 for an
// unrecoverable startup failure, 2 for an invalid argument.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }

func exitCodeFor(err error) int {
	if ee, ok := err.(*exitErr); ok {
		return ee.code
	}
	return 1
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "autocorrectd",
		Short:         "Background keystroke autocorrect daemon",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}
	cmd.Flags().BoolVar(&flagDisabled, "disabled", false, "start with autocorrect disabled")
	cmd.Flags().StringVar(&flagDictionary, "dictionary", "", "path to a user-supplied dictionary file")
	cmd.Flags().BoolVar(&flagConsole, "console", false, "log to stderr at debug level instead of the default logger")
	cmd.Flags().BoolVar(&flagCheckUpdate, "check-update", false, "check for an available update and exit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitErr{code: 2, err: err}
	})
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(flagConsole)
	if err != nil {
		return &exitErr{code: 1, err: fmt.Errorf("failed to initialise logger: %w", err)}
	}
	defer func() { _ = log.Sync() }()
	sugar := log.Sugar()

	if flagCheckUpdate {
		return runCheckUpdate(cmd.Context(), sugar)
	}

	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		sugar.Warnw("config parse error, using defaults", "error", err)
	}

	if flagDictionary != "" {
		if _, statErr := os.Stat(flagDictionary); statErr != nil {
			return &exitErr{code: 2, err: fmt.Errorf("--dictionary %s: %w", flagDictionary, statErr)}
		}
	}

	hotkey, err := engine.ParseHotkey(cfg.HotkeyToggle)
	if err != nil {
		sugar.Warnw("invalid hotkey_toggle in config, falling back to default", "value", cfg.HotkeyToggle, "error", err)
		hotkey, _ = engine.ParseHotkey(config.Default().HotkeyToggle)
	}

	personalPath := config.DefaultPersonalDictionaryPath()
	loader := dictionary.NewLoader(sugar, newRemoteStore())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	entries, err := loader.Load(ctx, flagDictionary, personalPath)
	if err != nil {
		sugar.Warnw("dictionary load degraded, continuing with fallback entries", "error", err)
	}

	ix, err := symspell.Build(entries, options.WithMaxEditDistance(cfg.MaxEditDistance))
	if err != nil {
		return &exitErr{code: 1, err: fmt.Errorf("failed to build spell index: %w", err)}
	}

	hook, sink, focus := newPlatform()

	eng := engine.New(engine.Config{
		MaxEditDistance:  cfg.MaxEditDistance,
		UndoTimeout:      time.Duration(cfg.UndoTimeoutSeconds) * time.Second,
		ToggleHotkey:     hotkey,
		EnabledByDefault: cfg.EnabledByDefault && !flagDisabled,
	}, sink, focus, sugar)
	eng.SetIndex(ix)
	defer eng.Shutdown()

	if err := hook.Install(eng.HandleKeyEvent); err != nil {
		return &exitErr{code: 1, err: fmt.Errorf("failed to install keyboard hook: %w", err)}
	}
	defer func() { _ = hook.Uninstall() }()

	if cfg.AutoCheckUpdates {
		go checkUpdateInBackground(ctx, sugar)
	}

	srv := adminapi.New(loader, eng, personalPath, sugar)
	httpSrv := &http.Server{Handler: srv.Handler()}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return &exitErr{code: 1, err: fmt.Errorf("failed to open admin listener: %w", err)}
	}
	go func() {
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			sugar.Warnw("admin server stopped", "error", serveErr)
		}
	}()
	defer func() { _ = httpSrv.Close() }()

	sugar.Infow("autocorrectd started", "admin_addr", listener.Addr().String(), "words", ix.WordCount())

	<-ctx.Done()
	sugar.Infow("shutting down")
	return nil
}

func runCheckUpdate(ctx context.Context, log *zap.SugaredLogger) error {
	checker := updater.NopChecker{}
	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		return &exitErr{code: 1, err: fmt.Errorf("update check failed: %w", err)}
	}
	if info == nil {
		log.Infow("no update available")
		return nil
	}
	log.Infow("update available", "version", info.Version, "url", info.DownloadURL)
	return nil
}

func checkUpdateInBackground(ctx context.Context, log *zap.SugaredLogger) {
	checker := updater.NopChecker{}
	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		log.Debugw("background update check failed", "error", err)
		return
	}
	if info != nil {
		log.Infow("update available", "version", info.Version, "url", info.DownloadURL)
	}
}

func newLogger(console bool) (*zap.Logger, error) {
	if console {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	path := logFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	return cfg.Build()
}

func logFilePath() string {
	dir := filepath.Dir(config.DefaultConfigPath())
	return filepath.Join(dir, "autocorrectd.log")
}

// newRemoteStore builds the optional Redis-backed personal-dictionary
// mirror when REDIS_ADDR is set, mirroring the teacher's own
// getenv/getEnvInt environment-variable overrides for its Redis client.
// Returns nil (no mirror) when REDIS_ADDR is unset, which dictionary.Loader
// and internal/dictionary.RemoteStore both treat as a no-op.
func newRemoteStore() *dictionary.RemoteStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	return dictionary.NewRemoteStore(client)
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

