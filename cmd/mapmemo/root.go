package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mapmemo/internal/notes/adapters/storage"
	"mapmemo/internal/notes/app"
	"mapmemo/internal/notes/config"
	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/logger"
	"mapmemo/pkg/shutdown"
)

// Константы для сообщений logger.
const (
	LogStorageOpened = "notes storage opened"
	LogStorageClosed = "notes storage closed"

	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCloseStorage         = "failed to close notes storage"
)

const debugLevel = "debug"

// annotationStore помечает команды, которым нужно открытое хранилище.
const annotationStore = "mapmemo.store"

// cli хранит состояние одного запуска: флаги, конфигурацию и открытое хранилище.
type cli struct {
	envFile string
	verbose bool
	now     func() time.Time

	cfg    *config.Config
	blobs  repositories.BlobStore
	store  *app.NoteStore
	cancel context.CancelFunc
}

func newCLI() *cli {
	return &cli{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "mapmemo",
		Short: "Short notes pinned to geographic coordinates",
		Long: `mapmemo keeps a collection of geo-tagged notes as a single blob
in a file, Redis or PostgreSQL backend chosen by MAPMEMO_STORAGE_BACKEND.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "Read configuration from this .env file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{
		newCreateCmd(c),
		newListCmd(c),
		newShowCmd(c),
		newEditCmd(c),
		newDeleteCmd(c),
		newSearchCmd(c),
	} {
		cmd.Annotations = map[string]string{annotationStore: "true"}
		root.AddCommand(cmd)
	}

	return root
}

// open загружает конфигурацию, перенастраивает logger и открывает хранилище.
// Служебные команды cobra (help, completion) хранилище не открывают.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationStore] == "" {
		return nil
	}

	ctx := cmd.Context()

	cfg, err := config.Load(ctx, c.envFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if c.verbose {
		level = debugLevel
	}

	log, err := logger.NewLogger(cfg.Logging.GetEnvironment(), level)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(log)
	ctx = logger.NewContext(ctx, log)

	ctx, c.cancel = context.WithTimeout(ctx, cfg.Storage.Timeout)
	cmd.SetContext(ctx)

	blobs, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.blobs = blobs
	c.store = app.NewNoteStore(blobs, cfg.Storage.Key)

	log.Debug(ctx, LogStorageOpened,
		zap.String("backend", cfg.Storage.Backend),
		zap.String("key", c.store.Key()))

	return nil
}

// close закрывает хранилище, если оно было открыто.
func (c *cli) close(ctx context.Context) error {
	if c.cancel != nil {
		defer c.cancel()
	}
	if c.blobs == nil {
		return nil
	}

	err := shutdown.Run(c.cfg.Storage.Timeout, func(context.Context) error {
		return c.blobs.Close()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCloseStorage, err)
	}

	logger.Log(ctx).Debug(ctx, LogStorageClosed)
	return nil
}

// run выполняет одну команду и возвращает код завершения процесса.
func run(ctx context.Context, c *cli, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	if closeErr := c.close(ctx); closeErr != nil {
		logger.Log(ctx).Error(ctx, ErrCloseStorage, zap.Error(closeErr))
		if err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return 1
	}
	return 0
}
