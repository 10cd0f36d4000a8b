package main

import (
	"context"
	"fmt"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/config"
	"github.com/Jumpaku/go-gdrive/internal/logging"
	"github.com/Jumpaku/go-gdrive/provider"
	"github.com/Jumpaku/go-gdrive/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by the commands.
type app struct {
	fs         afero.Fs
	configFile string
	debug      bool

	cfg    *config.Config
	logger *zap.Logger

	// openDrive opens the storage once the configuration is loaded.
	openDrive func(ctx context.Context) (gdrive.Drive, error)
}

func newApp() *app {
	a := &app{fs: afero.NewOsFs(), logger: zap.NewNop()}
	a.openDrive = a.openConfiguredDrive
	return a
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gdrive",
		Short: "Manage files of a Google Drive folder",
		Long: `gdrive uploads, streams, renames, lists and deletes files in a Google Drive folder
through a service account, and can serve the same operations over HTTP.

Configuration is read from gdrive.yaml, .env and GDRIVE_* environment variables:
  GDRIVE_FOLDER_ID             default folder of every command
  GDRIVE_SERVICE_ACCOUNT_JSON  path of the service account credentials
  GDRIVE_LISTEN_ADDR           address of the serve command
  GDRIVE_LOG_LEVEL             debug, info, warn or error
  GDRIVE_LOG_FORMAT            json or console`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(
		newPutCmd(a),
		newMkdirCmd(a),
		newFindCmd(a),
		newLsCmd(a),
		newRenameCmd(a),
		newGetCmd(a),
		newRmCmd(a),
		newShareCmd(a),
		newUnshareCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.fs, a.configFile)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: "stderr"})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

func (a *app) openConfiguredDrive(ctx context.Context) (gdrive.Drive, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	creds, err := config.ReadCredentials(a.fs, a.cfg.ServiceAccountJSON)
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, provider.DriverName, storage.Config{
		FolderID:    a.cfg.FolderID,
		Credentials: creds,
		Logger:      a.logger,
	})
}
