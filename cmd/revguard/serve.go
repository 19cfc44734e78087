package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/revguard/internal/config"
	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/exitcode"
	"github.com/gyeh/revguard/internal/logging"
	"github.com/gyeh/revguard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analytics HTTP API",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.ListenAddr, "listen", "", "HTTP listen address (default "+config.DefaultListenAddr+")")
	f.IntVar(&cfg.MaxUploadMB, "max-upload-mb", 0, "Upload size limit in MB")
	f.BoolVar(&cfg.Force, "force", false, "Accept re-uploads even when the archive SHA matches the current dataset")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.ValidateServe(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	store := dataset.NewStore(cfg.DataDir, log)
	srv := server.New(store, log, &cfg)

	log.Info().
		Str("listen", cfg.ListenAddr).
		Str("data_dir", cfg.DataDir).
		Msg("starting revguard API")

	if err := srv.Router().Run(cfg.ListenAddr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(exitcode.ServeError)
	}
	return nil
}
