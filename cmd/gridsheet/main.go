// Package main provides the CLI entry point for gridsheet-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/auth"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

var (
	configPath  string
	storeDriver string
	storePath   string
	userName    string
	password    string
	logLevel    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Edit role-based spreadsheet grids stored per collection",
		Long: `gridsheet-go loads the grid document of a collection, edits it with
the same operations as the editor's context menu, runs filter and sort
views over it, and imports or exports xlsx workbooks.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "gridsheet.yaml", "YAML config file (missing means defaults)")
	flags.StringVar(&storeDriver, "store", "", "Store driver: memory, sqlite, jsonfile (default from config)")
	flags.StringVar(&storePath, "db", "", "sqlite file or jsonfile directory (default from config)")
	flags.StringVarP(&userName, "user", "u", "", "Account name")
	flags.StringVarP(&password, "password", "p", "", "Account password")
	flags.StringVar(&logLevel, "log-level", "", "Log level (default from config)")

	rootCmd.AddCommand(
		newShowCmd(),
		newSetCmd(),
		newApplyCmd(),
		newFilterCmd(),
		newExportCmd(),
		newImportCmd(),
		newAppendRowCmd(),
		newHashPasswordCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is what every command needs: an open store, page options and
// the logged-in role.
type session struct {
	st      store.Store
	opts    gridsheet.Options
	log     *logrus.Logger
	isAdmin bool
}

func newSession() (*session, error) {
	cfg, err := gridsheet.LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	dir, err := auth.NewDirectory(cfg.Users)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	if userName == "" {
		return nil, errors.New("login required: pass --user and --password")
	}
	isAdmin, err := dir.Login(userName, password)
	if err != nil {
		return nil, fmt.Errorf("login %q: %w", userName, err)
	}

	driver, path := cfg.Store.Driver, cfg.Store.Path
	if storeDriver != "" {
		driver = storeDriver
	}
	if storePath != "" {
		path = storePath
	}
	st, err := store.Open(driver, path)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"user": userName, "admin": isAdmin, "store": driver}).Debug("session opened")
	return &session{st: st, opts: cfg.Options(log), log: log, isAdmin: isAdmin}, nil
}

func (s *session) open(ctx context.Context, collection string) (*gridsheet.Page, error) {
	return gridsheet.Open(ctx, s.st, collection, s.isAdmin, s.opts)
}

func (s *session) close() {
	if err := s.st.Close(); err != nil {
		s.log.WithError(err).Warn("close store")
	}
}

// withSession opens a session around run.
func withSession(run func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()
		return run(cmd.Context(), s, args)
	}
}
