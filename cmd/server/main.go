package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harrylevesque/qrverify/internal/api"
	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/certs"
	"github.com/harrylevesque/qrverify/internal/config"
	"github.com/harrylevesque/qrverify/internal/crypto"
	"github.com/harrylevesque/qrverify/internal/files"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/portal"
	"github.com/harrylevesque/qrverify/internal/session"
	"github.com/harrylevesque/qrverify/internal/utils"
)

// certWarnWithin is how far ahead an expiring TLS certificate is warned about.
const certWarnWithin = 30 * 24 * time.Hour

var (
	configPath string
	addrFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "qrverify-server",
	Short:         "Product serial verification portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address, overrides server.addr")
	rootCmd.AddCommand(datasetCmd)
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadDotEnv loads path into the environment. A missing file is fine; a
// malformed one is not.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(utils.ResolvePath(configPath))
	if err != nil {
		return nil, err
	}
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}
	return cfg, cfg.Validate()
}

// loadCatalog returns the configured dataset, or the built-in sample when no
// dataset file is configured. The store is nil for the sample.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, *files.CatalogStore, error) {
	if cfg.Dataset.Path == "" {
		return catalog.MustSample(), nil, nil
	}
	store := files.NewCatalogStore(utils.ResolvePath(cfg.Dataset.Path))
	ds, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	c, err := catalog.New(ds)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %s: %w", store.Path(), err)
	}
	return c, store, nil
}

// masterKey returns the configured master key or, failing that, a random one
// that only lives as long as the process.
func masterKey(cfg *config.Config, logger *zap.Logger) ([]byte, error) {
	key, err := files.ReadMasterKey(utils.ResolvePath(cfg.Session.KeyFile))
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, files.ErrNoMasterKey) {
		return nil, err
	}
	logger.Warn("no master key configured, using an ephemeral key; sessions end on restart",
		zap.String("env", files.MasterKeyEnv), zap.String("key_file", cfg.Session.KeyFile))
	return crypto.RandomBytes(files.MasterKeySize)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cat, catStore, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	bundle, err := i18n.NewBundle(cfg.Portal.Languages, cfg.Portal.DefaultLang)
	if err != nil {
		return err
	}
	master, err := masterKey(cfg, logger)
	if err != nil {
		return err
	}
	keys, err := crypto.DeriveCookieKeys(master)
	if err != nil {
		return err
	}

	store := session.NewStore(cfg.Session.TTL, portal.NewState)
	sessions := session.NewManager(store, session.NewCookieStore(keys, cfg.Session.Secure), cfg.Session.CookieName)
	p := portal.New(cat, portal.Options{
		Delay:         cfg.Activation.Delay,
		FlashDuration: cfg.Portal.FlashDuration,
		RequirePIN:    cfg.Verification.RequirePIN,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(api.NewHandler(p, bundle, sessions, logger)),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}
	if cfg.Server.TLSCert != "" {
		cm := certs.NewCertManager(utils.ResolvePath(cfg.Server.TLSCert), utils.ResolvePath(cfg.Server.TLSKey))
		tlsCfg, leaf, err := cm.TLSConfig()
		if err != nil {
			return err
		}
		if cm.ExpiresWithin(leaf, certWarnWithin) {
			logger.Warn("TLS certificate expires soon", zap.Time("not_after", leaf.NotAfter))
		}
		srv.TLSConfig = tlsCfg
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("tls", srv.TLSConfig != nil),
			zap.Int("codes", cat.Len()),
			zap.Strings("languages", cfg.Portal.Languages))
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return store.RunJanitor(gctx, cfg.Session.JanitorInterval, func(n int) {
			logger.Debug("expired sessions swept", zap.Int("count", n), zap.Int("live", store.Len()))
		})
	})
	if catStore != nil && cfg.Dataset.Watch {
		g.Go(func() error {
			return catalog.NewWatcher(cat, catStore, logger).Run(gctx)
		})
	}
	return g.Wait()
}
