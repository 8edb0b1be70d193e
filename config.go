package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

type Config struct {
	bind           string
	databaseURL    string
	insecure       bool
	port           int
	prefix         string
	profile        bool
	redisURL       string
	sessionTimeout time.Duration
	store          string
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.sessionTimeout <= 0 {
		return fmt.Errorf("invalid session timeout (must be positive): %s", c.sessionTimeout)
	}

	switch c.store {
	case storeMemory:
	case storeRedis:
		if c.redisURL == "" {
			return errors.New("--redis-url is required when --store=redis")
		}
	case storePostgres:
		if c.databaseURL == "" {
			return errors.New("--database-url is required when --store=postgres")
		}
	default:
		return fmt.Errorf("invalid store (must be one of %s, %s, %s): %q", storeMemory, storeRedis, storePostgres, c.store)
	}

	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CODENAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "codenames",
		Short:         "Serves the Codenames word-guessing party game over HTTP and websockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: CODENAMES_BIND)")
	fs.StringVar(&cfg.databaseURL, "database-url", "", "postgres connection string, for --store=postgres (env: CODENAMES_DATABASE_URL)")
	fs.BoolVar(&cfg.insecure, "insecure", false, "issue player cookies without the Secure attribute (env: CODENAMES_INSECURE)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: CODENAMES_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: CODENAMES_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: CODENAMES_PROFILE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection URL, for --store=redis (env: CODENAMES_REDIS_URL)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle games are removed (env: CODENAMES_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.store, "store", storeMemory, "where games are kept: memory, redis or postgres (env: CODENAMES_STORE)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: CODENAMES_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: CODENAMES_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: CODENAMES_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: CODENAMES_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("codenames v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
