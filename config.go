/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Seednode/jeopardy/jeopardy"
)

type Config struct {
	bind           string
	port           int
	prefix         string
	profile        bool
	questions      string
	sessionTimeout time.Duration
	teams          int
	terminal       bool
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool

	layout jeopardy.Layout
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.teams < c.layout.MinNumTeams || c.teams > c.layout.MaxNumTeams {
		return fmt.Errorf("invalid team count (must be between %d-%d inclusive): %d",
			c.layout.MinNumTeams, c.layout.MaxNumTeams, c.teams)
	}
	if c.questions == "" {
		return errors.New("--questions must point to a question file")
	}
	if _, err := os.Stat(c.questions); err != nil {
		return fmt.Errorf("unable to read question file: %w", err)
	}
	if _, err := jeopardy.LoadQuestionSet(c.questions); err != nil {
		return fmt.Errorf("%s: %w", c.questions, err)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// gameOptions returns the settings every new game session starts from.
func (c *Config) gameOptions() jeopardy.Options {
	return jeopardy.Options{
		Layout:       c.layout,
		QuestionFile: c.questions,
		Teams:        c.teams,
		AllowQuit:    c.terminal,
	}
}

// loadEnvFile copies variables from a dotenv file into the environment
// so viper picks them up. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load %s: %w", path, err)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	cfg.layout = jeopardy.DefaultLayout()

	v := viper.New()
	v.SetEnvPrefix("JEOPARDY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "jeopardy",
		Short:         "A Jeopardy-style trivia board for teams, played in the browser or the terminal.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			if cfg.terminal {
				return runTerminal(cfg)
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: JEOPARDY_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: JEOPARDY_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: JEOPARDY_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: JEOPARDY_PROFILE)")
	fs.StringVarP(&cfg.questions, "questions", "q", "questions.txt", "path to the question file (env: JEOPARDY_QUESTIONS)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: JEOPARDY_SESSION_TIMEOUT)")
	fs.IntVarP(&cfg.teams, "teams", "t", 2, "number of teams a new game starts with (env: JEOPARDY_TEAMS)")
	fs.BoolVar(&cfg.terminal, "terminal", false, "play in this terminal instead of serving the web client (env: JEOPARDY_TERMINAL)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: JEOPARDY_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: JEOPARDY_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: JEOPARDY_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: JEOPARDY_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("jeopardy v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
