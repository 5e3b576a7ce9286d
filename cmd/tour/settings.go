package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/randalmurphal/gotour/pkg/tour/config"
)

// knownKeys lists every key a config file may set.
var knownKeys = []string{
	"log_level",
	"log_format",
	"metrics",
	"tracing",
	"journal",
	"run_id",
	"resume",
	"only",
	"include_faults",
	"timeout",
}

// settings is the command configuration after defaults and validation.
type settings struct {
	logLevel      string
	logFormat     string
	metrics       bool
	tracing       bool
	journal       string
	runID         string
	resume        bool
	only          []string
	includeFaults bool
	timeout       time.Duration
	unknown       []string
	mistyped      []error
}

// loadSettings reads the config file at path. An empty path yields the defaults.
func loadSettings(path string) (settings, error) {
	cfg := config.New(nil)
	if path != "" {
		var err error
		cfg, err = config.FromFile(path)
		if err != nil {
			return settings{}, err
		}
	}

	r := &settingsReader{cfg: cfg}
	s := settings{
		logLevel:      strings.ToLower(r.text("log_level", "info")),
		logFormat:     strings.ToLower(r.text("log_format", "text")),
		metrics:       r.flag("metrics"),
		tracing:       r.flag("tracing"),
		journal:       r.text("journal", ""),
		runID:         r.text("run_id", ""),
		resume:        r.flag("resume"),
		only:          r.list("only"),
		includeFaults: r.flag("include_faults"),
		timeout:       r.duration("timeout"),
		unknown:       cfg.Unknown(knownKeys...),
	}
	s.mistyped = r.errs
	return s, s.validate()
}

// settingsReader reads typed keys and records every key set to a value
// of the wrong type.
type settingsReader struct {
	cfg  config.Config
	errs []error
}

func (r *settingsReader) text(key, def string) string {
	v, ok := r.cfg.StringOK(key)
	return pick(r, key, "a string", v, ok, def)
}

func (r *settingsReader) flag(key string) bool {
	v, ok := r.cfg.BoolOK(key)
	return pick(r, key, "a boolean", v, ok, false)
}

func (r *settingsReader) list(key string) []string {
	v, ok := r.cfg.StringsOK(key)
	return pick(r, key, "a list of strings", v, ok, nil)
}

func (r *settingsReader) duration(key string) time.Duration {
	v, ok := r.cfg.DurationOK(key)
	return pick(r, key, `a duration such as "30s" or a number of seconds`, v, ok, 0)
}

func pick[T any](r *settingsReader, key, want string, v T, ok bool, def T) T {
	if ok {
		return v
	}
	if r.cfg.Has(key) {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: must be %s", key, want))
	}
	return def
}

func (s settings) validate() error {
	var errs []error

	for _, key := range s.unknown {
		errs = append(errs, fmt.Errorf("unknown config key %q", key))
	}
	errs = append(errs, s.mistyped...)

	switch s.logLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", s.logLevel))
	}

	if s.logFormat != "text" && s.logFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", s.logFormat))
	}

	if s.resume && (s.journal == "" || s.runID == "") {
		errs = append(errs, errors.New("resume requires journal and run_id"))
	}

	if s.timeout < 0 {
		errs = append(errs, fmt.Errorf("invalid timeout %s: must not be negative", s.timeout))
	}

	return errors.Join(errs...)
}
