// internal/config/model.go
//
// Typed configuration model for contactform.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                          – dotenv values,
//   • `conf/contactform.yaml` (or --config)         – primary static file,
//   • `CONTACTFORM_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal and defaulting; the binary
// fails fast on a malformed endpoint URL or a non-positive toast lifetime.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations are written as Go duration strings ("15s", "4s").
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import "time"

// Endpoint describes the remote contact-us API.
type Endpoint struct {
	URL     string        `koanf:"url"     validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

// Notify tunes the toast.
type Notify struct {
	DismissAfter time.Duration `koanf:"dismiss_after" validate:"gt=0"`
}

// Log selects the log sink.
type Log struct {
	Dir   string `koanf:"dir"   validate:"required"`
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Tee   bool   `koanf:"tee"`
}

// Metrics enables the Prometheus listener when ListenAddr is set.
type Metrics struct {
	ListenAddr string `koanf:"listen_addr" validate:"omitempty,hostname_port"`
}

// Stub configures the local stand-in endpoint started by --stub.
type Stub struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

// Paths is resolved at runtime.
type Paths struct {
	Root string // CONTACTFORM_ROOT or discovered parent
	File string // config file actually loaded, "" when none
}

// Config is the aggregate returned by Load().
type Config struct {
	Endpoint Endpoint `koanf:"endpoint"`
	Notify   Notify   `koanf:"notify"`
	Log      Log      `koanf:"log"`
	Metrics  Metrics  `koanf:"metrics"`
	Stub     Stub     `koanf:"stub"`
	Paths    Paths    `koanf:"-"`
}

// applyDefaults fills zero values.  A zero endpoint timeout is
// indistinguishable from an unset one, so it also gets the default.
func (c *Config) applyDefaults() {
	if c.Endpoint.URL == "" {
		c.Endpoint.URL = "https://vernanbackend.ezlab.in/api/contact-us/"
	}
	if c.Endpoint.Timeout == 0 {
		c.Endpoint.Timeout = 15 * time.Second
	}
	if c.Notify.DismissAfter == 0 {
		c.Notify.DismissAfter = 4 * time.Second
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Stub.ListenAddr == "" {
		c.Stub.ListenAddr = "127.0.0.1:8089"
	}
}
