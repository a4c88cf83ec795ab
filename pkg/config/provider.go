// Package config loads service configuration from YAML files or SQLite
// databases behind a common provider interface. The calculation packages
// never see configuration; only the service wiring (observer location, REST
// listener, snapshot archive) is configured here.
package config

import (
	"fmt"
	"time"
)

// Provider is the interface configuration sources implement.
type Provider interface {
	// LoadConfig loads the complete configuration.
	LoadConfig() (*ConfigData, error)

	// IsReadOnly reports whether the backing store rejects writes.
	IsReadOnly() bool
	Close() error
}

// ConfigData is the complete service configuration.
type ConfigData struct {
	Observer   ObserverData    `json:"observer" yaml:"observer"`
	RESTServer *RESTServerData `json:"rest,omitempty" yaml:"rest,omitempty"`
	Archive    *ArchiveData    `json:"archive,omitempty" yaml:"archive,omitempty"`

	// TickSeconds is the recompute cadence. The finest meaningful period is
	// one prana (4 seconds); that is the default.
	TickSeconds int `json:"tick_seconds,omitempty" yaml:"tick_seconds,omitempty"`
}

// ObserverData is the configured observer location.
type ObserverData struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// RESTServerData configures the HTTP API listener.
type RESTServerData struct {
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
}

// ArchiveData configures the optional snapshot archive database.
type ArchiveData struct {
	ConnectionString string `json:"connection_string" yaml:"connection_string"`

	// IntervalMinutes is how often a snapshot row is written. Defaults to
	// one muhurta (48 minutes).
	IntervalMinutes int `json:"interval_minutes,omitempty" yaml:"interval_minutes,omitempty"`
}

// TickInterval returns the recompute cadence with the default applied.
func (c *ConfigData) TickInterval() time.Duration {
	if c.TickSeconds <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// ArchiveInterval returns the archive write cadence with the default applied.
func (a *ArchiveData) ArchiveInterval() time.Duration {
	if a.IntervalMinutes <= 0 {
		return 48 * time.Minute
	}
	return time.Duration(a.IntervalMinutes) * time.Minute
}

// Validate checks the parts of the configuration that would otherwise fail
// deep inside the service.
func (c *ConfigData) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer.latitude %v outside [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("observer.longitude %v outside [-180, 180]", c.Observer.Longitude)
	}
	if c.RESTServer != nil && (c.RESTServer.Port < 0 || c.RESTServer.Port > 65535) {
		return fmt.Errorf("rest.port %d outside [0, 65535]", c.RESTServer.Port)
	}
	if c.Archive != nil && c.Archive.ConnectionString == "" {
		return fmt.Errorf("archive.connection_string must be set when archive is configured")
	}
	return nil
}
