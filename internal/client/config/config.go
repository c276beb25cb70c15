package config

import "time"

// Config holds runtime settings for the vault CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DownloadDir: subdirectory where fetched payloads are written.
//   - ChunkSize: size in bytes of a single upload chunk.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DownloadDir         string
	ChunkSize           int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DownloadDir = "downloads"
	c.ChunkSize = 1 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
