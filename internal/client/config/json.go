package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dpetrovs/heirvault/internal/flagx"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields so both
// string values such as "3s" and integer nanoseconds are accepted. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DownloadDir         string         `json:"download_dir"`
	ChunkSize           int64          `json:"chunk_size"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.OnlineCheckInterval = time.Duration(c.OnlineCheckInterval.Duration)
	config.DownloadDir = c.DownloadDir
	config.ChunkSize = c.ChunkSize
}
