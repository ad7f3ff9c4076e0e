package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a portal address (e.g. https://portal.example.com)
//	-d SQLite database path
//	-c/-config json file path with configs
//	-device-secret installation secret for the credential store
//	-log-path log file path
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-lock-after inactivity threshold of the session lock (e.g., "5m")
//	-biometric-command owner verification command
//	-refresh-interval overview refresh period (e.g., "30s")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var address string
	var databaseDSN string
	var jsonConfigPath string
	var deviceSecret string
	var logPath string
	var requestTimeout time.Duration
	var lockAfter time.Duration
	var biometricCommand string
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("portal-client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Portal address")
	fs.StringVar(&databaseDSN, "d", "", "Database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&deviceSecret, "device-secret", "", "Installation secret of the credential store")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&lockAfter, "lock-after", 0, "Lock after being in background this long (e.g., 5m)")
	fs.StringVar(&biometricCommand, "biometric-command", "", "Owner verification command")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Overview refresh interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeviceSecret: deviceSecret,
			LogPath:      logPath,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			Address:        address,
			RequestTimeout: requestTimeout,
		},
		Lock: Lock{
			InactivityThreshold: lockAfter,
			BiometricCommand:    biometricCommand,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
