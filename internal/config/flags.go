package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a command
// line flag set. Unset flags keep their zero value and therefore never
// override other sources.
type Flags struct {
	dsn              string
	exportDir        string
	driveAddress     string
	generatorAddress string
	accessToken      string
	jsonConfigPath   string
	logFile          string
	requestTimeout   time.Duration
	backupInterval   time.Duration
}

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-d/--db                 key-value database DSN
//	--export-dir            directory exported deck files are written to
//	--drive-address         remote object store base URL
//	--generator-address     flashcard generation service base URL
//	--access-token          bearer credential for the remote object store
//	-c/--config             json file path with configs
//	--log-file              client log file
//	--request-timeout       outbound request timeout (e.g., "30s")
//	--backup-interval       remote backup interval (e.g., "5m")
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.dsn, "db", "d", "", "Key-value database DSN")
	fs.StringVar(&f.exportDir, "export-dir", "", "Directory exported deck files are written to")
	fs.StringVar(&f.driveAddress, "drive-address", "", "Remote object store base URL")
	fs.StringVar(&f.generatorAddress, "generator-address", "", "Flashcard generation service base URL")
	fs.StringVar(&f.accessToken, "access-token", "", "Bearer credential for the remote object store")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.logFile, "log-file", "", "Client log file")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	fs.DurationVar(&f.backupInterval, "backup-interval", 0, "Remote backup interval (e.g., 5m)")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: f.logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: f.dsn},
			Files: Files{ExportDir: f.exportDir},
		},
		Adapter: Adapter{
			DriveAddress:     f.driveAddress,
			GeneratorAddress: f.generatorAddress,
			RequestTimeout:   f.requestTimeout,
			AccessToken:      f.accessToken,
		},
		Workers: Workers{
			BackupInterval: f.backupInterval,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
