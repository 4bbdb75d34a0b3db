// Package config loads gradebook settings from file, environment, and
// defaults. Field tags use mapstructure for viper unmarshalling.
package config

import "errors"

// Config is the top-level configuration struct for gradebook.
type Config struct {
	DataFile string       `mapstructure:"data_file"`
	Table    TableConfig  `mapstructure:"table"`
	Export   ExportConfig `mapstructure:"export"`
	Report   ReportConfig `mapstructure:"report"`
	Backup   BackupConfig `mapstructure:"backup"`
}

// TableConfig holds terminal table settings.
type TableConfig struct {
	// MaxRows caps the rows rendered by list; 0 means unlimited.
	MaxRows int `mapstructure:"max_rows"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	CSVFile string `mapstructure:"csv_file"`
}

// ReportConfig holds HTML report settings.
type ReportConfig struct {
	Title string `mapstructure:"title"`
	Theme string `mapstructure:"theme"`
	File  string `mapstructure:"file"`
}

// BackupConfig holds snapshot settings.
type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

// Default configuration values.
const (
	DefaultDataFile     = "students.json"
	DefaultTableMaxRows = 0
	DefaultCSVFile      = "students.csv"
	DefaultReportTitle  = "Student Grade Report"
	DefaultReportTheme  = "dark"
	DefaultReportFile   = "report.html"
	DefaultBackupDir    = "backups"
)

// Report themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Sentinel errors for configuration validation.
var (
	// ErrEmptyDataFile indicates the data file path is empty.
	ErrEmptyDataFile = errors.New("data_file must not be empty")
	// ErrInvalidMaxRows indicates the table row cap is negative.
	ErrInvalidMaxRows = errors.New("table.max_rows must be non-negative")
	// ErrInvalidTheme indicates the report theme is not dark or light.
	ErrInvalidTheme = errors.New("report.theme must be dark or light")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return ErrEmptyDataFile
	}

	if c.Table.MaxRows < 0 {
		return ErrInvalidMaxRows
	}

	if c.Report.Theme != ThemeDark && c.Report.Theme != ThemeLight {
		return ErrInvalidTheme
	}

	return nil
}
