package application

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ReportConfig defines the presentation settings shared by both export
// backends.
type ReportConfig struct {
	Title          string `yaml:"title"`
	SheetName      string `yaml:"sheet_name"`
	FilenamePrefix string `yaml:"filename_prefix"`
	PageSize       string `yaml:"page_size"`
	Orientation    string `yaml:"orientation"`
}

// LoadReportConfig loads report settings from the yaml file named by
// REPORT_CONFIG, falling back to the dashboard defaults.
func LoadReportConfig() (ReportConfig, error) {
	cfg := ReportConfig{
		Title:          "Laporan Rekap Pengiriman",
		SheetName:      "Rekap Pengiriman",
		FilenamePrefix: "rekap_pengiriman",
		PageSize:       "A4",
		Orientation:    "L",
	}

	if path := os.Getenv("REPORT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Title == "" {
		cfg.Title = "Laporan Rekap Pengiriman"
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Rekap Pengiriman"
	}
	if cfg.FilenamePrefix == "" {
		cfg.FilenamePrefix = "rekap_pengiriman"
	}
	if cfg.PageSize == "" {
		cfg.PageSize = "A4"
	}
	if cfg.Orientation == "" {
		cfg.Orientation = "L"
	}
	return cfg, nil
}
