package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Source SourceConfig `mapstructure:"source"`
	Server ServerConfig `mapstructure:"server"`
	Output OutputConfig `mapstructure:"output"`
	Export ExportConfig `mapstructure:"export"`
}

// SourceConfig points at the tracking workbook and its images
type SourceConfig struct {
	File     string `mapstructure:"file"`      // Path to the spreadsheet (first sheet is read)
	ImageDir string `mapstructure:"image_dir"` // Directory holding the project PNGs
}

// ServerConfig holds the viewer settings
type ServerConfig struct {
	Addr  string `mapstructure:"addr"`  // Listen address (e.g. ":8642")
	Title string `mapstructure:"title"` // Page heading
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Report file name (without extension)
}

// ExportConfig holds report generation settings
type ExportConfig struct {
	Formats []string `mapstructure:"formats"` // Report formats (excel, html, word, json)
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// Determine config file to use
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Set config file
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Check if it's just a file not found error
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Source: ./BESS In construction.xlsx")
			fmt.Println("  Listen: :8642")
			fmt.Println("==========================================")
		} else {
			// Config file found but has some other error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize paths
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	// Create output directory if it doesn't exist
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Source defaults match the original deployment layout: workbook
	// and PNGs sitting next to the binary
	v.SetDefault("source.file", "BESS In construction.xlsx")
	v.SetDefault("source.image_dir", ".")

	// Viewer defaults
	v.SetDefault("server.addr", ":8642")
	v.SetDefault("server.title", "BESS In construction")

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "bess-report")

	// Export defaults
	v.SetDefault("export.formats", []string{"excel", "html"})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absFile, err := filepath.Abs(c.Source.File)
	if err != nil {
		return fmt.Errorf("failed to resolve source.file: %w", err)
	}
	c.Source.File = absFile

	absImages, err := filepath.Abs(c.Source.ImageDir)
	if err != nil {
		return fmt.Errorf("failed to resolve source.image_dir: %w", err)
	}
	c.Source.ImageDir = absImages

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path for the output Excel report.
// The other report formats derive their paths by swapping the
// extension.
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// ImagePath resolves an image filename against the configured image
// directory
func (c *Config) ImagePath(name string) string {
	return filepath.Join(c.Source.ImageDir, name)
}

// Validate checks if the configuration is valid. Whether source.file
// actually exists is deliberately not checked here: that is the
// loader's call, so a missing workbook surfaces as its not-found
// error at read time.
func (c *Config) Validate() error {
	if c.Source.File == "" {
		return fmt.Errorf("source.file cannot be empty")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== BESS Board Configuration ===")
	fmt.Printf("Source File:      %s\n", c.Source.File)
	fmt.Printf("Image Directory:  %s\n", c.Source.ImageDir)
	fmt.Printf("Listen Address:   %s\n", c.Server.Addr)
	fmt.Printf("Page Title:       %s\n", c.Server.Title)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.GetOutputPath())
	fmt.Printf("Export Formats:   %v\n", c.Export.Formats)
	fmt.Println("================================")
}
