package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Retailers     []string `json:"retailers" yaml:"retailers" toml:"retailers"`
	RetailersFile string   `json:"retailers_file" yaml:"retailers_file" toml:"retailers_file"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
	OldestFirst   bool     `json:"oldest_first" yaml:"oldest_first" toml:"oldest_first"`
}
