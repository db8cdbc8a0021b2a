package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	InputFilePath string
	ConfigFile    string
	Retailers     []string
	RetailersFile string
	ReportName    string
	ReportType    []string
	Dir           string
	OldestFirst   bool
}
