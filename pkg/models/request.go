package models

// RunRequest represents the command-line input for a deploy action run
type RunRequest struct {
	Action      string
	AppBasePath string
	AppName     string
	ConfigPath  string
	NoConfig    bool
	Verbose     bool
	DryRun      bool
}

// SyncRequest represents the command-line input for an rsync mirroring run
type SyncRequest struct {
	Source     string
	Target     string
	ConfigPath string
	NoConfig   bool
	Verbose    bool
	DryRun     bool
}
