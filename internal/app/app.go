package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"reactdeploy-cli/internal/config"
	"reactdeploy-cli/internal/interactive"
	"reactdeploy-cli/internal/orchestrator"
	"reactdeploy-cli/internal/process"
	"reactdeploy-cli/internal/safefile"
	"reactdeploy-cli/pkg/models"
)

// Run executes one deploy action: resolve configuration, build the
// dispatcher's collaborators, and drive the action to a terminal state.
func Run(req *models.RunRequest) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	out := os.Stdout

	mgr := config.NewManager()
	if err := loadDeployConfig(mgr, req, workDir, out); err != nil {
		return err
	}
	mgr.SetFlag("app_base_path", req.AppBasePath)
	mgr.SetFlag("app_name", req.AppName)

	settings, err := mgr.Resolve()
	if err != nil {
		return fmt.Errorf("resolve configuration: %w", err)
	}

	deps := orchestrator.Deps{
		Settings:    settings,
		Asker:       interactive.NewPrompter(),
		Files:       safefile.New(req.DryRun),
		Runner:      process.NewRunner(req.DryRun, req.Verbose, workDir, out),
		Out:         out,
		WorkDir:     workDir,
		TemplateDir: templateDir(),
		Verbose:     req.Verbose,
		DryRun:      req.DryRun,
	}
	return orchestrator.NewDispatcher(deps).Run(req.Action)
}

// Sync mirrors a source tree onto a target tree via rsync.
func Sync(req *models.SyncRequest) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	out := os.Stdout

	mgr := config.NewManager()
	if err := loadSyncConfig(mgr, req, workDir, out); err != nil {
		return err
	}

	settings, err := mgr.Resolve()
	if err != nil {
		return fmt.Errorf("resolve configuration: %w", err)
	}

	// The syncer narrates the command line itself, so the runner stays quiet.
	deps := orchestrator.SyncDeps{
		Settings:         settings,
		Asker:            interactive.NewPrompter(),
		Runner:           process.NewRunner(req.DryRun, false, workDir, out),
		Out:              out,
		WorkDir:          workDir,
		Verbose:          req.Verbose,
		DryRun:           req.DryRun,
		SourceFromConfig: req.Source == "" && mgr.InFile("source"),
		TargetFromConfig: req.Target == "" && mgr.InFile("target"),
	}
	return orchestrator.NewSyncer(deps).Run(config.StripQuotes(req.Source), config.StripQuotes(req.Target))
}

// loadDeployConfig loads the file layer for the deploy command. An explicit
// path must exist; the discovered default contributes silently except for one
// verbose line.
func loadDeployConfig(mgr *config.Manager, req *models.RunRequest, workDir string, out io.Writer) error {
	if req.ConfigPath != "" {
		if err := mgr.Load(req.ConfigPath, req.NoConfig, workDir); err != nil {
			return orchestrator.NewConfigNotFound(req.ConfigPath, err)
		}
		return nil
	}
	if err := mgr.Load("", req.NoConfig, workDir); err != nil {
		return err
	}
	if req.Verbose {
		if src := mgr.Source(); src.Default && src.Loaded != "" {
			fmt.Fprintf(out, "Loading default config file: %s\n", src.Loaded)
		}
	}
	return nil
}

// loadSyncConfig loads the file layer for the sync command. Sync narrates the
// probe itself when verbose, matching the line-by-line discovery output.
func loadSyncConfig(mgr *config.Manager, req *models.SyncRequest, workDir string, out io.Writer) error {
	if req.ConfigPath != "" {
		if req.Verbose {
			fmt.Fprintf(out, "Trying to reach config file at: %s\n", req.ConfigPath)
		}
		if err := mgr.Load(req.ConfigPath, req.NoConfig, workDir); err != nil {
			return orchestrator.NewConfigNotFound(req.ConfigPath, err)
		}
		if req.Verbose {
			fmt.Fprintf(out, "Config file found. Loading config file: %s\n", mgr.Source().Loaded)
		}
		return nil
	}
	if req.NoConfig {
		return mgr.Load("", true, workDir)
	}

	probe := filepath.Join(workDir, config.DefaultConfigName)
	if req.Verbose {
		fmt.Fprintf(out, "Trying to reach config file at: %s\n", probe)
	}
	if err := mgr.Load("", false, workDir); err != nil {
		return err
	}
	if req.Verbose {
		if src := mgr.Source(); src.Loaded != "" {
			fmt.Fprintf(out, "Config file found. Loading config file: %s\n", src.Loaded)
		} else {
			fmt.Fprintf(out, "Config file not found at: %s\n", probe)
		}
	}
	return nil
}

// templateDir locates the runtime assets shipped alongside the binary.
func templateDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}
	return filepath.Join(filepath.Dir(exe), "templates")
}
