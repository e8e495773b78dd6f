package orchestrator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"reactdeploy-cli/internal/interfaces"
)

// rsyncExclusions is the fixed set of entries never mirrored between trees.
var rsyncExclusions = []string{
	"--exclude=node_modules",
	"--exclude=dist",
	"--exclude=.git",
	"--exclude=.gitignore",
	"--exclude=vite.config.ts",
	"--exclude=package.json",
	"--exclude=package-lock.json",
}

// SyncDeps carries the collaborators and run modes a Syncer is built from.
// SourceFromConfig and TargetFromConfig record whether the config file
// supplied the respective path, which only affects verbose narration.
type SyncDeps struct {
	Settings         *interfaces.Settings
	Asker            interfaces.Asker
	Runner           interfaces.CommandRunner
	Out              io.Writer
	WorkDir          string
	Verbose          bool
	DryRun           bool
	SourceFromConfig bool
	TargetFromConfig bool
}

// Syncer mirrors a source tree onto a target tree via rsync, with index.html
// safety checks on both sides.
type Syncer struct {
	settings         *interfaces.Settings
	asker            interfaces.Asker
	runner           interfaces.CommandRunner
	out              io.Writer
	workDir          string
	verbose          bool
	dryRun           bool
	sourceFromConfig bool
	targetFromConfig bool
}

// NewSyncer creates a syncer
func NewSyncer(deps SyncDeps) *Syncer {
	return &Syncer{
		settings:         deps.Settings,
		asker:            deps.Asker,
		runner:           deps.Runner,
		out:              deps.Out,
		workDir:          deps.WorkDir,
		verbose:          deps.Verbose,
		dryRun:           deps.DryRun,
		sourceFromConfig: deps.SourceFromConfig,
		targetFromConfig: deps.TargetFromConfig,
	}
}

func (s *Syncer) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Syncer) verbosef(format string, args ...interface{}) {
	if s.verbose {
		s.printf(format, args...)
	}
}

// Run resolves the source and target directories and mirrors source onto
// target. source and target are the explicit flag values; an empty value
// falls back to the config file and then to the working directory.
func (s *Syncer) Run(source, target string) error {
	if source == "" {
		if s.settings.Source != "" {
			source = s.settings.Source
			if s.sourceFromConfig {
				s.verbosef("Using source from config file: %s", source)
			}
		} else {
			source = s.workDir
		}
	}
	if target == "" {
		if s.settings.Target != "" {
			target = s.settings.Target
			if s.targetFromConfig {
				s.verbosef("Using target from config file: %s", target)
			}
		} else {
			target = s.workDir
		}
	}
	if source == "" && target == "" {
		return NewPreconditionFailed("Either source or target must be provided.")
	}

	if err := s.checkIndex(source, "source"); err != nil {
		return err
	}
	if err := s.checkIndex(target, "target"); err != nil {
		return err
	}

	argv := append([]string{"rsync", "-av"}, rsyncExclusions...)
	if s.settings.IgnoreIndexTSX {
		argv = append(argv, "--exclude=index.tsx")
		s.verbosef("Excluding index.tsx from sync as configured")
	}
	argv = append(argv, source+"/", target+"/")

	s.verbosef("Source: %s", source)
	s.verbosef("Target: %s", target)
	s.verbosef("Running command: %s", strings.Join(argv, " "))

	res := s.runner.Run(argv)
	return completeExternal(s.out, s.dryRun, res, "Rsync operation", "rsync", "rsync")
}

// checkIndex warns when folder carries no index.html and asks whether to
// continue. Declining aborts the sync with an error, unlike a declined
// deploy-action confirmation. Under dry-run the warning stands alone and the
// run continues.
func (s *Syncer) checkIndex(folder, label string) error {
	abs, err := filepath.Abs(folder)
	if err != nil {
		abs = folder
	}
	indexPath := filepath.Join(abs, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		return nil
	}

	s.printf("Warning: index.html not found in %s (%s)", label, indexPath)
	if s.dryRun {
		return nil
	}
	ok, err := s.asker.Confirm("Continue anyway? [y/N]:")
	if err != nil {
		return NewInterrupted(err)
	}
	if !ok {
		return &DeployError{Kind: ErrUserDeclined, Message: "Aborted by user."}
	}
	return nil
}
