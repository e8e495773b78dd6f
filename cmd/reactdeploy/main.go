package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"reactdeploy-cli/internal/app"
	"reactdeploy-cli/internal/orchestrator"
	"reactdeploy-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "reactdeploy",
	Short: "Deploy React projects to GitHub Pages and generate bundles",
	Long: `reactdeploy automates the GitHub Pages workflow for React and Next.js
projects: generating vite configs, building, deploying, swapping index.tsx for
the deploy-ready variant, and managing package.json deploy scripts.

An action can be selected directly with --action=NAME or picked from an
interactive numbered menu. Parameters resolve from flags first, then the
environment (REACTDEPLOY_*), then config-deploy.conf in the working directory,
then an interactive prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRunRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(request)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize project files between directories using rsync",
	Long: `Mirror a source directory onto a target directory with rsync, excluding
build artifacts and project-local files (node_modules, dist, .git, vite and
package manifests). Both sides are checked for index.html before anything is
copied; a missing index.html requires confirmation.

Source and target resolve from flags first, then config-deploy.conf, then the
current directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildSyncRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Sync(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reactdeploy version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (INI format with [DEFAULT] section)")
	rootCmd.PersistentFlags().Bool("no-config", false, "skip loading the default config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("dry-run", "n", false, "perform a dry run")

	// Deploy action flags
	rootCmd.Flags().String("action", "", "action to perform (see reactdeploy --help for the list)")
	rootCmd.Flags().String("app-base-path", "", "base path for GitHub Pages (e.g., /user/repo/)")
	rootCmd.Flags().String("app-name", "", "application name for bundle generation")

	// Sync flags
	syncCmd.Flags().StringP("source", "s", "", "source directory (default: current directory)")
	syncCmd.Flags().StringP("target", "t", "", "target directory (default: current directory)")
}

// buildRunRequest constructs a RunRequest from the root command's flags
func buildRunRequest(cmd *cobra.Command) (*models.RunRequest, error) {
	request := &models.RunRequest{}

	var err error

	if request.Action, err = cmd.Flags().GetString("action"); err != nil {
		return nil, fmt.Errorf("invalid action flag: %w", err)
	}

	if request.AppBasePath, err = cmd.Flags().GetString("app-base-path"); err != nil {
		return nil, fmt.Errorf("invalid app-base-path flag: %w", err)
	}

	if request.AppName, err = cmd.Flags().GetString("app-name"); err != nil {
		return nil, fmt.Errorf("invalid app-name flag: %w", err)
	}

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.NoConfig, err = cmd.Flags().GetBool("no-config"); err != nil {
		return nil, fmt.Errorf("invalid no-config flag: %w", err)
	}

	if request.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	if request.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return nil, fmt.Errorf("invalid dry-run flag: %w", err)
	}

	return request, nil
}

// buildSyncRequest constructs a SyncRequest from the sync command's flags
func buildSyncRequest(cmd *cobra.Command) (*models.SyncRequest, error) {
	request := &models.SyncRequest{}

	var err error

	if request.Source, err = cmd.Flags().GetString("source"); err != nil {
		return nil, fmt.Errorf("invalid source flag: %w", err)
	}

	if request.Target, err = cmd.Flags().GetString("target"); err != nil {
		return nil, fmt.Errorf("invalid target flag: %w", err)
	}

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.NoConfig, err = cmd.Flags().GetBool("no-config"); err != nil {
		return nil, fmt.Errorf("invalid no-config flag: %w", err)
	}

	if request.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	if request.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return nil, fmt.Errorf("invalid dry-run flag: %w", err)
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(orchestrator.ExitCode(err))
	}
}
