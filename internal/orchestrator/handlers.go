package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"reactdeploy-cli/internal/interfaces"
	"reactdeploy-cli/internal/template"
)

// Files the actions create, replace, or require.
const (
	ghPagesConfigFile = "vite.gh-pages.config.ts"
	bundleConfigFile  = "vite.react-angular.config.ts"
	indexFile         = "index.tsx"
	indexBackupFile   = "index.org.tsx"
	deployConfigFile  = "config-deploy.conf"
	exampleConfigFile = "config-deploy-example.conf"
	indexTemplateFile = "index.deploy.template.tsx"
	packageJSONFile   = "package.json"
)

// nextScript is one package.json script entry managed by the Next.js deploy
// action.
type nextScript struct {
	name    string
	command string
}

// nextScripts lists the managed entries. An entry already present in
// package.json is never overwritten.
var nextScripts = []nextScript{
	{name: "build-next-gh-pages", command: "next build"},
	{name: "deploy-next-gh-pages", command: "next build && touch out/.nojekyll && gh-pages -d out --dotfiles"},
}

// addConfigGHPages generates vite.gh-pages.config.ts parameterized by the
// resolved base path. The target must not already exist.
func (d *Dispatcher) addConfigGHPages() error {
	d.verbosef("Preparing to create %s with app base path: %s", ghPagesConfigFile, d.ctx.BasePath)

	body, err := template.RenderGHPagesConfig(template.GHPagesData{BasePath: d.ctx.BasePath})
	if err != nil {
		return err
	}

	path := filepath.Join(d.ctx.WorkDir, ghPagesConfigFile)
	if err := d.files.CreateNew(path, []byte(body)); err != nil {
		if errors.Is(err, interfaces.ErrExists) {
			return NewAlreadyExists(fmt.Sprintf("%s already exists. Aborting.", ghPagesConfigFile), err)
		}
		return err
	}

	if d.ctx.DryRun {
		d.printf("[DRY RUN] Would create %s with app base path: %s", ghPagesConfigFile, d.ctx.BasePath)
	} else {
		d.printf("Created %s with app base path: %s", ghPagesConfigFile, d.ctx.BasePath)
	}
	return nil
}

// addConfigBundle generates vite.react-angular.config.ts parameterized by
// the resolved app name and its derived dashed and capitalized forms.
func (d *Dispatcher) addConfigBundle() error {
	dashName := template.DashName(d.ctx.AppName)
	capsName := template.CapsName(dashName)

	d.verbosef("Preparing to create %s with app name: %s", bundleConfigFile, d.ctx.AppName)
	d.verbosef("App name dashed: %s", dashName)
	d.verbosef("App name capitalized: %s", capsName)

	body, err := template.RenderBundleConfig(template.BundleData{DashName: dashName, CapsName: capsName})
	if err != nil {
		return err
	}

	path := filepath.Join(d.ctx.WorkDir, bundleConfigFile)
	if err := d.files.CreateNew(path, []byte(body)); err != nil {
		if errors.Is(err, interfaces.ErrExists) {
			return NewAlreadyExists(fmt.Sprintf("%s already exists. Aborting.", bundleConfigFile), err)
		}
		return err
	}

	if d.ctx.DryRun {
		d.printf("[DRY RUN] Would create %s with app name: %s", bundleConfigFile, d.ctx.AppName)
		d.printf("[DRY RUN] App name dashed: %s", dashName)
		d.printf("[DRY RUN] App name capitalized: %s", capsName)
	} else {
		d.printf("Created %s with app name: %s", bundleConfigFile, d.ctx.AppName)
		d.printf("App name dashed: %s", dashName)
		d.printf("App name capitalized: %s", capsName)
	}
	return nil
}

// buildGHPages runs the vite build against the generated GitHub Pages
// config, which must exist.
func (d *Dispatcher) buildGHPages() error {
	if err := requireMarker(d.ctx.WorkDir, ghPagesConfigFile, "Please run --action=add-config-gh-pages first."); err != nil {
		return err
	}
	d.verbosef("Config file %s exists, proceeding with build", ghPagesConfigFile)

	if !d.ctx.DryRun {
		d.printf("Building project for GitHub Pages...")
	}
	res := d.runner.Run([]string{"vite", "build", "--config", ghPagesConfigFile})
	return completeExternal(d.out, d.ctx.DryRun, res, "Build", "vite", "Vite")
}

// deployGHPages delegates to the project's build-gh-pages npm script.
func (d *Dispatcher) deployGHPages() error {
	if !d.ctx.DryRun {
		d.printf("Deploying to GitHub Pages...")
	}
	res := d.runner.Run([]string{"npm", "run", "build-gh-pages"})
	return completeExternal(d.out, d.ctx.DryRun, res, "Deployment", "npm", "npm")
}

// generateBundle runs the vite build against the generated bundle config,
// which must exist.
func (d *Dispatcher) generateBundle() error {
	if err := requireMarker(d.ctx.WorkDir, bundleConfigFile, "Please run --action=add-config-bundle first."); err != nil {
		return err
	}
	d.verbosef("Config file %s exists, proceeding with bundle generation", bundleConfigFile)

	if !d.ctx.DryRun {
		d.printf("Generating bundle...")
	}
	res := d.runner.Run([]string{"vite", "build", "--config", bundleConfigFile})
	return completeExternal(d.out, d.ctx.DryRun, res, "Bundle generation", "vite", "Vite")
}

// updateIndexTSX replaces the project's index.tsx with the deploy template,
// keeping the previous version as index.org.tsx. Confirmation strictly
// precedes the backup, so declining leaves both files untouched.
func (d *Dispatcher) updateIndexTSX() error {
	if err := requireMarker(d.ctx.WorkDir, indexFile, "This action requires an existing index.tsx file."); err != nil {
		return err
	}
	templatePath := filepath.Join(d.ctx.TemplateDir, indexTemplateFile)
	if err := requireAsset(templatePath); err != nil {
		return err
	}
	d.verbosef("Found %s, proceeding with update", indexFile)

	message := fmt.Sprintf("This will update the %s file. It will work for dev + load tailwind (if not exist) and ready for react wrap with angular. Would you like to continue? (y/n) [n]:", indexFile)
	if d.ctx.DryRun {
		d.printf("[DRY RUN] Would create backup of %s as %s", indexFile, indexBackupFile)
		d.printf("[DRY RUN] Would prompt: %s", message)
		d.printf("[DRY RUN] Update would be completed if confirmed")
		return nil
	}

	confirmed, err := d.confirm(message)
	if err != nil {
		return err
	}
	if !confirmed {
		d.printf("Update cancelled.")
		return errDeclined
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", templatePath, err)
	}

	indexPath := filepath.Join(d.ctx.WorkDir, indexFile)
	backupPath := filepath.Join(d.ctx.WorkDir, indexBackupFile)
	if err := d.files.ReplaceExisting(indexPath, content, backupPath); err != nil {
		if errors.Is(err, interfaces.ErrNotExists) {
			return NewTargetMissing(fmt.Sprintf("%s not found", indexFile), err)
		}
		return err
	}
	d.verbosef("Created backup of %s as %s", indexFile, indexBackupFile)
	d.printf("Successfully updated %s with content from %s", indexFile, templatePath)
	return nil
}

// generateConfig copies the example deploy configuration shipped with the
// tool into the project as config-deploy.conf.
func (d *Dispatcher) generateConfig() error {
	if err := requireMarker(d.ctx.WorkDir, indexFile, fmt.Sprintf("Not a React project directory: %s", d.ctx.WorkDir)); err != nil {
		return err
	}
	examplePath := filepath.Join(d.ctx.TemplateDir, exampleConfigFile)
	if err := requireAsset(examplePath); err != nil {
		return err
	}
	d.verbosef("Preparing to create %s", deployConfigFile)

	content, err := os.ReadFile(examplePath)
	if err != nil {
		return fmt.Errorf("read example config %s: %w", examplePath, err)
	}

	path := filepath.Join(d.ctx.WorkDir, deployConfigFile)
	if err := d.files.CreateNew(path, content); err != nil {
		if errors.Is(err, interfaces.ErrExists) {
			return NewAlreadyExists(fmt.Sprintf("%s already exists.", deployConfigFile), err)
		}
		return err
	}

	if d.ctx.DryRun {
		d.printf("[DRY RUN] Would create %s", deployConfigFile)
	} else {
		d.printf("Successfully created %s", deployConfigFile)
	}
	return nil
}

// deployNextGHPages makes sure package.json carries the managed Next.js
// deploy scripts, adding missing entries after confirmation, then delegates
// to the deploy-next-gh-pages npm script.
func (d *Dispatcher) deployNextGHPages() error {
	if err := requireMarker(d.ctx.WorkDir, packageJSONFile, "This action requires a Node project directory."); err != nil {
		return err
	}

	pkgPath := filepath.Join(d.ctx.WorkDir, packageJSONFile)
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", packageJSONFile, err)
	}

	var missing []nextScript
	for _, script := range nextScripts {
		if !gjson.GetBytes(data, "scripts."+script.name).Exists() {
			missing = append(missing, script)
		}
	}

	if len(missing) > 0 {
		if err := d.addNextScripts(pkgPath, data, missing); err != nil {
			return err
		}
	}

	if !d.ctx.DryRun {
		d.printf("Deploying Next.js project to GitHub Pages...")
	}
	res := d.runner.Run([]string{"npm", "run", "deploy-next-gh-pages"})
	return completeExternal(d.out, d.ctx.DryRun, res, "Next.js deployment", "npm", "npm")
}

// addNextScripts inserts the missing managed script entries into
// package.json, preserving the document's formatting. The insert is strictly
// additive, so no backup is taken.
func (d *Dispatcher) addNextScripts(pkgPath string, data []byte, missing []nextScript) error {
	if d.ctx.DryRun {
		for _, script := range missing {
			d.printf("[DRY RUN] Would add script %q to %s", script.name, packageJSONFile)
		}
		return nil
	}

	names := make([]string, len(missing))
	for i, script := range missing {
		names[i] = script.name
	}
	noun := "entries"
	if len(missing) == 1 {
		noun = "entry"
	}
	message := fmt.Sprintf("This will add %d script %s to %s (%s). Would you like to continue? (y/n) [n]:",
		len(missing), noun, packageJSONFile, strings.Join(names, ", "))

	confirmed, err := d.confirm(message)
	if err != nil {
		return err
	}
	if !confirmed {
		d.printf("Update cancelled.")
		return errDeclined
	}

	updated := data
	for _, script := range missing {
		updated, err = sjson.SetBytes(updated, "scripts."+script.name, script.command)
		if err != nil {
			return fmt.Errorf("add script %q: %w", script.name, err)
		}
	}
	if err := d.files.ReplaceExisting(pkgPath, updated, ""); err != nil {
		return err
	}
	for _, script := range missing {
		d.printf("Added script %q to %s", script.name, packageJSONFile)
	}
	return nil
}
