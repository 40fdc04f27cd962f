package pyenv

// Argument builders for the invocations the bootstrap sequence makes.
// pip is always run as `python -m pip` against the environment's own
// interpreter, which sidesteps stale pip shims after the upgrade step.

// CreateVenvArgs returns the arguments for creating the environment
// with the base interpreter's venv module.
func CreateVenvArgs(venvDir string) []string {
	return []string{"-m", "venv", venvDir}
}

// UpgradeToolsArgs returns the arguments for upgrading the packaging
// toolchain inside the environment.
func UpgradeToolsArgs(tools []string) []string {
	args := []string{"-m", "pip", "install", "--upgrade"}
	return append(args, tools...)
}

// InstallRequirementsArgs returns the arguments for installing the
// dependency manifest.
func InstallRequirementsArgs(manifest string) []string {
	return []string{"-m", "pip", "install", "-r", manifest}
}

// InstallEditableArgs returns the arguments for installing the local
// project in editable mode.
func InstallEditableArgs(projectDir string) []string {
	return []string{"-m", "pip", "install", "-e", projectDir}
}

// ListPackagesArgs returns the arguments for listing installed
// packages as JSON.
func ListPackagesArgs() []string {
	return []string{"-m", "pip", "list", "--format", "json"}
}
