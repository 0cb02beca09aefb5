package ignore

// DefaultDirectoryRules lists VCS metadata, editor state, dependency caches
// and build output directories.
func DefaultDirectoryRules() RuleSource {
	return RuleSource{
		Names: []string{
			".git", ".hg", ".svn", ".idea", ".vs", ".vscode",
			"node_modules", ".next", ".nuxt", ".cache", ".parcel-cache", ".vite",
			".svelte-kit", ".angular", ".yarn", ".pnp", ".pnpm-store", ".vercel",
			".netlify", ".docusaurus",
			"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache", ".tox",
			".ipynb_checkpoints", ".venv", "venv", "env", ".eggs",
			".gradle", ".build", "build", "out", "libs",
			"Pods", "DerivedData",
			"target",
			"bin",
			"obj",
			".terraform", ".serverless",
			".firebase", ".expo", ".dart_tool",
		},
		Patterns: []string{
			`.*\.egg-info$`,
		},
	}
}

// DefaultFileRules lists lockfiles, OS droppings and compiled artifacts.
func DefaultFileRules() RuleSource {
	return RuleSource{
		Names: []string{
			"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb",
			"Pipfile.lock", "poetry.lock", "requirements.txt.lock",
			"composer.lock", "Gemfile.lock", "Cargo.lock",
			"Podfile.lock",
			"gradle-wrapper.jar", ".DS_Store", "Thumbs.db",
			".coverage",
		},
		Globs: []string{
			".coverage.*",
			"*.pyc", "*.pyo", "*.pyd",
			"*.class",
			"*.o", "*.obj", "*.a", "*.so", "*.dll", "*.dylib",
			"*.map",
			"*.local.env",
			"*.txt",
		},
	}
}
