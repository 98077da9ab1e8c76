// Package configloader resolves the configuration for a run from the
// explicit flag, the environment, and discovered project files.
package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/config"
)

// EnvConfigPath is the environment variable naming a config file,
// checked when no --config flag is given.
const EnvConfigPath = "GOMDTREE_CONFIG"

// Resolve loads the configuration with the standard precedence:
// explicit path, then $GOMDTREE_CONFIG, then a project file discovered
// upward from workDir, then the defaults for fallbackFlavor. The
// returned source is the path of the file used, empty for defaults.
func Resolve(explicit, workDir string, fallbackFlavor config.Flavor) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cfg, err := config.Load(envPath)
		if err != nil {
			return nil, "", fmt.Errorf("load %s=%s: %w", EnvConfigPath, envPath, err)
		}
		return cfg, envPath, nil
	}

	if path := DiscoverProject(workDir); path != "" {
		logging.Default().Debug("using discovered config", logging.FieldPath, path)
		cfg, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	if fallbackFlavor == "" {
		return config.Default(), "", nil
	}
	if !fallbackFlavor.IsValid() {
		return nil, "", fmt.Errorf("unknown flavor %q", fallbackFlavor)
	}
	return config.ForFlavor(fallbackFlavor), "", nil
}
