package config

import (
	"os"

	"github.com/subosito/gotenv"
)

// LoadDotEnv loads the first existing file from paths into the process env
// keys already present in the environment win over file values
// returns the loaded path, or "" when none of the candidates exist
func LoadDotEnv(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := gotenv.Load(p); err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}
