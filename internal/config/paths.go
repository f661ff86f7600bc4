package config

import "os"

// EnvProfile names the environment variable pointing at a profile file
const EnvProfile = "ARCHIGEN_PROFILE"

// defaultProfileName is the profile looked up in the working directory
const defaultProfileName = "archigen.yaml"

// FindProfilePath returns the first existing profile location, or empty if
// no profile file is present
func FindProfilePath() string {
	if path := os.Getenv(EnvProfile); path != "" {
		if fileExists(path) {
			return path
		}
	}
	if fileExists(defaultProfileName) {
		return defaultProfileName
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
