package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ProfilesDirEnv names an override directory for profile discovery.
const ProfilesDirEnv = "KILOMOCO_PROFILES_DIR"

// profileDoc is the on-disk YAML shape of a single profile file.
// The filename stem is the id fallback.
type profileDoc struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Modes       map[string]string `yaml:"modes"`
}

// ProfileDirCandidates returns the profile source directories in priority
// order: the KILOMOCO_PROFILES_DIR override, ./profiles, ~/.kilomoco/profiles.
// Directories that do not exist are omitted; absence is not an error.
func ProfileDirCandidates() []string {
	var candidates []string

	if env := os.Getenv(ProfilesDirEnv); env != "" {
		if dirExists(env) {
			candidates = append(candidates, env)
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdProfiles := filepath.Join(cwd, "profiles")
		if dirExists(cwdProfiles) {
			candidates = append(candidates, cwdProfiles)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeProfiles := filepath.Join(home, ".kilomoco", "profiles")
		if dirExists(homeProfiles) {
			candidates = append(candidates, homeProfiles)
		}
	}

	return candidates
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LoadProfilesFromDir loads every valid profile file (*.yml, *.yaml) in dir.
// A file is valid only if it parses to a mapping with a string-to-string
// modes mapping. Invalid files are skipped with a warning; they never abort
// the scan. An unreadable dir yields an empty registry.
func LoadProfilesFromDir(dir string) Registry {
	profiles := make(Registry)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug().Str("dir", dir).Err(err).Msg("profile dir not readable")
		return profiles
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		profile, err := loadProfileFile(path)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("skipping invalid profile file")
			continue
		}
		profiles[profile.ID] = profile
	}

	return profiles
}

func loadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc profileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Modes == nil {
		return nil, errMissingModes
	}

	id := doc.ID
	if id == "" {
		base := filepath.Base(path)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name := doc.Name
	if name == "" {
		name = id
	}

	return &Profile{
		ID:          id,
		Name:        name,
		Description: doc.Description,
		Modes:       doc.Modes,
	}, nil
}

// ResolveProfiles merges profiles from all candidate directories. When two
// directories define the same id, the directory processed later in priority
// order wins with its full definition; fields are never merged. If no
// directory yields any profiles, the built-in table is returned.
func ResolveProfiles() Registry {
	return ResolveProfilesWith("")
}

// ResolveProfilesWith is ResolveProfiles with an optional extra directory
// (from the config file) scanned before the standard candidates, so the
// standard candidates override it.
func ResolveProfilesWith(extraDir string) Registry {
	dirs := ProfileDirCandidates()
	if extraDir != "" && dirExists(extraDir) {
		dirs = append([]string{extraDir}, dirs...)
	}

	merged := make(Registry)
	for _, dir := range dirs {
		for id, p := range LoadProfilesFromDir(dir) {
			merged[id] = p
		}
	}
	if len(merged) > 0 {
		return merged
	}
	return BuiltinProfiles()
}
