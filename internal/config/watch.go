package config

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kilomoco/kilomoco/internal/watcher"
)

// WatchProfiles watches every existing profile candidate directory and calls
// onChange with a freshly resolved registry whenever one of them changes.
// It returns a close function to stop watching. With no candidate
// directories the close function is still valid and watching is a no-op.
func WatchProfiles(extraDir string, onChange func(Registry)) (func(), error) {
	w, err := watcher.New(func(events []watcher.Event) {
		if onChange != nil {
			onChange(ResolveProfilesWith(extraDir))
		}
	}, watcher.WithDebounceDuration(500*time.Millisecond))
	if err != nil {
		return nil, err
	}

	dirs := ProfileDirCandidates()
	if extraDir != "" && dirExists(extraDir) {
		dirs = append([]string{extraDir}, dirs...)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("failed to watch profiles dir")
		}
	}

	return func() { w.Close() }, nil
}
