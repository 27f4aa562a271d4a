// Package settings sources the repository-validation trust posture from a YAML
// file and environment variables.
//
// The validators in repourl take an explicit Policy; this package is the
// bridge from process configuration to that value:
//
//	s, err := settings.Load(filepath.Join(configDir, "settings.yaml"))
//	if err != nil {
//		return err
//	}
//	if err := repourl.Validate(repoURL, s.Policy()); err != nil {
//		return err
//	}
//
// Environment variables override the file:
//   - DOCSFORGE_ALLOW_PRIVATE_REPOS enables ssh/ssh+git repository URLs
//   - DOCSFORGE_DEBUG enables file:// repository URLs and debug logging
//
// Boolean values accept "1", "true", or "yes", case-insensitively.
package settings
