// Package repourl validates version-control repository URLs before they are
// stored as project configuration.
//
// Validation is a pure function of the URL and an explicit Policy: no network
// access, no cloning, no normalization. Accepted values pass through exactly as
// the user supplied them.
//
// # Usage
//
//	import "github.com/docsforge/docs-core/repourl"
//
//	policy := repourl.Policy{AllowPrivate: false, Debug: false}
//
//	// Top-level repository URL
//	if err := repourl.Validate("https://github.com/user/repo.git", policy); err != nil {
//		return fmt.Errorf("invalid repository URL: %w", err)
//	}
//
//	// Submodule URLs may be relative to the superproject's remote
//	if err := repourl.ValidateSubmodule("../sibling.git", policy); err != nil {
//		return err
//	}
//
// # Policy
//
// The scheme allowlist depends on the caller's trust posture:
//   - https, http, git, ftps, ftp — always allowed
//   - ssh, ssh+git — only with Policy.AllowPrivate
//   - file — only with Policy.Debug (local development)
//
// Beyond plain scheme matching, Launchpad "lp:" shorthand is always accepted,
// and "user@host:path" SSH shorthand is accepted when AllowPrivate is set. A
// value containing "&&" or "|" is rejected before any parsing, regardless of
// policy, to keep shell metacharacters out of stored URLs.
//
// Rejections compare with errors.Is against ErrInvalidCharacter,
// ErrUnsupportedScheme, and ErrPrivateCloningNotSupported.
package repourl
