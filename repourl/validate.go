package repourl

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// ErrInvalidCharacter indicates the value contains a disallowed character
	// sequence ("&&" or "|").
	ErrInvalidCharacter = errors.New("invalid character in the URL")
	// ErrUnsupportedScheme indicates the URL scheme is not in the allowed set
	// under the current policy.
	ErrUnsupportedScheme = errors.New("invalid scheme for URL")
	// ErrPrivateCloningNotSupported indicates an SSH-style URL was supplied but
	// private repository access is not enabled.
	ErrPrivateCloningNotSupported = errors.New("manual cloning via SSH is not supported")
)

// Scheme pools. Private and local schemes are gated on Policy.
var (
	publicSchemes  = []string{"https", "http", "git", "ftps", "ftp"}
	privateSchemes = []string{"ssh", "ssh+git"}
	localSchemes   = []string{"file"}
)

// gitUserPattern matches the "git@github.com:user/repo" SSH shorthand.
// Deliberately loose: anything of the form "word@rest" is routed into the
// private-repo policy decision instead of the generic scheme rejection.
var gitUserPattern = regexp.MustCompile(`^\w+@.+`)

// Policy is the trust posture for a single validation call.
type Policy struct {
	// AllowPrivate permits ssh/ssh+git schemes and SSH shorthand.
	AllowPrivate bool
	// Debug permits file:// URLs for local development.
	Debug bool
}

// Validate checks whether rawURL is an acceptable repository URL under policy.
// Relative paths are not accepted; use ValidateSubmodule for submodule URLs.
// The value is never modified: a nil return means the caller may store rawURL
// exactly as supplied.
func Validate(rawURL string, policy Policy) error {
	return validate(rawURL, policy, false)
}

// ValidateSubmodule checks whether rawURL is an acceptable submodule URL under
// policy. It differs from Validate only in accepting relative paths: a
// submodule beginning with "./" or "../" is resolved by the VCS against the
// superproject's default remote, so a leading "." is a legitimate shape here.
func ValidateSubmodule(rawURL string, policy Policy) error {
	return validate(rawURL, policy, true)
}

func validate(rawURL string, policy Policy, allowRelative bool) error {
	// The denylist runs before parsing: adversarial input might not parse the
	// way the rest of the checks assume.
	if strings.Contains(rawURL, "&&") || strings.Contains(rawURL, "|") {
		return ErrInvalidCharacter
	}

	valid := slices.Clone(publicSchemes)
	if policy.AllowPrivate {
		valid = append(valid, privateSchemes...)
	}
	if policy.Debug {
		valid = append(valid, localSchemes...)
	}

	scheme := ""
	if u, err := url.Parse(rawURL); err == nil {
		scheme = strings.ToLower(u.Scheme)
	}

	if slices.Contains(valid, scheme) {
		return nil
	}

	// Not a supported scheme, but several shapes are still acceptable.
	// Launchpad shorthand.
	if strings.HasPrefix(rawURL, "lp:") {
		return nil
	}
	// Relative paths, for submodules only.
	if strings.HasPrefix(rawURL, ".") && allowRelative {
		return nil
	}
	// SSH shorthand ("git@github.com:user/repo.git") or an explicit private
	// scheme without permission.
	if gitUserPattern.MatchString(rawURL) || slices.Contains(privateSchemes, scheme) {
		if policy.AllowPrivate {
			return nil
		}
		return ErrPrivateCloningNotSupported
	}

	if scheme == "" {
		return fmt.Errorf("%w: %q has no scheme", ErrUnsupportedScheme, rawURL)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}
