// Package domainutil validates domain names before they are stored as project
// configuration, including internationalized (IDN) names.
//
// Validation is purely syntactic: no DNS resolution or network access occurs.
// A value is accepted if it matches the domain grammar directly, or if its
// IDNA-encoded (ASCII compatibility) form does. Use ValidateASCII when
// internationalized names must not be accepted.
//
// # Usage
//
//	import "github.com/docsforge/docs-core/domainutil"
//
//	// Accepts plain and internationalized names
//	if err := domainutil.Validate("müller.de"); err != nil {
//		return fmt.Errorf("invalid domain: %w", err)
//	}
//
//	// Rejects anything that needs IDNA encoding
//	if err := domainutil.ValidateASCII(customDomain); err != nil {
//		return err
//	}
//
// # Accepted forms
//
// The grammar accepts, case-insensitively:
//   - dotted hostnames (labels of up to 63 alphanumeric characters with
//     internal hyphens, an optional trailing dot)
//   - the literal "localhost"
//   - IPv4 literals (no range checking on the octets)
//   - IPv6-style literals, optionally bracketed
//
// Rejections are errors.Is-comparable against ErrInvalidDomain and
// ErrInternationalizedNotAccepted so callers can render specific messages.
package domainutil
