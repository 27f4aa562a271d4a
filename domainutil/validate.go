package domainutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrInvalidDomain indicates the value matches neither the domain grammar
	// nor its IDNA-encoded form.
	ErrInvalidDomain = errors.New("invalid plain or internationalized domain name")
	// ErrInternationalizedNotAccepted indicates the value failed the plain
	// grammar and internationalized names are not accepted by the caller.
	ErrInternationalizedNotAccepted = errors.New("invalid domain name, internationalized names are not accepted")

	// domainPattern matches a full hostname, "localhost", an IPv4 literal, or an
	// IPv6-style literal. Anchored: a substring match must never accept a value.
	domainPattern = regexp.MustCompile(`^(?i:` +
		`(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+(?:[a-z]{2,6}\.?|[a-z0-9-]+[a-z0-9]\.?)` +
		`|localhost` +
		`|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}` +
		`|\[?[a-f0-9]*:[a-f0-9:]+\]?` +
		`)$`)
)

// Validate checks whether name is a valid plain or internationalized domain
// name. Names that fail the plain grammar are IDNA-encoded and retried; a name
// whose ASCII form passes is accepted. Encoding failures are not surfaced as a
// separate error: the rejection reason is always ErrInvalidDomain.
func Validate(name string) error {
	if domainPattern.MatchString(name) {
		return nil
	}
	if name == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidDomain)
	}
	// The registration profile does not case-fold and rejects uppercase
	// letters outright. The grammar is case-insensitive, so the encoding
	// path must be too.
	ascii, err := idna.Registration.ToASCII(strings.ToLower(name))
	if err != nil {
		return ErrInvalidDomain
	}
	if !domainPattern.MatchString(ascii) {
		return ErrInvalidDomain
	}
	return nil
}

// ValidateASCII checks whether name is a valid domain name without attempting
// IDNA encoding. Internationalized names are rejected with
// ErrInternationalizedNotAccepted.
func ValidateASCII(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty value", ErrInternationalizedNotAccepted)
	}
	if !domainPattern.MatchString(name) {
		return ErrInternationalizedNotAccepted
	}
	return nil
}
