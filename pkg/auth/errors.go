package auth

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Sentinel errors. AuthenticationError and ConfigurationError match
// ErrAuthentication and ErrConfiguration under errors.Is.
var (
	ErrConfiguration          = errors.New("configuration error")
	ErrAuthentication         = errors.New("authentication failed")
	ErrTokenMissing           = errors.New("access_token missing from token response")
	ErrMissingCredentials     = errors.New("credentials not configured")
	ErrHeaderStrategyRequired = errors.New("no default header strategy")
)

// ConfigurationError reports that the active environment has no base URL.
type ConfigurationError struct {
	Marketplace domain.Marketplace
	Environment domain.Environment
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %s base URL not configured", e.Marketplace, e.Environment)
}

// Is reports whether target is ErrConfiguration.
func (*ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// AuthenticationError reports a failed token acquisition: the token
// endpoint was unreachable, answered non-2xx, or returned an unusable body.
// A 2xx response without a token wraps ErrTokenMissing.
type AuthenticationError struct {
	Marketplace domain.Marketplace
	Environment domain.Environment
	StatusCode  int
	Description string
	Err         error
}

func (e *AuthenticationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s authentication failed", e.Marketplace, e.Environment)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrAuthentication.
func (*AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}
