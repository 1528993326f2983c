package oracle

import "errors"

var (
	// ErrMissingSigner indicates the caller identity is absent (zero).
	ErrMissingSigner = errors.New("oracle: missing signer")

	// ErrDNSLookupFailed indicates a DNS SRV lookup failed.
	ErrDNSLookupFailed = errors.New("oracle: DNS lookup failed")

	// ErrUnknownProgram indicates no external program is published for the domain.
	ErrUnknownProgram = errors.New("oracle: no external program found")

	// ErrDNSSECValidationFailed indicates the upstream resolver did not
	// authenticate the response.
	ErrDNSSECValidationFailed = errors.New("oracle: DNSSEC validation failed")
)
