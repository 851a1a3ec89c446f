package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmailShape is the cheap offline check every signup goes through.
func ValidEmailShape(email string) bool {
	return emailShape.MatchString(email)
}

// EmailDomainResolves checks that the domain actually receives mail (MX,
// falling back to A/AAAA). Network-dependent, so it only runs when
// VERIFY_EMAIL_DOMAIN is on.
func EmailDomainResolves(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
