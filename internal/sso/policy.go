package sso

import (
	"time"

	"github.com/BerryBytes/ssoctl/models"
)

// ExpiryBuffer is subtracted from every expiry so a record judged valid does
// not expire during the request that uses it.
const ExpiryBuffer = 60 * time.Second

type Expiring interface {
	ExpirationTime() time.Time
}

func IsExpired(record Expiring) bool {
	return IsExpiredAt(record, time.Now())
}

// IsExpiredAt reports whether now+ExpiryBuffer has reached the record's
// expiry. A nil record is expired.
func IsExpiredAt(record Expiring, now time.Time) bool {
	if record == nil {
		return true
	}
	switch r := record.(type) {
	case *models.SSOToken:
		if r == nil {
			return true
		}
	case *models.ClientRegistration:
		if r == nil {
			return true
		}
	}
	return !now.Add(ExpiryBuffer).Before(record.ExpirationTime())
}

// IsDeprecatedAuth reports whether a registration predates issuer URLs. Such
// registrations are never used for the authorization code flow.
func IsDeprecatedAuth(registration *models.ClientRegistration) bool {
	return registration.Variant() == models.RegistrationLegacy
}
