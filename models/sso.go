package models

import (
	"slices"
	"time"
)

// BuilderIDStartURL is the start URL of the built-in AWS Builder ID identity.
const BuilderIDStartURL = "https://view.awsapps.com/start"

// SSOProfile describes the session a caller wants a bearer token for.
type SSOProfile struct {
	Name       string   `json:"name" yaml:"name" mapstructure:"name"`
	Region     string   `json:"region" yaml:"region" mapstructure:"region"`
	StartURL   string   `json:"startUrl" yaml:"start_url" mapstructure:"start_url"`
	AccountID  string   `json:"accountId,omitempty" yaml:"account_id,omitempty" mapstructure:"account_id"`
	RoleName   string   `json:"roleName,omitempty" yaml:"role_name,omitempty" mapstructure:"role_name"`
	Scopes     []string `json:"scopes,omitempty" yaml:"scopes,omitempty" mapstructure:"scopes"`
	Identifier string   `json:"identifier,omitempty" yaml:"identifier,omitempty" mapstructure:"identifier"`
}

// TokenKey is the cache key for the profile's token: the identifier if set,
// otherwise the start URL.
func (p SSOProfile) TokenKey() string {
	if p.Identifier != "" {
		return p.Identifier
	}
	return p.StartURL
}

// RegistrationKey is the cache key for the profile's client registration.
func (p SSOProfile) RegistrationKey() RegistrationKey {
	return RegistrationKey{Region: p.Region, Scopes: slices.Clone(p.Scopes)}
}

// RegistrationKey identifies a cached client registration by value.
type RegistrationKey struct {
	Region string   `json:"region"`
	Scopes []string `json:"scopes,omitempty"`
}

// RegistrationVariant distinguishes registrations made before the provider
// started issuing an issuer URL from current ones.
type RegistrationVariant int

const (
	RegistrationLegacy RegistrationVariant = iota
	RegistrationModern
)

func (v RegistrationVariant) String() string {
	if v == RegistrationModern {
		return "modern"
	}
	return "legacy"
}

// ClientRegistration is this application's registration with the identity
// provider. It lives for weeks to months.
type ClientRegistration struct {
	ClientID     string    `json:"clientId"`
	ClientSecret string    `json:"clientSecret"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Scopes       []string  `json:"scopes,omitempty"`
	IssuerURL    string    `json:"issuerUrl,omitempty"`
}

// Variant reports whether the registration is legacy (no issuer URL) or modern.
func (r *ClientRegistration) Variant() RegistrationVariant {
	if r == nil || r.IssuerURL == "" {
		return RegistrationLegacy
	}
	return RegistrationModern
}

// ExpirationTime implements the expiry policy's record contract.
func (r *ClientRegistration) ExpirationTime() time.Time {
	return r.ExpiresAt
}

// SSOToken is a short-lived bearer credential.
type SSOToken struct {
	Identity     string    `json:"identity,omitempty"`
	AccessToken  string    `json:"accessToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
}

// ExpirationTime implements the expiry policy's record contract.
func (t *SSOToken) ExpirationTime() time.Time {
	return t.ExpiresAt
}

// CachedToken is the persisted token record. It keeps the registration the
// token was issued to so a refresh can use the same client credentials.
type CachedToken struct {
	Token        *SSOToken           `json:"token"`
	Registration *ClientRegistration `json:"registration,omitempty"`
	Region       string              `json:"region"`
	StartURL     string              `json:"startUrl"`
}

// SSOAccount is an AWS account the signed-in user can access.
type SSOAccount struct {
	AccountID   string   `json:"accountId" yaml:"accountId"`
	AccountName string   `json:"accountName" yaml:"accountName"`
	Email       string   `json:"emailAddress,omitempty" yaml:"emailAddress,omitempty"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}
