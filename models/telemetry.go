package models

import "time"

const (
	CredentialTypeBearerToken = "bearerToken"

	CredentialSourceAWSID          = "awsId"
	CredentialSourceIdentityCenter = "iamIdentityCenter"

	RefreshResultFailed = "Failed"
)

// RefreshEvent describes the outcome of a token refresh attempt.
type RefreshEvent struct {
	Result             string
	Reason             string
	RequestID          string
	SessionDuration    time.Duration
	CredentialType     string
	CredentialSourceID string
}

// CredentialSourceFor returns the credential source id for a start URL.
func CredentialSourceFor(startURL string) string {
	if startURL == BuilderIDStartURL {
		return CredentialSourceAWSID
	}
	return CredentialSourceIdentityCenter
}
