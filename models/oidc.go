package models

// Grant types understood by the OIDC token endpoint.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// RegisterClientRequest carries the fields sent when registering this client.
type RegisterClientRequest struct {
	ClientName   string
	ClientType   string
	Scopes       []string
	GrantTypes   []string
	RedirectURIs []string
	IssuerURL    string
}

// AuthorizeRequest carries the fields of the browser authorization URL.
type AuthorizeRequest struct {
	ResponseType        string
	ClientID            string
	RedirectURI         string
	Scopes              []string
	State               string
	CodeChallenge       string
	CodeChallengeMethod string
}

// CreateTokenRequest is the token endpoint request for both the code exchange
// and the refresh grant.
type CreateTokenRequest struct {
	ClientID     string
	ClientSecret string
	GrantType    string
	RedirectURI  string
	CodeVerifier string
	Code         string
	RefreshToken string
}
