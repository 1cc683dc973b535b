package contract

import "time"

type IConfigProvider interface {
	// GetAccessTokenTTL returns the lifetime of issued access tokens.
	GetAccessTokenTTL() time.Duration
	// GetAIDegradeOnFailure reports whether AI extraction failures degrade
	// to an empty result instead of failing the enclosing request.
	GetAIDegradeOnFailure() bool
	// GetAIServiceAPIKey returns the Gemini API key.
	GetAIServiceAPIKey() string
}
