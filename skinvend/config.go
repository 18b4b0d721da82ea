package skinvend

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultBaseURL    = "https://skinvend.io"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 30 * time.Second

	// DefaultGameID is CS2's Steam app id, the marketplace's main game.
	DefaultGameID = 730
)

// Config holds construction-time client settings. APIKey and SecretKey are
// required; SecretKey is only ever used as signing key material and is never
// transmitted. Everything else falls back to a default when zero.
type Config struct {
	APIKey    string `validate:"required"`
	SecretKey string `validate:"required"`

	BaseURL    string `validate:"omitempty,url"`
	APIVersion string
	Timeout    time.Duration
	GameID     int

	// Optional redirect targets the marketplace sends users back to.
	DepositRedirectURL string `validate:"omitempty,url"`
	SuccessRedirectURL string `validate:"omitempty,url"`
	FailRedirectURL    string `validate:"omitempty,url"`
}

var configValidator = validator.New()

// validate checks required fields and normalizes defaults, returning the
// effective configuration. Violations surface as ConfigurationError before
// any network activity.
func (c Config) validate() (Config, error) {
	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]

			return Config{}, newConfigurationError(first.Field(), "failed on the '"+first.Tag()+"' rule")
		}

		return Config{}, newConfigurationError("", err.Error())
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.GameID == 0 {
		c.GameID = DefaultGameID
	}

	return c, nil
}
