package jwt

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultSigningMethod is the default JWT signing algorithm.
	DefaultSigningMethod = "HS256"

	// DefaultExpired is the default token lifetime. Issued tokens are
	// valid for 24 hours, the convention the login endpoint documents.
	DefaultExpired = 24 * time.Hour

	// DefaultIssuer is the default token issuer.
	DefaultIssuer = "movie-api"

	// MinKeyLength is the minimum signing key length. HMAC keys shorter
	// than 32 bytes are trivially brute-forceable.
	MinKeyLength = 32
)

// SupportedSigningMethods contains the supported HMAC signing algorithms.
// The service signs with a process-wide shared secret, so only the HS
// family is accepted.
var SupportedSigningMethods = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Options contains JWT configuration.
type Options struct {
	// Key is the secret used to sign and verify tokens.
	// Prefer the JWT_KEY environment variable over flags or config files.
	Key string `json:"-" mapstructure:"key"`

	// SigningMethod is the signing algorithm (HS256, HS384, HS512).
	SigningMethod string `json:"signing-method" mapstructure:"signing-method"`

	// Expired is the token lifetime.
	Expired time.Duration `json:"expired" mapstructure:"expired"`

	// Issuer is the token issuer claim.
	Issuer string `json:"issuer" mapstructure:"issuer"`
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		SigningMethod: DefaultSigningMethod,
		Expired:       DefaultExpired,
		Issuer:        DefaultIssuer,
	}
}

// AddFlags adds JWT flags to the given FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Key, "jwt.key", o.Key, "JWT signing key (or set JWT_KEY)")
	fs.StringVar(&o.SigningMethod, "jwt.signing-method", o.SigningMethod, "JWT signing algorithm (HS256|HS384|HS512)")
	fs.DurationVar(&o.Expired, "jwt.expired", o.Expired, "Token lifetime")
	fs.StringVar(&o.Issuer, "jwt.issuer", o.Issuer, "Token issuer claim")
}

// Complete fills unset fields from the environment and defaults.
func (o *Options) Complete() error {
	if o.Key == "" {
		o.Key = os.Getenv("JWT_KEY")
	}
	if o.SigningMethod == "" {
		o.SigningMethod = DefaultSigningMethod
	}
	if o.Expired == 0 {
		o.Expired = DefaultExpired
	}
	if o.Issuer == "" {
		o.Issuer = DefaultIssuer
	}
	return nil
}

// Validate validates the options.
func (o *Options) Validate() error {
	if len(o.Key) < MinKeyLength {
		return fmt.Errorf("jwt key must be at least %d characters", MinKeyLength)
	}
	if !SupportedSigningMethods[o.SigningMethod] {
		return fmt.Errorf("unsupported signing method: %s", o.SigningMethod)
	}
	if o.Expired <= 0 {
		return fmt.Errorf("token lifetime must be positive, got %s", o.Expired)
	}
	return nil
}
