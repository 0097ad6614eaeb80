package movieapi

import (
	"github.com/spf13/pflag"

	"github.com/tscholl44/movie-api/pkg/auth/jwt"
	"github.com/tscholl44/movie-api/pkg/component/mongodb"
	"github.com/tscholl44/movie-api/pkg/component/redis"
	"github.com/tscholl44/movie-api/pkg/options/http"
	"github.com/tscholl44/movie-api/pkg/options/log"
)

// Options aggregates all configuration for the movie API service.
type Options struct {
	HTTP  *http.Options    `json:"http" mapstructure:"http"`
	Log   *log.Options     `json:"log" mapstructure:"log"`
	Mongo *mongodb.Options `json:"mongo" mapstructure:"mongo"`
	JWT   *jwt.Options     `json:"jwt" mapstructure:"jwt"`
	Redis *redis.Options   `json:"redis" mapstructure:"redis"`
}

// NewOptions creates Options with defaults for every component.
func NewOptions() *Options {
	return &Options{
		HTTP:  http.NewOptions(),
		Log:   log.NewOptions(),
		Mongo: mongodb.NewOptions(),
		JWT:   jwt.NewOptions(),
		Redis: redis.NewOptions(),
	}
}

// AddFlags adds all component flags to the flagset.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.HTTP.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.Mongo.AddFlags(fs)
	o.JWT.AddFlags(fs)
	o.Redis.AddFlags(fs)
}

// Complete completes all component options.
func (o *Options) Complete() error {
	if err := o.HTTP.Complete(); err != nil {
		return err
	}
	if err := o.Log.Complete(); err != nil {
		return err
	}
	return o.JWT.Complete()
}

// Validate validates all component options.
func (o *Options) Validate() error {
	if err := o.HTTP.Validate(); err != nil {
		return err
	}
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.Mongo.Validate(); err != nil {
		return err
	}
	if err := o.JWT.Validate(); err != nil {
		return err
	}
	return o.Redis.Validate()
}
