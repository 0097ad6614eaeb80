package mongodb

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// redactedPassword is the placeholder used when printing passwords.
const redactedPassword = "[REDACTED]"

// Options defines configuration options for MongoDB.
type Options struct {
	// Connection
	URI      string `json:"uri" mapstructure:"uri"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"-" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`

	// Connection pool
	MaxPoolSize uint64        `json:"max-pool-size" mapstructure:"max-pool-size"`
	MinPoolSize uint64        `json:"min-pool-size" mapstructure:"min-pool-size"`
	MaxIdleTime time.Duration `json:"max-idle-time" mapstructure:"max-idle-time"`

	// Timeouts
	ConnectTimeout         time.Duration `json:"connect-timeout" mapstructure:"connect-timeout"`
	SocketTimeout          time.Duration `json:"socket-timeout" mapstructure:"socket-timeout"`
	ServerSelectionTimeout time.Duration `json:"server-selection-timeout" mapstructure:"server-selection-timeout"`

	// Other
	AuthSource string `json:"auth-source" mapstructure:"auth-source"`
	Direct     bool   `json:"direct" mapstructure:"direct"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Host:                   "127.0.0.1",
		Port:                   27017,
		Database:               "movieapi",
		MaxPoolSize:            100,
		MinPoolSize:            10,
		MaxIdleTime:            5 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}
}

// String returns a representation safe for logging.
func (o *Options) String() string {
	password := redactedPassword
	if o.Password == "" {
		password = ""
	}
	return fmt.Sprintf("MongoDB{host=%s, port=%d, username=%s, password=%s, database=%s}",
		o.Host, o.Port, o.Username, password, o.Database)
}

// AddFlags adds MongoDB flags to the given FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.URI, "mongo.uri", o.URI, "MongoDB connection URI (overrides host/port)")
	fs.StringVar(&o.Host, "mongo.host", o.Host, "MongoDB host")
	fs.IntVar(&o.Port, "mongo.port", o.Port, "MongoDB port")
	fs.StringVar(&o.Username, "mongo.username", o.Username, "MongoDB username")
	fs.StringVar(&o.Password, "mongo.password", o.Password, "MongoDB password")
	fs.StringVar(&o.Database, "mongo.database", o.Database, "MongoDB database name")
	fs.Uint64Var(&o.MaxPoolSize, "mongo.max-pool-size", o.MaxPoolSize, "Maximum connection pool size")
	fs.Uint64Var(&o.MinPoolSize, "mongo.min-pool-size", o.MinPoolSize, "Minimum connection pool size")
	fs.DurationVar(&o.MaxIdleTime, "mongo.max-idle-time", o.MaxIdleTime, "Maximum connection idle time")
	fs.DurationVar(&o.ConnectTimeout, "mongo.connect-timeout", o.ConnectTimeout, "Connection timeout")
	fs.DurationVar(&o.SocketTimeout, "mongo.socket-timeout", o.SocketTimeout, "Socket timeout")
	fs.DurationVar(&o.ServerSelectionTimeout, "mongo.server-selection-timeout", o.ServerSelectionTimeout, "Server selection timeout")
	fs.StringVar(&o.AuthSource, "mongo.auth-source", o.AuthSource, "Authentication source database")
	fs.BoolVar(&o.Direct, "mongo.direct", o.Direct, "Use a direct connection")
}

// Validate validates the options.
func (o *Options) Validate() error {
	if o.URI != "" {
		return nil
	}
	if o.Host == "" {
		return fmt.Errorf("mongo host is required when uri is not provided")
	}
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("mongo port must be between 1 and 65535")
	}
	if o.Database == "" {
		return fmt.Errorf("mongo database is required")
	}
	return nil
}
