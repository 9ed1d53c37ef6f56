package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names shared by [RegisterFlags] and parseFlags.
const (
	flagAddress          = "address"
	flagDatabaseDSN      = "database-dsn"
	flagConfig           = "config"
	flagLogLevel         = "log-level"
	flagTokenSignKey     = "token-sign-key"
	flagTokenIssuer      = "token-issuer"
	flagTokenDuration    = "token-duration"
	flagRequestTimeout   = "request-timeout"
	flagPasswordHashCost = "password-hash-cost"
	flagRedisAddress     = "redis-address"
	flagSecureCookies    = "secure-cookies"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines all configuration flags on fs. Every flag defaults to
// its zero value so that unset flags never shadow other sources.
//
// Flags:
//
//	-a, --address            server address in format [host]:[port]
//	-d, --database-dsn       database DSN
//	-c, --config             JSON or YAML config file path
//	    --log-level          log level (debug, info, warn, error)
//	    --token-sign-key     session token signing key
//	    --token-issuer       session token issuer name
//	    --token-duration     session duration (e.g., "12h", "30m")
//	    --request-timeout    request timeout (e.g., "30s", "1m")
//	    --password-hash-cost bcrypt cost
//	    --redis-address      redis address for revoked sessions
//	    --secure-cookies     mark the session cookie as Secure
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, flagAddress, "a", "Net address host:port")
	fs.StringP(flagDatabaseDSN, "d", "", "Database DSN")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
	fs.String(flagLogLevel, "", "Log level")
	fs.String(flagTokenSignKey, "", "Session token signing key")
	fs.String(flagTokenIssuer, "", "Session token issuer")
	fs.Duration(flagTokenDuration, 0, "Session duration (e.g., 12h, 30m)")
	fs.Duration(flagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int(flagPasswordHashCost, 0, "Bcrypt cost for new passwords")
	fs.String(flagRedisAddress, "", "Redis address host:port for revoked sessions")
	fs.Bool(flagSecureCookies, false, "Mark the session cookie as Secure")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Flags missing from fs are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error

	str := func(name string) string {
		f := fs.Lookup(name)
		if f == nil {
			return ""
		}
		return f.Value.String()
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:     str(flagLogLevel),
			TokenSignKey: str(flagTokenSignKey),
			TokenIssuer:  str(flagTokenIssuer),
		},
		Storage: Storage{
			DB:    DB{DSN: str(flagDatabaseDSN)},
			Redis: Redis{Address: str(flagRedisAddress)},
		},
		Server: Server{
			HTTPAddress: str(flagAddress),
		},
		ConfigFilePath: str(flagConfig),
	}

	if fs.Lookup(flagTokenDuration) != nil {
		d, err := fs.GetDuration(flagTokenDuration)
		errs = append(errs, err)
		cfg.App.TokenDuration = d
	}
	if fs.Lookup(flagRequestTimeout) != nil {
		d, err := fs.GetDuration(flagRequestTimeout)
		errs = append(errs, err)
		cfg.Server.RequestTimeout = d
	}
	if fs.Lookup(flagPasswordHashCost) != nil {
		cost, err := fs.GetInt(flagPasswordHashCost)
		errs = append(errs, err)
		cfg.App.PasswordHashCost = cost
	}
	if fs.Lookup(flagSecureCookies) != nil {
		secure, err := fs.GetBool(flagSecureCookies)
		errs = append(errs, err)
		cfg.App.SecureCookies = secure
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
