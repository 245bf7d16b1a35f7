package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-jwt-secret token signing secret
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g., "168h")
//	-password-hash-cost bcrypt cost
//	-log-level log level
//	-read-timeout, -write-timeout, -shutdown-timeout server timeouts
//	-max-body-bytes request body limit
//	-status-policy always-ok or mirror
//	-db-driver pgx or sqlite3
//	-d database DSN
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("trackflow-server", flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.JWTSecret, "jwt-secret", "", "Token signing secret")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime (e.g., 168h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "Bcrypt cost")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.ReadTimeout, "read-timeout", 0, "Server read timeout")
	fs.DurationVar(&cfg.Server.WriteTimeout, "write-timeout", 0, "Server write timeout")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.Int64Var(&cfg.Server.MaxBodyBytes, "max-body-bytes", 0, "Request body limit in bytes")
	fs.StringVar(&cfg.Server.StatusPolicy, "status-policy", "", "HTTP status policy: always-ok or mirror")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces; any other host must
// be "localhost" or an IP address.
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
		return errors.New("port number must be within 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
