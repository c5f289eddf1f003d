package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// originList is a comma separated flag.Value for CORS origins.
type originList []string

func (o *originList) String() string {
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-audience token audience name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-cors-origins comma separated allowed CORS origins
//	-tmdb-url TMDB API base URL
//	-tmdb-api-key TMDB API key
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("film-vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var corsOrigins originList
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var logLevel string
	var tokenSignKey, tokenIssuer, tokenAudience string
	var tokenDuration time.Duration
	var requestTimeout, shutdownTimeout time.Duration
	var tmdbURL, tmdbAPIKey string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.Var(&corsOrigins, "cors-origins", "Comma separated allowed CORS origins")
	fs.StringVar(&tmdbURL, "tmdb-url", "", "TMDB API base URL")
	fs.StringVar(&tmdbAPIKey, "tmdb-api-key", "", "TMDB API key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenAudience: tokenAudience,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: corsOrigins,
		},
		Adapter: Adapter{
			TMDB: TMDB{
				BaseURL: tmdbURL,
				APIKey:  tmdbAPIKey,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
