package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a agent address in format [host]:[port]
//	-c/-config json file path with configs
//	-user-id vault owner id
//	-user-token identity token carrying the vault owner id
//	-db-driver database driver (sqlite3, pgx)
//	-d database DSN
//	-remote remote vault API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-key-cache-ttl derived key cache lifetime, 0 disables
//	-concurrency reconciliation concurrency limit
//	-clipboard-clear clipboard clear delay
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secure-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var jsonConfigPath string
	var userID, userToken string
	var dbDriver, databaseDSN string
	var remoteAddress string
	var requestTimeout time.Duration
	var keyCacheTTL time.Duration
	var concurrency int
	var clipboardClear time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&userID, "user-id", "", "Vault owner id")
	fs.StringVar(&userToken, "user-token", "", "Identity token")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&remoteAddress, "remote", "", "Remote vault API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&keyCacheTTL, "key-cache-ttl", 0, "Derived key cache lifetime")
	fs.IntVar(&concurrency, "concurrency", 0, "Reconciliation concurrency limit")
	fs.DurationVar(&clipboardClear, "clipboard-clear", 0, "Clipboard clear delay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserID:    userID,
			UserToken: userToken,
		},
		Crypto: Crypto{
			KeyCacheTTL:          keyCacheTTL,
			ReconcileConcurrency: concurrency,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Clipboard:    Clipboard{ClearAfter: clipboardClear},
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
