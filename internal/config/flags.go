package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f portal state file path (file driver)
//	-d database DSN (sqlite/postgres drivers)
//	-storage-driver portal state driver: file, sqlite, postgres, memory
//	-c/-config json file path with configs
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session token duration (e.g., "12h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-settle-delay simulated invoice settlement delay
//	-sweep-interval settlement worker sweep interval
//	-catalog-seed path to a catalog seed JSON file
//	-server-url portal server base URL (admin console)
//	-admin-timeout admin console request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var stateFilePath string
	var databaseDSN string
	var storageDriver string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var settleDelay time.Duration
	var sweepInterval time.Duration
	var catalogSeedPath string
	var adminServerURL string
	var adminTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&stateFilePath, "f", "", "Portal state file path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&storageDriver, "storage-driver", "", "Portal state driver (file, sqlite, postgres, memory)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session token duration (e.g., 12h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&settleDelay, "settle-delay", 0, "Simulated invoice settlement delay")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Settlement worker sweep interval")
	flag.StringVar(&catalogSeedPath, "catalog-seed", "", "Catalog seed JSON file path")
	flag.StringVar(&adminServerURL, "server-url", "", "Portal server base URL (admin console)")
	flag.DurationVar(&adminTimeout, "admin-timeout", 0, "Admin console request timeout")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			Driver:    storageDriver,
			StatePath: stateFilePath,
			DSN:       databaseDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Billing: Billing{
			SettleDelay:   settleDelay,
			SweepInterval: sweepInterval,
		},
		Catalog: Catalog{
			SeedPath: catalogSeedPath,
		},
		Admin: Admin{
			ServerURL:      adminServerURL,
			RequestTimeout: adminTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
