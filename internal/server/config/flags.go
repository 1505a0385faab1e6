package config

import (
	"flag"
	"os"
	"time"

	"storedash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   address and port to bind the HTTP endpoint
//	-k string   HMAC secret for signing access tokens
//	-l int      access token lifetime in minutes
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to bind")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "HMAC secret for access tokens")
	tokenValidity := fs.Int("l", int(cfg.AccessTokenValidityDuration.Minutes()), "access token lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
