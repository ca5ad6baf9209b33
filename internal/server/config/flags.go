package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/repovault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (empty disables metrics)
//	-d string   PostgreSQL DSN
//	-n string   PostgreSQL schema name
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-k string   object hash algorithm (sha256, blake2b-256, blake3)
//	-l string   log level
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-v int      presigned URL validity, minutes
//	-f string   directory VerifyFile reads from (empty disables it)
//
// Only the flags listed here are passed to the FlagSet, so -c/-config and
// -migrate do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-d", "-n", "-s", "-t", "-k", "-l", "-u", "-p", "-b", "-g", "-e", "-v", "-f",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to expose metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SchemaName, "n", config.SchemaName, "database schema name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.ObjectHashAlgorithm, "k", config.ObjectHashAlgorithm, "object hash algorithm")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.VerifyRoot, "f", config.VerifyRoot, "directory for file verification")

	presignValidityDuration := fs.Int("v", int(config.PresignValidityDuration.Minutes()), "presigned URL validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.PresignValidityDuration = time.Duration(*presignValidityDuration) * time.Minute
}
