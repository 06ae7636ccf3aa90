package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagAPIKey         = "api-key"
	flagAPISecret      = "api-secret"
	flagAuthToken      = "auth-token"
	flagUserID         = "uid"
	flagEndpoint       = "endpoint"
	flagRequestTimeout = "request-timeout"
	flagRate           = "rate"
	flagDir            = "dir"
	flagJournal        = "journal"
	flagLimit          = "limit"
	flagRecurse        = "recurse"
	flagDate           = "date"
	flagQuiet          = "quiet"
	flagRetries        = "retries"
	flagRetryDelay     = "retry-delay"
	flagMaxChain       = "max-chain"
	flagOTLPEndpoint   = "otlp-endpoint"
	flagConfig         = "config"
)

// RegisterFlags declares every configuration flag on fs.
//
// Flags:
//
//	--api-key          remote API key
//	--api-secret       remote API secret
//	--auth-token       pre-issued auth token
//	--uid              NSID of the account to back up
//	--endpoint         REST endpoint URL
//	--request-timeout  timeout of one remote call (e.g. "30s")
//	--rate             remote calls per second, negative disables pacing
//	--dir              backup directory
//	--journal          journal database file
//	-l/--limit         kind letters to sync (any of cfgoprst)
//	-r/--recurse       follow ids into nested sets and photos
//	-d/--date          popular photos of DATE or "FROM|TO"
//	-q/--quiet         hide progress output
//	--retries          tries per photo
//	--retry-delay      pause between tries (e.g. "1s")
//	--max-chain        longest predecessor walk accepted while merging ids
//	--otlp-endpoint    OTLP gRPC collector host:port
//	-c/--config        JSON config file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagAPIKey, "", "Remote API key")
	fs.String(flagAPISecret, "", "Remote API secret")
	fs.String(flagAuthToken, "", "Pre-issued auth token")
	fs.String(flagUserID, "", "NSID of the account to back up")
	fs.String(flagEndpoint, "", "REST endpoint URL")
	fs.Duration(flagRequestTimeout, 0, "Timeout of one remote call (e.g., 30s)")
	fs.Float64(flagRate, 0, "Remote calls per second, negative disables pacing")
	fs.String(flagDir, "", "Backup directory")
	fs.String(flagJournal, "", "Journal database file")
	fs.StringP(flagLimit, "l", "", "Kind letters to sync: c collections, f favorites, g galleries, o profile, p photos, r groups, s sets, t contacts")
	fs.BoolP(flagRecurse, "r", false, "Follow ids into nested sets and photos")
	fs.StringP(flagDate, "d", "", "Sync photos popular on DATE or FROM|TO (YYYY-MM-DD)")
	fs.BoolP(flagQuiet, "q", false, "Hide progress output")
	fs.Int(flagRetries, 0, "Tries per photo")
	fs.Duration(flagRetryDelay, 0, "Pause between tries (e.g., 1s)")
	fs.Int(flagMaxChain, 0, "Longest predecessor walk accepted while merging ids")
	fs.String(flagOTLPEndpoint, "", "OTLP gRPC collector host:port")
	fs.StringP(flagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the flags declared by [RegisterFlags] back into a
// [StructuredConfig]. Flags left unset stay at their zero value so lower
// priority sources can fill them.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			APIKey:    r.str(flagAPIKey),
			APISecret: r.str(flagAPISecret),
			AuthToken: r.str(flagAuthToken),
			UserID:    r.str(flagUserID),
		},
		Adapter: Adapter{
			Endpoint:          r.str(flagEndpoint),
			RequestTimeout:    r.duration(flagRequestTimeout),
			RequestsPerSecond: r.float(flagRate),
		},
		Storage: Storage{
			Dir:        r.str(flagDir),
			JournalDSN: r.str(flagJournal),
		},
		Sync: Sync{
			Limit:         r.str(flagLimit),
			Recurse:       r.boolean(flagRecurse),
			Date:          r.str(flagDate),
			Quiet:         r.boolean(flagQuiet),
			RetryAttempts: r.integer(flagRetries),
			RetryDelay:    r.duration(flagRetryDelay),
			MaxChainDepth: r.integer(flagMaxChain),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: r.str(flagOTLPEndpoint),
		},
		JSONFilePath: r.str(flagConfig),
	}

	if r.err != nil {
		return nil, fmt.Errorf("error reading flags: %w", r.err)
	}

	return cfg, nil
}

// flagReader keeps the first lookup error so parseFlags stays linear.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	v, err := r.fs.GetString(name)
	r.keep(err)
	return v
}

func (r *flagReader) boolean(name string) bool {
	v, err := r.fs.GetBool(name)
	r.keep(err)
	return v
}

func (r *flagReader) integer(name string) int {
	v, err := r.fs.GetInt(name)
	r.keep(err)
	return v
}

func (r *flagReader) float(name string) float64 {
	v, err := r.fs.GetFloat64(name)
	r.keep(err)
	return v
}

func (r *flagReader) duration(name string) time.Duration {
	v, err := r.fs.GetDuration(name)
	r.keep(err)
	return v
}

func (r *flagReader) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
