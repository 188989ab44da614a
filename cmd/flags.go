package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/config"
)

func RequiredStringFlag(strFlag *cli.StringFlag) *cli.StringFlag {
	copy := *strFlag
	copy.Required = true
	return &copy
}

func RequiredUint64Flag(flag *cli.Uint64Flag) *cli.Uint64Flag {
	copy := *flag
	copy.Required = true
	return &copy
}

var ConfigFlag = &cli.StringFlag{
	Name:    "config",
	Usage:   "Path to a TOML, YAML or JSON config file.",
	EnvVars: []string{"APPSTORE_CONFIG"},
}

var LogLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "Log level for all subsystems (debug, info, warn, error).",
	Value:   "info",
	EnvVars: []string{"APPSTORE_LOG_LEVEL"},
}

// Values for the flags below are applied by config.LoadConfig; environment
// variables are bound there too.
var GlobalFlags = []cli.Flag{
	ConfigFlag,
	LogLevelFlag,
	&cli.StringFlag{
		Name:  "rpc-url",
		Usage: "Ethereum JSON-RPC endpoint of the registry chain.",
		Value: config.DefaultRPCURL,
	},
	&cli.StringFlag{
		Name:  "contract",
		Usage: "Address of the registry contract.",
		Value: config.DefaultContract,
	},
	&cli.Uint64Flag{
		Name:  "chain-id",
		Usage: "Chain id used for signing. Asks the node when unset.",
	},
	&cli.BoolFlag{
		Name:  "confirm",
		Usage: "Wait for registry transactions to be mined.",
	},
	&cli.StringFlag{
		Name:  "ipfs-api",
		Usage: "IPFS RPC API as a URL or multiaddr.",
		Value: config.DefaultIPFSAPI,
	},
	&cli.StringFlag{
		Name:  "ipfs-auth-token",
		Usage: "Authorization header sent to the IPFS API.",
	},
	&cli.StringFlag{
		Name:  "ipfs-auth-secret",
		Usage: "Secret used to sign a JWT bearer token for the IPFS API.",
	},
	&cli.StringFlag{
		Name:    "data-dir",
		Aliases: []string{"d"},
		Usage:   "Root directory to store data in.",
	},
	&cli.StringFlag{
		Name:    "account",
		Aliases: []string{"a"},
		Usage:   "Wallet account to act as. Defaults to the first account.",
	},
	&cli.DurationFlag{
		Name:  "poll-interval",
		Usage: "How often the registry update time is checked.",
		Value: config.DefaultPollInterval,
	},
	&cli.DurationFlag{
		Name:  "render-pace",
		Usage: "Delay between rendered listings.",
		Value: config.DefaultRenderPace,
	},
	&cli.Uint64Flag{
		Name:  "page-size",
		Usage: "Number of listings read from the registry.",
		Value: config.DefaultPageSize,
	},
	&cli.DurationFlag{
		Name:  "notice-ttl",
		Usage: "How long transient notices stay up.",
		Value: config.DefaultNoticeTTL,
	},
	&cli.BoolFlag{
		Name:  "reuse-text",
		Usage: "Reuse the stored description on update when the text is unchanged.",
	},
	&cli.StringFlag{
		Name:  "content-backend",
		Usage: "Where listing content lives: ipfs, memory, leveldb, fs or s3.",
		Value: config.DefaultBackend,
	},
	&cli.StringFlag{
		Name:  "content-path",
		Usage: "Directory for the leveldb and fs content backends.",
	},
	&cli.StringFlag{
		Name:  "s3-bucket",
		Usage: "Bucket for the s3 content backend.",
	},
	&cli.StringFlag{
		Name:  "s3-prefix",
		Usage: "Key prefix for the s3 content backend.",
	},
	&cli.StringFlag{
		Name:  "s3-region",
		Usage: "Region for the s3 content backend.",
	},
	&cli.StringFlag{
		Name:  "s3-endpoint",
		Usage: "Custom endpoint for S3 compatible stores.",
	},
	&cli.StringFlag{
		Name:  "s3-access-key-id",
		Usage: "Static access key for the s3 content backend.",
	},
	&cli.StringFlag{
		Name:  "s3-secret-access-key",
		Usage: "Static secret key for the s3 content backend.",
	},
	&cli.StringFlag{
		Name:  "sentry-dsn",
		Usage: "Report errors to this Sentry DSN.",
	},
	&cli.StringFlag{
		Name:  "sentry-environment",
		Usage: "Environment name attached to reported errors.",
		Value: "production",
	},
}

var ListingIDFlag = &cli.Uint64Flag{
	Name:  "id",
	Usage: "Registry id of the listing.",
}

var NameFlag = &cli.StringFlag{
	Name:    "name",
	Aliases: []string{"n"},
	Usage:   "Display name of the app.",
}

var DescriptionFlag = &cli.StringFlag{
	Name:  "description",
	Usage: "Description of the app.",
}

var IconFlag = &cli.StringFlag{
	Name:  "icon",
	Usage: "Path to the icon image.",
}

var PackageFlag = &cli.StringFlag{
	Name:    "package",
	Aliases: []string{"p"},
	Usage:   "Path to the app package.",
}
