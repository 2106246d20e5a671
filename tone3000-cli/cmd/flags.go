package main

import "github.com/urfave/cli/v2"

const (
	flagAPIKey    = "api-key"
	flagDebug     = "debug"
	flagFavorited = "favorited"
	flagFile      = "file"
	flagGear      = "gear"
	flagInsecure  = "insecure"
	flagOTPOnly   = "otp-only"
	flagOutput    = "output"
	flagPage      = "page"
	flagPageSize  = "page-size"
	flagSize      = "size"
	flagSort      = "sort"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in another format. Supported formats: table, " +
			"json, yaml",
		Value: "table",
	}
	cliFlagPage = &cli.IntFlag{
		Name:    flagPage,
		Aliases: []string{"p"},
		Usage:   "Return the specified page of results",
	}
	cliFlagPageSize = &cli.IntFlag{
		Name:  flagPageSize,
		Usage: "Return the specified number of results per page",
	}
)
