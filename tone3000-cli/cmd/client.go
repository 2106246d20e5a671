package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	tone3000 "github.com/tone-3000/api"
)

func getClient(c *cli.Context) (tone3000.Client, error) {
	client, _, err := getClientAndStore(c)
	return client, err
}

func getClientAndStore(
	c *cli.Context,
) (tone3000.Client, *tone3000.FileTokenStore, error) {
	config, err := getConfig()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error retrieving configuration")
	}
	tokens, err := tone3000.NewFileTokenStore()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error opening token store")
	}

	opts := []tone3000.ClientOption{
		tone3000.WithReauthHandler(func(authURL string) {
			fmt.Fprintf(
				os.Stderr,
				"Your session could not be renewed. Please visit the "+
					"following URL to log in again:\n\n  %s\n\n",
				authURL,
			)
		}),
	}
	if c.Bool(flagInsecure) {
		opts = append(opts, tone3000.AllowInsecureConnections())
	}
	if c.Bool(flagDebug) {
		opts = append(
			opts,
			tone3000.WithLogger(
				zerolog.New(
					zerolog.ConsoleWriter{Out: os.Stderr},
				).With().Timestamp().Logger(),
			),
		)
	}

	return tone3000.NewClient(
		config.APIAddress,
		config.AppID,
		config.RedirectURL,
		tokens,
		opts...,
	), tokens, nil
}
