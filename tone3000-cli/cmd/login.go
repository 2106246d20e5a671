package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func login(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("login requires no arguments")
	}

	// Command-specific flags
	apiKey := c.String(flagAPIKey)
	otpOnly := c.Bool(flagOTPOnly)

	client, tokens, err := getClientAndStore(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	if apiKey == "" {
		fmt.Printf(
			"Please visit the following URL to log in:\n\n  %s\n\n"+
				"After logging in, TONE3000 will redirect to the registered "+
				"return URL with an api_key query parameter. Complete the "+
				"login with:\n\n  t3k login --api-key <api_key>\n",
			client.Sessions().AuthURL(otpOnly),
		)
		return nil
	}

	if _, err := client.Sessions().Create(c.Context, apiKey); err != nil {
		return errors.Wrap(err, "error exchanging api_key for a session")
	}
	// Cache the key so the demo can show the return-trip parameter later.
	if err := tokens.CacheAPIKey(apiKey); err != nil {
		return errors.Wrap(err, "error caching api_key")
	}

	fmt.Println("Login was successful.")

	return nil
}
