package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func selectFlow(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("select requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	fmt.Printf(
		"Please visit the following URL to browse and select a tone:\n\n"+
			"  %s\n\nAfter a tone is selected, TONE3000 will redirect to the "+
			"registered return URL with a tone_url query parameter pointing "+
			"at the selected tone's downloadable model.\n",
		client.Sessions().SelectURL(),
	)

	return nil
}
