package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func logout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	if err := client.Sessions().Delete(c.Context); err != nil {
		return errors.Wrap(err, "error deleting session")
	}

	fmt.Println("Logout was successful.")

	return nil
}
