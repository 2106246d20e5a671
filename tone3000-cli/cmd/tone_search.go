package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	tone3000 "github.com/tone-3000/api"
)

func toneSearch(c *cli.Context) error {
	// Args
	if c.Args().Len() > 1 {
		return errors.New("tone search requires at most one argument")
	}
	query := strings.Join(c.Args().Slice(), " ")

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	opts := tone3000.SearchOptions{
		ListOptions: tone3000.ListOptions{
			Page:     c.Int(flagPage),
			PageSize: c.Int(flagPageSize),
		},
		Query: query,
		Sort:  tone3000.Sort(c.String(flagSort)),
	}
	for _, gear := range c.StringSlice(flagGear) {
		opts.Gear = append(opts.Gear, tone3000.Gear(gear))
	}
	for _, size := range c.StringSlice(flagSize) {
		opts.Sizes = append(opts.Sizes, tone3000.Size(size))
	}

	tones, err := client.Tones().Search(c.Context, opts)
	if err != nil {
		return err
	}

	return printToneList(tones, output)
}
