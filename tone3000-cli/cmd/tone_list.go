package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	tone3000 "github.com/tone-3000/api"
)

func toneList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("tone list requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)
	favorited := c.Bool(flagFavorited)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	opts := tone3000.ListOptions{
		Page:     c.Int(flagPage),
		PageSize: c.Int(flagPageSize),
	}
	var tones tone3000.ToneList
	if favorited {
		tones, err = client.Tones().Favorited(c.Context, opts)
	} else {
		tones, err = client.Tones().Created(c.Context, opts)
	}
	if err != nil {
		return err
	}

	return printToneList(tones, output)
}

func printToneList(tones tone3000.ToneList, output string) error {
	if len(tones.Items) == 0 {
		fmt.Println("No tones found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TITLE", "GEAR", "MODELS", "DOWNLOADS", "FAVORITES")
		for _, tone := range tones.Items {
			table.AddRow(
				tone.ID,
				tone.Title,
				tone.Gear,
				tone.ModelCount,
				tone.Downloads,
				tone.Favorites,
			)
		}
		fmt.Println(table)
		fmt.Printf(
			"\nPage %d of %d (%d tones total)\n",
			tones.Meta.Page,
			tones.Meta.TotalPages,
			tones.Meta.Total,
		)

	case "yaml":
		yamlBytes, err := yaml.Marshal(tones)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list tones operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(tones, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list tones operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
