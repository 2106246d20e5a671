package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	tone3000 "github.com/tone-3000/api"
)

func modelList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("model list requires one argument-- a tone ID")
	}
	toneID, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid tone ID %q", c.Args().Get(0))
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	models, err := client.Models().List(
		c.Context,
		toneID,
		tone3000.ListOptions{
			Page:     c.Int(flagPage),
			PageSize: c.Int(flagPageSize),
		},
	)
	if err != nil {
		return err
	}

	if len(models.Items) == 0 {
		fmt.Println("No models found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "TYPE", "SIZE", "URL")
		for _, model := range models.Items {
			table.AddRow(
				model.ID,
				model.Name,
				model.Type,
				model.Size,
				model.URL,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(models)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list models operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list models operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
