package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func modelDownload(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"model download requires one argument-- a model URL",
		)
	}
	modelURL := c.Args().Get(0)

	// Command-specific flags
	file := c.String(flagFile)

	if file == "" {
		parsedURL, err := url.Parse(modelURL)
		if err != nil {
			return errors.Wrapf(err, "invalid model URL %q", modelURL)
		}
		file = path.Base(parsedURL.Path)
		if file == "." || file == "/" {
			return errors.Errorf(
				"cannot derive a file name from %q; please use --file",
				modelURL,
			)
		}
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting TONE3000 client")
	}

	model, err := client.Models().Download(c.Context, modelURL)
	if err != nil {
		return err
	}
	defer model.Close()

	out, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", file)
	}
	defer out.Close()

	written, err := io.Copy(out, model)
	if err != nil {
		return errors.Wrapf(err, "error writing to %s", file)
	}

	fmt.Printf("Wrote %d bytes to %s.\n", written, file)

	return nil
}
