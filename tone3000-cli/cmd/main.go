package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "t3k"
	app.Usage = "Browse and download TONE3000 tones from the command line"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
		&cli.BoolFlag{
			Name:  flagDebug,
			Usage: "Log token lifecycle events to stderr",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in to TONE3000",
			Description: "Without --api-key, prints the authentication URL to " +
				"visit in a browser. TONE3000 redirects back to the registered " +
				"return URL carrying an api_key; pass that key to --api-key to " +
				"complete the login.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagAPIKey,
					Aliases: []string{"a"},
					Usage: "Exchange the api_key obtained from the auth " +
						"return trip for a session",
				},
				&cli.BoolFlag{
					Name: flagOTPOnly,
					Usage: "Restrict the login page to one-time-password " +
						"authentication",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of TONE3000",
			Action: logout,
		},
		{
			Name:  "select",
			Usage: "Print the Select-flow entry point URL",
			Description: "The Select flow delegates browsing and selection to " +
				"TONE3000 itself; after the user picks a tone, TONE3000 " +
				"redirects back to the registered return URL carrying a " +
				"tone_url query parameter.",
			Action: selectFlow,
		},
		{
			Name:  "whoami",
			Usage: "Show the authenticated user's profile",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: whoami,
		},
		{
			Name:  "tone",
			Usage: "Browse tones",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List the authenticated user's tones",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagPageSize,
						&cli.BoolFlag{
							Name:    flagFavorited,
							Aliases: []string{"f"},
							Usage: "List favorited tones instead of created " +
								"ones",
						},
					},
					Action: toneList,
				},
				{
					Name:      "search",
					Usage:     "Search the public tone catalog",
					ArgsUsage: "[QUERY]",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagPageSize,
						&cli.StringFlag{
							Name:    flagSort,
							Aliases: []string{"s"},
							Usage: "Sort results. Supported: newest, oldest, " +
								"popular, downloads",
						},
						&cli.StringSliceFlag{
							Name:    flagGear,
							Aliases: []string{"g"},
							Usage: "Restrict to gear categories. Supported: " +
								"amp, pedal, pedal_amp, full_rig, outboard, ir",
						},
						&cli.StringSliceFlag{
							Name: flagSize,
							Usage: "Restrict to model sizes. Supported: " +
								"standard, lite, feather, nano",
						},
					},
					Action: toneSearch,
				},
			},
		},
		{
			Name:  "user",
			Usage: "Browse users",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List public users",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagPageSize,
					},
					Action: userList,
				},
			},
		},
		{
			Name:  "model",
			Usage: "Browse and download a tone's models",
			Subcommands: []*cli.Command{
				{
					Name:      "list",
					Usage:     "List the models belonging to a tone",
					ArgsUsage: "TONE_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagPage,
						cliFlagPageSize,
					},
					Action: modelList,
				},
				{
					Name:      "download",
					Usage:     "Download a model file",
					ArgsUsage: "MODEL_URL",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagFile,
							Aliases: []string{"f"},
							Usage: "Write the model to the specified file " +
								"instead of deriving a name from the URL",
						},
					},
					Action: modelDownload,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
