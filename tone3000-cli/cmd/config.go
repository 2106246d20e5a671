package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// config is the CLI's environment configuration. The defaults point at the
// production TONE3000 service; T3K_APP_ID must be set to the application ID
// registered with TONE3000 for the Select flow to work.
type config struct {
	APIAddress  string `envconfig:"API_ADDRESS" default:"https://www.tone3000.com"`
	AppID       string `envconfig:"APP_ID"`
	RedirectURL string `envconfig:"REDIRECT_URL" default:"https://www.tone3000.com/api-demo"`
}

func getConfig() (config, error) {
	c := config{}
	if err := envconfig.Process("t3k", &c); err != nil {
		return c, errors.Wrap(err, "error processing environment")
	}
	return c, nil
}
