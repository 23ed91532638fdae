// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/requests"
	"github.com/katalvlaran/transitcat/transit"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("transitcat failed")
	}
}

func newApp() *cli.App {
	var cfg config.AppConfig

	return &cli.App{
		Name:  "transitcat",
		Usage: "transit catalogue statistics and fastest routes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			setupLogger(cfg.Log, c.App.ErrWriter)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "process",
				Usage: "answer the stat requests of a JSON document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "input document (default stdin)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file (default stdout)",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := readDocument(c.String("input"), c.App.Reader)
					if err != nil {
						return err
					}

					responses, err := doc.Process(transit.NewSession(), cfg.Routing)
					if err != nil {
						return err
					}

					out := c.App.Writer
					if path := c.String("output"); path != "" {
						f, err := os.Create(path)
						if err != nil {
							return errors.Wrapf(err, "create %s", path)
						}
						defer f.Close()
						out = f
					}
					log.Info().Int("responses", len(responses)).Msg("requests answered")

					return requests.Encode(out, responses)
				},
			},
			{
				Name:  "inspect",
				Usage: "build a document's catalogue and print its statistics",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "input document (default stdin)",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := readDocument(c.String("input"), c.App.Reader)
					if err != nil {
						return err
					}

					session := transit.NewSession()
					if err := doc.Populate(session); err != nil {
						return err
					}
					params := doc.Params(cfg.Routing)
					if err := session.Build(params); err != nil {
						return err
					}
					cat, err := session.Catalogue()
					if err != nil {
						return err
					}
					r, err := session.Router()
					if err != nil {
						return err
					}

					pretty.Fprintf(c.App.Writer, "routing: %# v\n", params)
					pretty.Fprintf(c.App.Writer, "catalogue: %# v\n", cat.Stats())
					pretty.Fprintf(c.App.Writer, "graph: %# v\n", r.Graph().Core().Stats())

					return nil
				},
			},
		},
	}
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (config.AppConfig, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// setupLogger configures the global logger. TRANSITCAT_LOG_FORMAT=JSON and
// TRANSITCAT_DEBUG=YES override the configuration file.
func setupLogger(lc config.LogConfig, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if lc.Format == "json" || os.Getenv("TRANSITCAT_LOG_FORMAT") == "JSON" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if os.Getenv("TRANSITCAT_DEBUG") == "YES" {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Logger.Level(level)
}

func readDocument(path string, stdin io.Reader) (*requests.Document, error) {
	if path == "" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return requests.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return requests.Decode(f)
}
