package main

import (
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"SIS-Accumulator/config"
)

var log = logger.GetOrCreate("main")

var (
	// configurationFile defines a flag for the path to the toml configuration file
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `[path]` for the TOML configuration file holding the parameter tuple and demo settings.",
		Value: "./config/config.toml",
	}
	// logLevel overrides the [Log] Level of the configuration file
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "Logger `level(s)`, comma separated. *:INFO sets every package to INFO, " +
			"*:INFO,params:TRACE also traces matrix generation row by row.",
	}
	// descriptorOut is where the params command writes the parameter descriptor
	descriptorOut = cli.StringFlag{
		Name:  "out",
		Usage: "Write the JSON parameter descriptor to `[path]`.",
	}
	// descriptorCheck is a descriptor the generated parameters must match
	descriptorCheck = cli.StringFlag{
		Name:  "check",
		Usage: "Verify the generated parameters against the JSON descriptor at `[path]`.",
	}
	// elements overrides [Demo] Elements
	elements = cli.IntFlag{
		Name:  "elements",
		Usage: "Number of random elements to accumulate (overrides the configuration when > 0).",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "sisacc"
	app.Usage = "Generate SIS accumulator parameters and exercise accumulate / witness / verify"
	app.Flags = []cli.Flag{configurationFile, logLevel}
	app.Commands = []cli.Command{
		{
			Name:   "params",
			Usage:  "generate the parameter set, print its thresholds and fingerprint",
			Flags:  []cli.Flag{descriptorOut, descriptorCheck},
			Action: action(cmdParams),
		},
		{
			Name:   "demo",
			Usage:  "accumulate random elements, verify their witnesses and try them on outsiders",
			Flags:  []cli.Flag{elements},
			Action: action(cmdDemo),
		},
		{
			Name:   "report",
			Usage:  "write an HTML histogram of witness coordinates for random elements",
			Flags:  []cli.Flag{elements},
			Action: action(cmdReport),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// action loads the configuration, sets up logging and runs cmd over the
// configured field.
func action(cmd string) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		cfg, err := config.Load(c.GlobalString(configurationFile.Name))
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if c.GlobalIsSet(logLevel.Name) {
			level = c.GlobalString(logLevel.Name)
		}
		if err := logger.SetLogLevel(level); err != nil {
			return err
		}
		if n := c.Int(elements.Name); n > 0 {
			cfg.Demo.Elements = n
		}
		return dispatch(cfg, cmd, options{
			out:   c.String(descriptorOut.Name),
			check: c.String(descriptorCheck.Name),
		})
	}
}
