/*
gomjd (two-part Modified Julian Date converter)

Copyright (c) 2024-present JIANG Tingwei.
All rights reserved.

This source code is licensed in accordance with the terms specified in
the LICENSE file found in the root directory of this source tree.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"gomjd/datetime"
	"gomjd/leapsec"
)

/***** STRUCT **********************************/

type metadata struct {
	cfg    Config
	engine *datetime.Engine
	json   bool
	log    *logger.L
	w      io.Writer
}

/***** VARIABLE ********************************/

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

/***** FUNCTION ********************************/

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

/***********************************************/

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gomjd"
	app.Usage = "convert dates to and from two-part Modified Julian Date"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "cfg, c",
			Value: "",
			Usage: " json config `FILE`",
		},
		cli.StringFlag{
			Name:  "scale, s",
			Value: "",
			Usage: " time scale `NAME` [UTC|UT1|TAI|TT|GPS|GLO|GAL|BDT|QZS]",
		},
		cli.IntFlag{
			Name:  "ndp, n",
			Value: -1,
			Usage: " decimal places of seconds `NUM` (0..11)",
		},
		cli.StringFlag{
			Name:  "precision, p",
			Value: "",
			Usage: " comparison tolerance `PROFILE` [milli|micro|nano|pico]",
		},
		cli.StringFlag{
			Name:  "leap, l",
			Value: "",
			Usage: " IERS leap-seconds.list `FILE` (default: built-in table)",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " print results as json",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "encode a date string into a two-part MJD",
			ArgsUsage: `"YYYY MM DD HH MM SS.sss"`,
			Action:    runConvert,
		},
		{
			Name:      "format",
			Usage:     "decode a two-part MJD into a date string",
			ArgsUsage: "BIG [SMALL]",
			Action:    runFormat,
		},
		{
			Name:      "add",
			Usage:     "add seconds to a date",
			ArgsUsage: `"DATE" SECONDS`,
			Action:    runAdd,
		},
		{
			Name:      "diff",
			Usage:     "seconds from the first date to the second",
			ArgsUsage: `"DATE1" "DATE2"`,
			Action:    runDiff,
		},
		{
			Name:      "span",
			Usage:     "list the epochs from start to end at a fixed interval",
			ArgsUsage: `"START" "END" SECONDS`,
			Action:    runSpan,
		},
		{
			Name:   "now",
			Usage:  "current UTC date",
			Action: runNow,
		},
		{
			Name:      "batch",
			Usage:     "convert every date string of a file, one per line",
			ArgsUsage: "FILE",
			Action:    runBatch,
		},
	}

	app.Before = func(c *cli.Context) error {
		cfg, err := loadConfig(c)

		if err != nil {
			return err
		}

		if err := logger.Initialise(cfg.Log); err != nil {
			return err
		}

		log := logger.New("main")
		log.Infof("%s %s started", c.App.Name, c.App.Version)

		var table datetime.LeapSecondTable = leapsec.Default()

		if cfg.LeapFile != "" {
			t, err := leapsec.LoadFile(cfg.LeapFile, logger.New("leapsec"))

			if err != nil {
				log.Errorf("leap second file %s: %s", cfg.LeapFile, err)
				return err
			}

			table = t
		}

		log.Infof("precision: %s, time system: %s, decimal places: %d, goroutine num: %d",
			cfg.PrecisionName, cfg.TimeSys, cfg.Ndp, cfg.GoNum)

		c.App.Metadata["config"] = &metadata{
			cfg:    cfg,
			engine: datetime.NewEngine(cfg.Precision, table),
			json:   c.GlobalBool("json"),
			log:    log,
			w:      c.App.Writer,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			m.log.Info("finished")
			logger.Finalise()
		}

		return nil
	}

	return app
}

/***********************************************/

// Config from the file given with --cfg (if any), overridden by the other
// global flags.
func loadConfig(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()

	if cfgFile := c.GlobalString("cfg"); cfgFile != "" {
		if err := cfg.ParseJson(cfgFile); err != nil {
			return cfg, fmt.Errorf("error in the config file %s: %w", cfgFile, err)
		}
	}

	if name := c.GlobalString("precision"); name != "" {
		if err := cfg.SetPrecision(name); err != nil {
			return cfg, err
		}
	}

	if name := c.GlobalString("scale"); name != "" {
		if err := cfg.SetTimeSys(name); err != nil {
			return cfg, err
		}
	}

	if ndp := c.GlobalInt("ndp"); ndp >= 0 {
		if err := cfg.SetNdp(ndp); err != nil {
			return cfg, err
		}
	}

	if leapFile := c.GlobalString("leap"); leapFile != "" {
		cfg.LeapFile = leapFile
	}

	return cfg, nil
}

/***********************************************/
