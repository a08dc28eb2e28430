package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"gomjd/datetime"
	"gomjd/fault"
)

/***** CONSTANT ********************************/

const (
	MIN_GOROUTINE_NUM  = 1
	MAX_GOROUTINE_NUM  = 999
	MAX_DECIMAL_PLACES = datetime.MAX_NDP
	DEFAULT_LOG_SIZE   = 1048576
	DEFAULT_LOG_COUNT  = 10
)

/***** STRUCT **********************************/

type tLog struct {
	Directory string            `json:"directory"`
	File      string            `json:"file"`
	Size      int               `json:"size"`
	Count     int               `json:"count"`
	Console   bool              `json:"console"`
	Levels    map[string]string `json:"levels"`
}

/***********************************************/

type tConfig struct {
	Precision string `json:"precision"`
	TimeSys   string `json:"time system"`
	Ndp       *int   `json:"decimal places"`
	LeapFile  string `json:"leap second file"`
	GoNum     int    `json:"goroutine num"`
	Log       *tLog  `json:"log"`
}

/***********************************************/

type Config struct {
	PrecisionName string
	Precision     datetime.Precision
	TimeSys       datetime.TimeSys
	Ndp           int
	LeapFile      string
	GoNum         int
	Log           logger.Configuration
}

/***** FUNCTION ********************************/

// Settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		PrecisionName: "nano",
		Precision:     datetime.PRECISION_NANO,
		TimeSys:       datetime.TIME_SYS_UTC,
		Ndp:           3,
		LeapFile:      "",
		GoNum:         4,
		Log: logger.Configuration{
			Directory: os.TempDir(),
			File:      "gomjd.log",
			Size:      DEFAULT_LOG_SIZE,
			Count:     DEFAULT_LOG_COUNT,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

/***********************************************/

// Read a json config file over the current settings. Keys that are absent
// keep their current value.
func (cfg *Config) ParseJson(cfgFile string) error {
	fp, err := os.Open(cfgFile)

	if err != nil {
		if os.IsNotExist(err) {
			return fault.ErrNotFoundConfigFile
		}

		return err
	}

	defer fp.Close()

	dcr := json.NewDecoder(fp)
	var tCfg tConfig

	for dcr.More() {
		err = dcr.Decode(&tCfg)

		if err != nil {
			return fmt.Errorf("%w: %s", fault.ErrParseJsonFail, err)
		}
	}

	// check the precision
	if tCfg.Precision != "" {
		if err = cfg.SetPrecision(tCfg.Precision); err != nil {
			return err
		}
	}

	// check the time system
	if tCfg.TimeSys != "" {
		if err = cfg.SetTimeSys(tCfg.TimeSys); err != nil {
			return err
		}
	}

	// check the decimal places
	if tCfg.Ndp != nil {
		if err = cfg.SetNdp(*tCfg.Ndp); err != nil {
			return err
		}
	}

	// check the goroutine num
	if tCfg.GoNum != 0 {
		if tCfg.GoNum < MIN_GOROUTINE_NUM || tCfg.GoNum > MAX_GOROUTINE_NUM {
			return fmt.Errorf(`value in "goroutine num" must be in %d-%d: %w`, MIN_GOROUTINE_NUM, MAX_GOROUTINE_NUM, fault.ErrInvalidGoroutineNum)
		}

		cfg.GoNum = tCfg.GoNum
	}

	// the leap second file is relative to the config file
	if tCfg.LeapFile != "" {
		cfg.LeapFile = tCfg.LeapFile

		if !filepath.IsAbs(cfg.LeapFile) {
			cfg.LeapFile = filepath.Join(filepath.Dir(cfgFile), cfg.LeapFile)
		}
	}

	if tCfg.Log != nil {
		cfg.setLog(tCfg.Log, filepath.Dir(cfgFile))
	}

	return nil
}

/***********************************************/

func (cfg *Config) setLog(l *tLog, baseDir string) {
	if l.Directory != "" {
		cfg.Log.Directory = l.Directory

		if !filepath.IsAbs(l.Directory) {
			cfg.Log.Directory = filepath.Join(baseDir, l.Directory)
		}
	}

	if l.File != "" {
		cfg.Log.File = l.File
	}

	if l.Size > 0 {
		cfg.Log.Size = l.Size
	}

	if l.Count > 0 {
		cfg.Log.Count = l.Count
	}

	cfg.Log.Console = l.Console

	if len(l.Levels) != 0 {
		cfg.Log.Levels = l.Levels
	}
}

/***********************************************/

func (cfg *Config) SetPrecision(name string) error {
	p, ok := datetime.ParsePrecision(name)

	if !ok {
		return fmt.Errorf(`invalid "precision" %q, expect milli, micro, nano or pico: %w`, name, fault.ErrInvalidPrecision)
	}

	cfg.PrecisionName = name
	cfg.Precision = p
	return nil
}

/***********************************************/

func (cfg *Config) SetTimeSys(name string) error {
	sys, ok := datetime.ParseTimeSys(name)

	if !ok {
		return fmt.Errorf(`invalid "time system" %q: %w`, name, fault.ErrInvalidTimeSys)
	}

	cfg.TimeSys = sys
	return nil
}

/***********************************************/

func (cfg *Config) SetNdp(ndp int) error {
	if ndp < 0 || ndp > MAX_DECIMAL_PLACES {
		return fmt.Errorf(`invalid "decimal places" %d: %w`, ndp, fault.ErrInvalidDecimalPlaces)
	}

	cfg.Ndp = ndp
	return nil
}

/***********************************************/
