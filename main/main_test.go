package main

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"gomjd/datetime"
	"gomjd/leapsec"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "gomjd")
	if err != nil {
		panic(fmt.Sprintf("temp dir creation failed: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// metadata as the Before hook builds it, writing into a buffer
func newMetadata(sys datetime.TimeSys) (*metadata, *bytes.Buffer) {
	cfg := DefaultConfig()
	cfg.TimeSys = sys
	buf := &bytes.Buffer{}

	return &metadata{
		cfg:    cfg,
		engine: datetime.NewEngine(cfg.Precision, leapsec.Default()),
		log:    logger.New("testing"),
		w:      buf,
	}, buf
}
