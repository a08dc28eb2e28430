package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"gomjd/datetime"
	"gomjd/fault"
)

/***** CONSTANT ********************************/

const (
	MAX_SPAN_EPOCHS = 1000000
)

/***** STRUCT **********************************/

// One converted date as printed by the commands.
type Epoch struct {
	Input   string   `json:"input,omitempty"`
	Date    string   `json:"date"`
	TimeSys string   `json:"timeSystem"`
	Big     float64  `json:"mjdDay"`
	Small   float64  `json:"mjdFraction"`
	Jd      float64  `json:"jd"`
	Doy     int      `json:"dayOfYear"`
	Week    *int     `json:"week,omitempty"`
	Sow     *float64 `json:"secondsOfWeek,omitempty"`
	Status  string   `json:"status"`
}

/***********************************************/

type Difference struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Seconds float64 `json:"seconds"`
	Order   string  `json:"order"`
}

/***** FUNCTION ********************************/

func describe(m *metadata, d datetime.Date, st datetime.Status) Epoch {
	str, fst := m.engine.Format(d, m.cfg.Ndp)

	switch {
	case fst.IsError():
		st = fst
	case !st.IsError():
		st |= fst
	}

	ep := Epoch{
		Date:    str,
		TimeSys: d.Sys().String(),
		Big:     d.Big(),
		Small:   d.Small(),
		Jd:      d.Jd(),
		Doy:     d.DayOfYear(),
		Status:  st.String(),
	}

	if week, sow, ok := m.engine.WeekSow(d); ok {
		ep.Week, ep.Sow = &week, &sow
	}

	return ep
}

/***********************************************/

func (ep Epoch) String() string {
	var b strings.Builder

	if ep.Date == "" {
		b.WriteString("-")
	} else {
		b.WriteString(ep.Date)
	}

	fmt.Fprintf(&b, " %s  %.0f %.15f", ep.TimeSys, ep.Big, ep.Small)

	if ep.Week != nil {
		fmt.Fprintf(&b, "  week %d %.3f", *ep.Week, *ep.Sow)
	}

	if ep.Status != "ok" {
		fmt.Fprintf(&b, "  [%s]", ep.Status)
	}

	return b.String()
}

/***********************************************/

func convert(m *metadata, str string) (Epoch, error) {
	d, st := m.engine.Parse(str, m.cfg.TimeSys)

	if st.IsError() {
		m.log.Warnf("convert %q: %s", str, st)
		return Epoch{}, fmt.Errorf("%q: %w", str, st.Err())
	}

	ep := describe(m, d, st)
	ep.Input = str
	return ep, nil
}

/***********************************************/

func formatMjd(m *metadata, big, small float64) (Epoch, error) {
	d := datetime.Mjd2Date(m.cfg.TimeSys, big, small)
	ep := describe(m, d, datetime.STATUS_OK)

	if ep.Date == "" {
		return ep, fmt.Errorf("mjd %v %v: %w", big, small, fault.ErrDateOutOfRange)
	}

	return ep, nil
}

/***********************************************/

func addSec(m *metadata, str string, sec float64) (Epoch, error) {
	d, st := m.engine.Parse(str, m.cfg.TimeSys)

	if st.IsError() {
		return Epoch{}, fmt.Errorf("%q: %w", str, st.Err())
	}

	d.AddSec(sec)
	return describe(m, d, st), nil
}

/***********************************************/

// Seconds from the first date to the second, and whether the first is
// earlier, later or equal within the comparison tolerance.
func diffSec(m *metadata, from, to string) (Difference, error) {
	a, st := m.engine.Parse(from, m.cfg.TimeSys)

	if st.IsError() {
		return Difference{}, fmt.Errorf("%q: %w", from, st.Err())
	}

	b, st := m.engine.Parse(to, m.cfg.TimeSys)

	if st.IsError() {
		return Difference{}, fmt.Errorf("%q: %w", to, st.Err())
	}

	diff := Difference{From: from, To: to, Seconds: m.engine.DeltaSec(b, a), Order: "equal"}

	switch {
	case m.engine.Lt(a, b):
		diff.Order = "earlier"
	case m.engine.Gt(a, b):
		diff.Order = "later"
	}

	return diff, nil
}

/***********************************************/

// Epochs start, start+interval, ... up to end (inclusive within the
// comparison tolerance). Each epoch is offset from start so the step error
// does not accumulate.
func span(m *metadata, from, to string, interval float64) ([]Epoch, error) {
	if interval <= 0 {
		return nil, fault.ErrInvalidInterval
	}

	start, st := m.engine.Parse(from, m.cfg.TimeSys)

	if st.IsError() {
		return nil, fmt.Errorf("%q: %w", from, st.Err())
	}

	end, st := m.engine.Parse(to, m.cfg.TimeSys)

	if st.IsError() {
		return nil, fmt.Errorf("%q: %w", to, st.Err())
	}

	var epochs []Epoch

	for k, t := 0, start; m.engine.Le(t, end); k++ {
		if k >= MAX_SPAN_EPOCHS {
			return epochs, fault.ErrTooManyEpochs
		}

		epochs = append(epochs, describe(m, t, datetime.STATUS_OK))
		t = start
		t.AddSec(float64(k+1) * interval)
	}

	m.log.Debugf("span %q to %q every %g s: %d epochs", from, to, interval, len(epochs))
	return epochs, nil
}

/***********************************************/

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

/***********************************************/

func parseNumber(str string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)

	if err != nil {
		return 0, fmt.Errorf("%q: %w", str, fault.ErrInvalidNumber)
	}

	return v, nil
}

/***********************************************/

func runConvert(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() == 0 {
		return fault.ErrInvalidArguments
	}

	ep, err := convert(m, strings.Join(c.Args(), " "))

	if err != nil {
		return err
	}

	printEpochs(m, ep)
	return nil
}

/***********************************************/

func runFormat(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() < 1 || c.NArg() > 2 {
		return fault.ErrInvalidArguments
	}

	big, err := parseNumber(c.Args().Get(0))

	if err != nil {
		return err
	}

	small := 0.0

	if c.NArg() == 2 {
		if small, err = parseNumber(c.Args().Get(1)); err != nil {
			return err
		}
	}

	ep, err := formatMjd(m, big, small)

	if err != nil {
		return err
	}

	printEpochs(m, ep)
	return nil
}

/***********************************************/

func runAdd(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() < 2 {
		return fault.ErrInvalidArguments
	}

	args := c.Args()
	sec, err := parseNumber(args[len(args)-1])

	if err != nil {
		return err
	}

	ep, err := addSec(m, strings.Join(args[:len(args)-1], " "), sec)

	if err != nil {
		return err
	}

	printEpochs(m, ep)
	return nil
}

/***********************************************/

func runDiff(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() != 2 {
		return fault.ErrInvalidArguments
	}

	diff, err := diffSec(m, c.Args().Get(0), c.Args().Get(1))

	if err != nil {
		return err
	}

	if m.json {
		printJson(m.w, diff)
	} else {
		fmt.Fprintf(m.w, "%.*f %s\n", m.cfg.Ndp, diff.Seconds, diff.Order)
	}

	return nil
}

/***********************************************/

func runSpan(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() != 3 {
		return fault.ErrInvalidArguments
	}

	interval, err := parseNumber(c.Args().Get(2))

	if err != nil {
		return err
	}

	epochs, err := span(m, c.Args().Get(0), c.Args().Get(1), interval)

	if err != nil {
		return err
	}

	printEpochs(m, epochs...)
	return nil
}

/***********************************************/

func runNow(c *cli.Context) error {
	m := getMetadata(c)
	d, st := m.engine.Now()

	if st.IsError() {
		return st.Err()
	}

	printEpochs(m, describe(m, d, st))
	return nil
}

/***********************************************/

func runBatch(c *cli.Context) error {
	m := getMetadata(c)

	if c.NArg() != 1 {
		return fault.ErrInvalidArguments
	}

	var r io.Reader = os.Stdin

	if name := c.Args().Get(0); name != "-" {
		fp, err := os.Open(name)

		if err != nil {
			return err
		}

		defer fp.Close()
		r = fp
	}

	jobs, err := readJobs(r)

	if err != nil {
		return err
	}

	results, failed := process(m, jobs)
	printEpochs(m, results...)

	if failed > 0 {
		return fmt.Errorf("%d of %d lines: %w", failed, len(jobs), fault.ErrParseDateFail)
	}

	return nil
}

/***********************************************/

func printEpochs(m *metadata, epochs ...Epoch) {
	if m.json {
		if len(epochs) == 1 {
			printJson(m.w, epochs[0])
		} else {
			printJson(m.w, epochs)
		}

		return
	}

	for _, ep := range epochs {
		if ep.Input != "" && ep.Date == "" {
			fmt.Fprintf(m.w, "%s  [%s]\n", ep.Input, ep.Status)
			continue
		}

		fmt.Fprintln(m.w, ep)
	}
}

/***********************************************/

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")

	if err != nil {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}

	fmt.Fprintf(handle, "%s\n", b)
}

/***********************************************/
