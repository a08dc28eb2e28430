package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"gomjd/datetime"
)

/***** STRUCT **********************************/

type Job struct {
	Index int
	Line  int
	Input string
}

/***********************************************/

type JobResult struct {
	Index  int
	Epoch  Epoch
	Status datetime.Status
}

/***** FUNCTION ********************************/

// Date strings of r, one per line. Blank lines and lines starting with '#'
// are skipped.
func readJobs(r io.Reader) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' {
			continue
		}

		jobs = append(jobs, Job{Index: len(jobs), Line: lineNum, Input: line})
	}

	return jobs, scanner.Err()
}

/***********************************************/

func doJob(m *metadata, job Job) JobResult {
	d, st := m.engine.Parse(job.Input, m.cfg.TimeSys)

	if st.IsError() {
		return JobResult{Index: job.Index, Epoch: Epoch{Input: job.Input, Status: st.String()}, Status: st}
	}

	ep := describe(m, d, st)
	ep.Input = job.Input

	return JobResult{Index: job.Index, Epoch: ep, Status: st}
}

/***********************************************/

// Convert every job on a pool of goroutines. The results come back in the
// order of the jobs; failed counts those with an error status.
func process(m *metadata, jobs []Job) (results []Epoch, failed int) {
	jobNum := len(jobs)

	if jobNum == 0 {
		return
	}

	log := logger.New("batch")
	goNumJob := min(jobNum, m.cfg.GoNum)
	chJobQue := make(chan Job, goNumJob)
	chJobMsg := make(chan JobResult, goNumJob)

	// distribute jobs
	go func() {
		for _, job := range jobs {
			chJobQue <- job
		}

		close(chJobQue)
	}()

	// do jobs
	for i := 0; i < goNumJob; i++ {
		go func() {
			for job := range chJobQue {
				chJobMsg <- doJob(m, job)
			}
		}()
	}

	// collect and log the result of each job
	results = make([]Epoch, jobNum)

	for i := 0; i < jobNum; i++ {
		res := <-chJobMsg
		results[res.Index] = res.Epoch
		line := jobs[res.Index].Line

		switch {
		case res.Status.IsError():
			failed++
			log.Warnf("line %d: %q: %s", line, res.Epoch.Input, res.Status)
		case res.Status.IsWarning():
			log.Infof("line %d: %q: %s", line, res.Epoch.Input, res.Status)
		default:
			log.Debugf("line %d: %q converted", line, res.Epoch.Input)
		}
	}

	log.Infof("%d jobs with %d goroutines, %d failed", jobNum, goNumJob, failed)
	return
}

/***********************************************/
