package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates the scheduled jobs of one process.
// Jobs are started in registration order and stopped in reverse.
type JobManager struct {
	names []string
	jobs  []Job
}

func NewJobManager() *JobManager {
	return &JobManager{}
}

// Add registers a job under a name used in start-up errors.
func (jm *JobManager) Add(name string, job Job) {
	jm.names = append(jm.names, name)
	jm.jobs = append(jm.jobs, job)
}

// StartAll starts all registered jobs.
// If one fails, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
