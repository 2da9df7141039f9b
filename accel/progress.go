package accel

import (
	"errors"
	"sync"

	"github.com/achilleasa/accelpack/log"
)

// Progress collects build status updates and the first reported error.
// Device build failures are surfaced here as status text; they never
// propagate as faults.
type Progress struct {
	mu     sync.Mutex
	logger log.Logger

	status    string
	substatus string
	errMsg    string
}

// Create a progress reporter.
func NewProgress() *Progress {
	return &Progress{
		logger: log.New("accel"),
	}
}

// Report the current build stage.
func (p *Progress) SetStatus(status, substatus string) {
	p.mu.Lock()
	p.status = status
	p.substatus = substatus
	p.mu.Unlock()

	p.logger.Infof("%s: %s", status, substatus)
}

// Report a build error. Only the first reported error is retained.
func (p *Progress) SetError(msg string) {
	p.mu.Lock()
	if p.errMsg == "" {
		p.errMsg = msg
	}
	p.mu.Unlock()

	p.logger.Error(msg)
}

// Get the current status.
func (p *Progress) Status() (status, substatus string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.substatus
}

// Get the reported error, if any.
func (p *Progress) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.errMsg == "" {
		return nil
	}
	return errors.New(p.errMsg)
}
