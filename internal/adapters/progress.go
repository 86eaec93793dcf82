package adapters

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"rusl-mdapi/internal/ports"
	"rusl-mdapi/internal/types"
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// SpinnerAdapter reports one step at a time. On a terminal the step is
// animated until stopped; otherwise only the final "<message>... <status>"
// line is written.
type SpinnerAdapter struct {
	w       io.Writer
	animate bool
	done    *color.Color
	failed  *color.Color

	mu      sync.Mutex
	message string
	stop    chan struct{}
	stopped chan struct{}
}

func NewSpinnerAdapter(w io.Writer) *SpinnerAdapter {
	return newSpinner(w, isTerminal(w))
}

func newSpinner(w io.Writer, animate bool) *SpinnerAdapter {
	s := &SpinnerAdapter{
		w:       w,
		animate: animate,
		done:    color.New(color.FgGreen),
		failed:  color.New(color.FgRed, color.Bold),
	}
	if !animate {
		s.done.DisableColor()
		s.failed.DisableColor()
	}
	return s
}

func (s *SpinnerAdapter) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halt()
	s.message = message
	if !s.animate {
		return
	}
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.spin(message, s.stop, s.stopped)
}

func (s *SpinnerAdapter) Stop(status types.StepStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == "" {
		return
	}
	s.halt()
	label := s.done.Sprint(string(status))
	if status != types.StepDone {
		label = s.failed.Sprint(string(status))
	}
	if s.animate {
		fmt.Fprintf(s.w, "\r%s... %s\n", s.message, label)
	} else {
		fmt.Fprintf(s.w, "%s... %s\n", s.message, label)
	}
	s.message = ""
}

func (s *SpinnerAdapter) spin(message string, stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()
	idx := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fmt.Fprintf(s.w, "\r%s... %c", message, spinnerFrames[idx])
			idx = (idx + 1) % len(spinnerFrames)
		}
	}
}

// halt must be called with mu held.
func (s *SpinnerAdapter) halt() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.stopped
	s.stop = nil
	s.stopped = nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ ports.ProgressPort = (*SpinnerAdapter)(nil)
