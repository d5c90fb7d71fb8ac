package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// recoverStep turns a panic inside a frame into an error for the runner,
// after dumping the stack to the log and blanking the screen.
func (s *system) recoverStep(errp *error) {
	v := recover()
	if v == nil {
		return
	}

	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("cubegrid panic: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			s.log.WriteLineString(line)
		}
	}
	if s.fb != nil {
		s.fb.ClearRGB(255, 255, 255)
	}
	*errp = fmt.Errorf("app: panic in frame: %v", v)
}
