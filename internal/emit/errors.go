package emit

import "fmt"

// GenerateError is the single fatal error kind raised during generation:
// folder problems, duplicate output paths and case-only collisions all use
// it. It propagates unrecovered to the orchestrator boundary, which turns
// the first one into the run's failure message.
type GenerateError struct {
	Message string
}

func (e *GenerateError) Error() string { return e.Message }

// Errorf builds a GenerateError with a formatted message.
func Errorf(format string, args ...any) error {
	return &GenerateError{Message: fmt.Sprintf(format, args...)}
}
