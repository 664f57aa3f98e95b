package textgen

import "fmt"

// Validator inspects generated text before it becomes an exercise.
// Validators are stateless and safe for concurrent use.
type Validator interface {
	Name() string
	Validate(t *Text) *ValidationError
}

// ValidationError is a rejected generation. Retryable marks failures a
// fresh generation is likely to avoid, such as a sentence of the wrong
// length.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated text rejected by %s check: %s", e.Validator, e.Message)
}

// Chain runs validators in order and stops at the first rejection.
type Chain []Validator

func (c Chain) Validate(t *Text) error {
	for _, v := range c {
		if verr := v.Validate(t); verr != nil {
			return verr
		}
	}
	return nil
}
