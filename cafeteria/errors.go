package cafeteria

import "fmt"

// StartError reports that an ingredient's start call failed synchronously,
// before any cooking began.
type StartError struct {
	Ingredient string
	Err        error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Ingredient, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ProcessingError reports that an ingredient's stop call failed after its
// minimum cook duration had elapsed.
type ProcessingError struct {
	Ingredient string
	Err        error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("finishing %s: %v", e.Ingredient, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
