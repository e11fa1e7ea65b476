package services

import "errors"

// FormMode selects what a popup form does on submit.
type FormMode string

const (
	ModeAdd    FormMode = "add"
	ModeEdit   FormMode = "edit"
	ModeDelete FormMode = "delete"
)

// ErrSubmitInFlight is returned when a submit is attempted while a previous
// submission has not finished. Guards against duplicate-create races.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ValidationError is a required-field failure caught before any network
// call. It is shown inline next to the relevant field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
