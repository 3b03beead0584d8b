// Package events delivers activation signals to view click handlers.
//
// Views only record their handlers. A Dispatcher is the piece of a host that
// decides a view was activated (a pointer released over a button, a key
// press on a focused one) and runs its handler exactly once:
//
//	d := events.NewDispatcher(logger)
//	if err := d.ActivateID(root, "submit"); err != nil {
//	    ...
//	}
package events

import (
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/palantir-ui/palantir/pkg/core"
	"github.com/palantir-ui/palantir/pkg/errors"
)

var (
	// ErrNoTarget is returned when no view matches the activation target.
	ErrNoTarget = stderrors.New("no target view")
	// ErrNoHandler is returned when the target has no click handler installed.
	ErrNoHandler = stderrors.New("no click handler")
)

// Dispatcher invokes click handlers. The zero value is ready to use and
// logs nothing.
type Dispatcher struct {
	Logger zerolog.Logger
	// ReportErrors sends dispatch failures to the global errors handler.
	// Recovered panics are always reported.
	ReportErrors bool

	activations int
}

// NewDispatcher returns a Dispatcher logging through logger.
func NewDispatcher(logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{Logger: logger}
}

// Activations returns how many handlers have run to completion.
func (d *Dispatcher) Activations() int {
	return d.activations
}

// Activate runs the click handler of target once.
//
// It returns an error wrapping ErrNoTarget for a nil target and ErrNoHandler
// when target is not Clickable or has no handler installed. A panicking
// handler is recovered and returned as *errors.PanicError.
func (d *Dispatcher) Activate(target core.View) error {
	if target == nil {
		return d.fail("", ErrNoTarget)
	}
	id := target.Fragment().ID
	clickable, ok := target.(core.Clickable)
	if !ok {
		return d.fail(id, fmt.Errorf("%T: %w", target, ErrNoHandler))
	}
	handler, ok := clickable.ClickHandler()
	if !ok {
		return d.fail(id, fmt.Errorf("%T: %w", target, ErrNoHandler))
	}

	if err := d.invoke(handler); err != nil {
		d.Logger.Error().Str("view", id).Err(err).Msg("click handler panicked")
		return err
	}
	d.activations++
	d.Logger.Debug().Str("view", id).Msg("click delivered")
	return nil
}

// ActivateID finds the view with the given id under root and activates it.
func (d *Dispatcher) ActivateID(root core.View, id string) error {
	target := core.FindByID(root, id)
	if target == nil {
		return d.fail(id, fmt.Errorf("id %q: %w", id, ErrNoTarget))
	}
	return d.Activate(target)
}

func (d *Dispatcher) invoke(handler func()) (err error) {
	defer errors.RecoverWithCallback("events.Activate", func(p *errors.PanicError) {
		err = p
	})
	handler()
	return nil
}

func (d *Dispatcher) fail(id string, err error) error {
	d.Logger.Warn().Str("view", id).Err(err).Msg("activation dropped")
	if d.ReportErrors {
		errors.Report(&errors.Error{
			Op:     "events.Activate",
			Kind:   errors.KindDispatch,
			ViewID: id,
			Err:    err,
		})
	}
	return err
}
