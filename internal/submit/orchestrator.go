// Package submit drives a form submission end to end: client-side
// validation, the concurrent request and progress stream, response
// classification and the hand-back to the UI.
package submit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/termoapp/termo-desk/internal/client"
	"github.com/termoapp/termo-desk/internal/form"
	"github.com/termoapp/termo-desk/internal/model"
	"github.com/termoapp/termo-desk/internal/progress"
)

// Hooks are the orchestrator's outputs. All of them are invoked from a
// background goroutine; UI implementations must hop to the UI thread
// themselves. Nil hooks are skipped.
type Hooks struct {
	// AnnotateField attaches an inline error to a field. Field names
	// follow the form's naming, including indexed entry fields.
	AnnotateField func(field, message string)

	// Notice shows one transient global notice
	Notice func(message string)

	// AggregateNotice shows the one-per-submission notice citing how
	// many errors were found
	AggregateNotice func(count int)

	// ScrollToFirstInvalid brings the first annotated field into view
	ScrollToFirstInvalid func()

	// SetBusy disables or re-enables the submit control
	SetBusy func(busy bool)

	// ShowProgress and HideProgress display one paced progress message
	ShowProgress func(message string)
	HideProgress func()

	// SavePDF persists the generated document and returns its path
	SavePDF func(filename string, data []byte) (string, error)

	// OnSuccess presents the success overlay for a saved document
	OnSuccess func(path string)
}

// Orchestrator runs submissions through the Idle, Validating, Submitting
// and Completed states. Submit is a no-op unless the orchestrator is Idle,
// so repeated triggers while a submission is in flight do nothing.
type Orchestrator struct {
	mu    sync.Mutex
	state model.SubmissionState

	form   *form.State
	client *client.Client
	hooks  Hooks

	// hold paces progress message display; zero means the default
	hold time.Duration
}

// New creates an orchestrator for the given form and server client
func New(formState *form.State, apiClient *client.Client, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		state:  model.StateIdle,
		form:   formState,
		client: apiClient,
		hooks:  hooks,
	}
}

// SetProgressHold overrides the minimum display time of progress messages
func (o *Orchestrator) SetProgressHold(hold time.Duration) {
	o.hold = hold
}

// State returns the current submission state
func (o *Orchestrator) State() model.SubmissionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit runs one submission. Validation happens synchronously before any
// network I/O; when it fails the form is annotated and no request is made.
// When it passes, the request and the progress stream run in the background
// and Submit returns immediately.
func (o *Orchestrator) Submit() {
	o.mu.Lock()
	if o.state != model.StateIdle {
		o.mu.Unlock()
		return
	}
	o.state = model.StateValidating
	o.mu.Unlock()

	if errors := o.form.ValidateAll(); len(errors) > 0 {
		o.presentErrors(errors)
		o.setState(model.StateIdle)
		return
	}

	o.setState(model.StateSubmitting)
	o.callSetBusy(true)
	go o.run()
}

func (o *Orchestrator) setState(state model.SubmissionState) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

// run performs the network half of a submission and always returns the
// orchestrator to Idle with the submit control re-enabled and the progress
// stream closed.
func (o *Orchestrator) run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := progress.NewQueue(o.hold, o.hooks.ShowProgress, o.hooks.HideProgress)

	stream, err := o.client.OpenProgress(ctx)
	if err != nil {
		// Progress is best effort; the submission proceeds without it
		log.Printf("Progress stream unavailable: %v", err)
	} else {
		go func() {
			for line := range stream.Lines() {
				queue.Push(line)
			}
		}()
	}

	result := o.client.Submit(ctx, o.form.Payload())

	o.setState(model.StateCompleted)
	if stream != nil {
		stream.Close()
	}
	queue.Close()
	// Buffered messages finish displaying before the outcome is shown
	<-queue.Done()

	switch result.Kind {
	case model.ResultSuccess:
		o.handleSuccess(result)
	case model.ResultValidationFailure:
		o.presentErrors(result.Errors)
	default:
		o.callNotice(result.Message)
	}

	o.callSetBusy(false)
	o.setState(model.StateIdle)
}

func (o *Orchestrator) handleSuccess(result *model.SubmissionResult) {
	filename := model.DeliveryFileName(o.form.Value(model.FieldNome))

	if o.hooks.SavePDF == nil {
		return
	}
	path, err := o.hooks.SavePDF(filename, result.PDF)
	if err != nil {
		log.Printf("Failed to save %s: %v", filename, err)
		o.callNotice(fmt.Sprintf("Falha ao salvar o documento: %v", err))
		return
	}

	log.Printf("Saved delivery document to %s", path)
	if o.hooks.OnSuccess != nil {
		o.hooks.OnSuccess(path)
	}
}

// presentErrors annotates every fielded error, emits unfielded ones as
// notices, then emits the aggregate count and scrolls to the first invalid
// field. Client and server errors flow through the same path.
func (o *Orchestrator) presentErrors(errors []model.FieldError) {
	for _, fieldError := range errors {
		if fieldError.Field != "" && o.hooks.AnnotateField != nil {
			o.hooks.AnnotateField(fieldError.Field, fieldError.Message)
		} else {
			o.callNotice(fieldError.Message)
		}
	}
	if o.hooks.AggregateNotice != nil {
		o.hooks.AggregateNotice(len(errors))
	}
	if o.hooks.ScrollToFirstInvalid != nil {
		o.hooks.ScrollToFirstInvalid()
	}
}

func (o *Orchestrator) callNotice(message string) {
	if o.hooks.Notice != nil {
		o.hooks.Notice(message)
	}
}

func (o *Orchestrator) callSetBusy(busy bool) {
	if o.hooks.SetBusy != nil {
		o.hooks.SetBusy(busy)
	}
}
