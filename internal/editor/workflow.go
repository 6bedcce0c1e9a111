// Package editor implements the image edit workflow: pick an image, describe the edit,
// wait for the generator, then show the result or the failure. The workflow is
// synchronous; callers run the generator themselves and report back with Resolve.
package editor

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseImageSelected
	PhaseGenerating
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseImageSelected:
		return "image selected"
	case PhaseGenerating:
		return "generating"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrMissingInput = errors.New("image and prompt both required")
	ErrBusy         = errors.New("an edit is already in progress")
	ErrEmptyImage   = errors.New("image is empty")
	errEmptyResult  = errors.New("empty image returned")
)

// Image is an encoded image and its MIME type.
type Image struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Request is what the caller must send to the generator. ID ties the eventual
// response back to this attempt.
type Request struct {
	ID          string
	Image       Image
	Instruction string
}

// Workflow is a single editor instance. It is not safe for concurrent use; the
// TUI drives it from its update loop.
type Workflow struct {
	phase     Phase
	original  *Image
	result    *Image
	message   string
	pendingID string
}

func New() *Workflow {
	return &Workflow{}
}

func (w *Workflow) Phase() Phase { return w.phase }

// Original returns the selected source image, if any.
func (w *Workflow) Original() (Image, bool) {
	if w.original == nil {
		return Image{}, false
	}
	return *w.original, true
}

// Result returns the generated image after a successful edit.
func (w *Workflow) Result() (Image, bool) {
	if w.result == nil {
		return Image{}, false
	}
	return *w.result, true
}

// Message is the last validation or failure message shown to the user.
func (w *Workflow) Message() string { return w.message }

// PendingID is the id of the outstanding request, empty when none is in flight.
func (w *Workflow) PendingID() string { return w.pendingID }

// SelectImage replaces the source image. Any previous result is discarded and an
// in-flight request is abandoned.
func (w *Workflow) SelectImage(img Image) error {
	if len(img.Data) == 0 {
		w.message = ErrEmptyImage.Error()
		return ErrEmptyImage
	}
	w.original = &img
	w.result = nil
	w.message = ""
	w.pendingID = ""
	w.phase = PhaseImageSelected
	return nil
}

// Begin starts an edit of the selected image. On success the workflow is Generating
// and the returned request must be sent to the generator.
func (w *Workflow) Begin(instruction string) (Request, error) {
	if w.phase == PhaseGenerating {
		return Request{}, ErrBusy
	}
	instruction = strings.TrimSpace(instruction)
	if w.original == nil || instruction == "" {
		w.message = ErrMissingInput.Error()
		return Request{}, ErrMissingInput
	}

	w.pendingID = uuid.NewString()
	w.result = nil
	w.message = ""
	w.phase = PhaseGenerating
	return Request{
		ID:          w.pendingID,
		Image:       *w.original,
		Instruction: instruction,
	}, nil
}

// Resolve reports the generator's answer for request id. Answers for anything but the
// outstanding request are ignored and Resolve returns false.
func (w *Workflow) Resolve(id string, img Image, err error) bool {
	if w.phase != PhaseGenerating || id == "" || id != w.pendingID {
		return false
	}
	w.pendingID = ""

	if err == nil && len(img.Data) == 0 {
		err = errEmptyResult
	}
	if err != nil {
		w.message = err.Error()
		w.phase = PhaseFailed
		return true
	}

	w.result = &img
	w.message = ""
	w.phase = PhaseSucceeded
	return true
}

// Close returns the workflow to Idle and forgets everything, including any request
// still in flight.
func (w *Workflow) Close() {
	*w = Workflow{}
}
