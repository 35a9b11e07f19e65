package domain

import (
	"errors"
	"strings"
)

// DialogState is the state of the add-word dialog
type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogOpen   DialogState = "open"
)

// AddStep is the draft field the open dialog is waiting for
type AddStep string

const (
	StepForeign       AddStep = "foreign"
	StepEnglish       AddStep = "english"
	StepPronunciation AddStep = "pronunciation"
)

// SkipPronunciation is accepted in place of a pronunciation to leave it empty
const SkipPronunciation = "-"

// AddDialog collects a WordInput one field at a time.
// The zero value is a closed dialog.
type AddDialog struct {
	State DialogState
	Step  AddStep
	Draft WordInput
}

// IsOpen reports whether the dialog accepts input
func (d AddDialog) IsOpen() bool {
	return d.State == DialogOpen
}

// Submitted reports whether a completed draft is waiting for Resolve
func (d AddDialog) Submitted() bool {
	return d.State == DialogClosed && d.Step == StepPronunciation
}

// Open moves a closed dialog to the first step with an empty draft.
// Opening an already open dialog keeps its draft.
func (d *AddDialog) Open() {
	if d.IsOpen() {
		return
	}
	d.State = DialogOpen
	d.Step = StepForeign
	d.Draft = WordInput{}
}

// Cancel closes the dialog and drops the draft
func (d *AddDialog) Cancel() {
	*d = AddDialog{State: DialogClosed}
}

// Fill stores text in the field of the current step and advances.
// It returns true once the draft is ready to be submitted; the dialog is then
// closed so that no other input can submit the same draft again.
func (d *AddDialog) Fill(text string) bool {
	if !d.IsOpen() {
		return false
	}

	switch d.Step {
	case StepForeign:
		d.Draft.Foreign = text
		d.Step = StepEnglish
	case StepEnglish:
		d.Draft.English = text
		d.Step = StepPronunciation
	case StepPronunciation:
		if strings.TrimSpace(text) == SkipPronunciation {
			text = ""
		}
		d.Draft.Pronunciation = text
		d.State = DialogClosed
		return true
	}
	return false
}

// Resolve applies the outcome of submitting the draft.
// Success drops the draft. A validation skip reopens the dialog at the first
// missing field with the rest of the draft preserved; any other error reopens it
// at the last step. Resolve does nothing unless a draft was submitted, so a
// dialog cancelled or reopened in the meantime is left alone.
func (d *AddDialog) Resolve(err error) {
	if !d.Submitted() {
		return
	}

	switch {
	case err == nil:
		d.Cancel()
	case errors.Is(err, ErrValidationSkip):
		d.State = DialogOpen
		if d.Draft.Trimmed().Foreign == "" {
			d.Step = StepForeign
		} else {
			d.Step = StepEnglish
		}
	default:
		d.State = DialogOpen
	}
}
