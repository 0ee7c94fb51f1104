// Package register holds the state machine behind the multi-step
// registration wizard: step ordering, completion gating, and the final
// submission shape.
package register

import (
	"errors"

	"userdeck/internal/validation"
)

// Step is one wizard screen, in order.
type Step int

const (
	StepRole Step = iota
	StepPersonal
	StepContent

	stepCount
)

// Key is the step id the validation collaborator understands.
func (s Step) Key() string {
	switch s {
	case StepRole:
		return validation.StepRole
	case StepPersonal:
		return validation.StepPersonal
	default:
		return validation.StepContent
	}
}

func (s Step) Label() string {
	switch s {
	case StepRole:
		return "Choose a role"
	case StepPersonal:
		return "Personal info"
	default:
		return "Sharing content"
	}
}

func (s Step) Description() string {
	switch s {
	case StepRole:
		return "Pick the role that fits you"
	case StepPersonal:
		return "Fill in your personal details"
	default:
		return "Choose what you want to share"
	}
}

// Steps lists all screens in order.
func Steps() []Step {
	return []Step{StepRole, StepPersonal, StepContent}
}

// ErrStepLocked is returned when jumping to a step whose predecessors
// are not completed yet.
var ErrStepLocked = errors.New("complete the previous step first")

// Wizard walks a Bag through the steps. Steps unlock strictly in
// order: a step becomes reachable only once every prior step validated.
type Wizard struct {
	Current   Step
	Completed map[Step]bool
	Bag       validation.Bag
	Errors    map[string]string
}

func NewWizard() *Wizard {
	return &Wizard{
		Current:   StepRole,
		Completed: map[Step]bool{},
		Errors:    map[string]string{},
	}
}

// ValidateCurrent runs the collaborator for the active step and stores
// the field errors. Returns true when the step is clean.
func (w *Wizard) ValidateCurrent() bool {
	w.Errors = validation.Validate(w.Bag, w.Current.Key())
	return len(w.Errors) == 0
}

// Next validates the active step and advances when clean. On the last
// step it reports done=true instead of advancing; the caller then calls
// Submit.
func (w *Wizard) Next() (done bool, ok bool) {
	if !w.ValidateCurrent() {
		return false, false
	}
	w.Completed[w.Current] = true
	if w.Current == StepContent {
		return true, true
	}
	w.Current++
	return false, true
}

// Back returns to the previous step; no validation required.
func (w *Wizard) Back() {
	if w.Current > StepRole {
		w.Current--
	}
}

// Jump moves directly to step. Moving backward is always allowed;
// moving forward requires the active step (and any in between) to
// validate.
func (w *Wizard) Jump(step Step) error {
	if step < StepRole || step >= stepCount {
		return ErrStepLocked
	}
	if step <= w.Current {
		w.Current = step
		w.Errors = map[string]string{}
		return nil
	}
	for s := w.Current; s < step; s++ {
		if len(validation.Validate(w.Bag, s.Key())) > 0 {
			return ErrStepLocked
		}
		w.Completed[s] = true
	}
	w.Current = step
	w.Errors = map[string]string{}
	return nil
}

// Submission is the finished registration payload.
type Submission struct {
	Role                string
	FullName            string
	Email               string
	PhoneNumber         string
	Greeting            string
	LinkedinURL         string
	SocialMediaURL      string
	MenteeLevel         []string
	SharingContent      []string
	YearOfExperience    int
	AreaOfExpertise     string
	EducationBackground string
	Certifications      []string
}

// Submit freezes the bag into a submission. On the mentor branch the
// educator-only fields are stripped, mirroring the signup form's
// behavior.
func (w *Wizard) Submit() Submission {
	sub := Submission{
		Role:                w.Bag.Role,
		FullName:            w.Bag.FullName,
		Email:               w.Bag.Email,
		PhoneNumber:         w.Bag.PhoneNumber,
		Greeting:            w.Bag.Greeting,
		LinkedinURL:         w.Bag.LinkedinURL,
		SocialMediaURL:      w.Bag.SocialMediaURL,
		MenteeLevel:         w.Bag.MenteeLevel,
		SharingContent:      w.Bag.SharingContent,
		YearOfExperience:    w.Bag.YearOfExperience,
		AreaOfExpertise:     w.Bag.AreaOfExpertise,
		EducationBackground: w.Bag.EducationBackground,
		Certifications:      w.Bag.Certifications,
	}
	if sub.Role != validation.RoleEducator {
		sub.YearOfExperience = 0
		sub.AreaOfExpertise = ""
		sub.EducationBackground = ""
		sub.Certifications = nil
	}
	return sub
}

// Reset clears the wizard back to a fresh step one.
func (w *Wizard) Reset() {
	*w = *NewWizard()
}
