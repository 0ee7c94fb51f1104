// Package validation is the field-rule collaborator for the
// registration wizard: hand it the full data bag and a step id, get
// back per-field error messages for that step. An empty result means
// the step is valid and navigation may proceed.
package validation

import "github.com/go-playground/validator/v10"

// Step identifiers, one per wizard screen.
const (
	StepRole     = "role"
	StepPersonal = "personal"
	StepContent  = "content"
)

// RoleEducator gates the educator-only rules on the content step.
const RoleEducator = "educator"

// Bag is the whole wizard form as one flat value. Every step validates
// against the same bag so cross-step rules (role gating) stay simple.
type Bag struct {
	Role string

	FullName       string
	Email          string
	PhoneNumber    string
	Greeting       string
	LinkedinURL    string
	SocialMediaURL string

	MenteeLevel    []string
	SharingContent []string

	YearOfExperience    int
	AreaOfExpertise     string
	EducationBackground string
	Certifications      []string
}

var validate = validator.New()

// Validate applies the rules for step and returns a field→message map
// for everything currently invalid. It never fails hard: unknown step
// ids validate as empty.
func Validate(bag Bag, step string) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepRole:
		if bag.Role == "" {
			errs["role"] = "please choose a role"
		}

	case StepPersonal:
		if bag.FullName == "" {
			errs["fullName"] = "please enter your full name"
		}
		checkVar(errs, "email", bag.Email, "required,email", "please enter a valid email")
		checkVar(errs, "phoneNumber", bag.PhoneNumber, "required,len=10,numeric", "phone number must be exactly 10 digits")
		if bag.Greeting == "" {
			errs["greeting"] = "please choose how to address you"
		}
		checkVar(errs, "linkedinUrl", bag.LinkedinURL, "required,url", "please enter a valid LinkedIn URL")
		checkVar(errs, "socialMediaUrl", bag.SocialMediaURL, "required,url", "please enter a valid social media URL")

	case StepContent:
		if len(bag.MenteeLevel) == 0 {
			errs["menteeLevel"] = "please choose at least one mentee level"
		}
		if len(bag.SharingContent) == 0 {
			errs["sharingContent"] = "please choose at least one sharing topic"
		}
		if bag.Role == RoleEducator {
			if bag.YearOfExperience < 1 {
				errs["yearOfExperience"] = "years of experience must be greater than 0"
			}
			if bag.AreaOfExpertise == "" {
				errs["areaOfExpertise"] = "please choose an area of expertise"
			}
			if bag.EducationBackground == "" {
				errs["educationBackground"] = "please choose an education background"
			}
			if len(bag.Certifications) == 0 {
				errs["certifications"] = "please add at least one certification file"
			}
		}
	}

	return errs
}

func checkVar(errs map[string]string, field, value, tag, message string) {
	if err := validate.Var(value, tag); err != nil {
		errs[field] = message
	}
}
