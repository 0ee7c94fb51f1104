package register

import "userdeck/internal/models"

// Option catalogs for the wizard screens. Role and greeting choices
// carry separate values and labels; the rest are plain labels that are
// their own value.
var (
	RoleOptions = []models.Option{
		models.Described("mentor", "Mentor", "Guide mentees and share hands-on experience"),
		models.Described("educator", "Educator", "Teach and pass on domain expertise"),
	}

	GreetingOptions = []models.Option{
		models.Labeled("mr", "Mr."),
		models.Labeled("ms", "Ms."),
		models.Labeled("friend", "Friend"),
	}

	MenteeLevelOptions = models.Plains(
		"Fresh graduate",
		"Junior",
		"Mid-level",
		"Senior",
	)

	SharingContentOptions = models.Plains(
		"Career coaching",
		"Study orientation",
		"Interview skills",
		"Soft skills",
		"Programming basics",
		"New technologies",
		"Project management",
		"Entrepreneurship",
	)

	AreaOfExpertiseOptions = models.Plains(
		"Web development",
		"Mobile development",
		"Data science",
		"Artificial intelligence",
		"Project management",
		"UX/UI design",
	)

	EducationBackgroundOptions = models.Plains(
		"College",
		"Bachelor",
		"Master",
		"PhD",
		"Professor",
	)
)
