package validation

type ProfileInput struct {
	Handle         string `json:"handle" form:"handle" validate:"required,min=2,max=40"`
	Company        string `json:"company" form:"company"`
	Website        string `json:"website" form:"website" validate:"omitempty,weburl"`
	Location       string `json:"location" form:"location"`
	Status         string `json:"status" form:"status" validate:"required"`
	Skills         string `json:"skills" form:"skills" validate:"required"`
	Bio            string `json:"bio" form:"bio"`
	Githubusername string `json:"githubusername" form:"githubusername"`
	Youtube        string `json:"youtube" form:"youtube" validate:"omitempty,weburl"`
	Twitter        string `json:"twitter" form:"twitter" validate:"omitempty,weburl"`
	Facebook       string `json:"facebook" form:"facebook" validate:"omitempty,weburl"`
	Linkedin       string `json:"linkedin" form:"linkedin" validate:"omitempty,weburl"`
	Instagram      string `json:"instagram" form:"instagram" validate:"omitempty,weburl"`
}

// SocialLinks returns the platform links keyed like subentity.SocialPlatforms.
func (in ProfileInput) SocialLinks() map[string]string {
	return map[string]string{
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	}
}

var profileMessages = map[string]string{
	"handle.required":  "Profile handle is required",
	"handle.min":       "Handle needs to between 2 and 40 characters",
	"handle.max":       "Handle needs to between 2 and 40 characters",
	"status.required":  "Status field is required",
	"skills.required":  "Skills field is required",
	"website.weburl":   "Not a valid URL",
	"youtube.weburl":   "Not a valid URL",
	"twitter.weburl":   "Not a valid URL",
	"facebook.weburl":  "Not a valid URL",
	"linkedin.weburl":  "Not a valid URL",
	"instagram.weburl": "Not a valid URL",
}

func ValidateProfileInput(in ProfileInput) (Errors, bool) {
	trim(&in.Handle, &in.Status, &in.Skills, &in.Website,
		&in.Youtube, &in.Twitter, &in.Facebook, &in.Linkedin, &in.Instagram)
	return validateStruct(in, profileMessages)
}

type ExperienceInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Company     string `json:"company" form:"company" validate:"required"`
	Location    string `json:"location" form:"location"`
	From        string `json:"from" form:"from" validate:"required,calendar"`
	To          string `json:"to" form:"to" validate:"omitempty,calendar"`
	Current     bool   `json:"current" form:"current"`
	Description string `json:"description" form:"description"`
}

var experienceMessages = map[string]string{
	"title.required":   "Job title field is required",
	"company.required": "Company field is required",
	"from.required":    "From date field is required",
	"from.calendar":    "From date is invalid",
	"to.calendar":      "To date is invalid",
}

func ValidateExperienceInput(in ExperienceInput) (Errors, bool) {
	trim(&in.Title, &in.Company, &in.From, &in.To)
	return validateStruct(in, experienceMessages)
}

type EducationInput struct {
	School       string `json:"school" form:"school" validate:"required"`
	Degree       string `json:"degree" form:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" form:"fieldofstudy" validate:"required"`
	From         string `json:"from" form:"from" validate:"required,calendar"`
	To           string `json:"to" form:"to" validate:"omitempty,calendar"`
	Current      bool   `json:"current" form:"current"`
	Description  string `json:"description" form:"description"`
}

var educationMessages = map[string]string{
	"school.required":       "School field is required",
	"degree.required":       "Degree field is required",
	"fieldofstudy.required": "Field of study field is required",
	"from.required":         "From date field is required",
	"from.calendar":         "From date is invalid",
	"to.calendar":           "To date is invalid",
}

func ValidateEducationInput(in EducationInput) (Errors, bool) {
	trim(&in.School, &in.Degree, &in.FieldOfStudy, &in.From, &in.To)
	return validateStruct(in, educationMessages)
}
