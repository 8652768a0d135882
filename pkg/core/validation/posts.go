package validation

// PostInput is shared by posts and comments.
type PostInput struct {
	Text   string `json:"text" form:"text" validate:"required,min=10,max=300"`
	Name   string `json:"name" form:"name"`
	Avatar string `json:"avatar" form:"avatar"`
}

var postMessages = map[string]string{
	"text.required": "Text field is required",
	"text.min":      "Post must be between 10 and 300 characters",
	"text.max":      "Post must be between 10 and 300 characters",
}

func ValidatePostInput(in PostInput) (Errors, bool) {
	trim(&in.Text)
	return validateStruct(in, postMessages)
}
