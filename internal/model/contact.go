package model

// Contact form field names, as used by UpdateField.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactFields holds the free-text inputs of the contact form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Missing returns the names of required fields that are empty, in form order.
// Like an HTML required input, whitespace counts as a value.
func (f ContactFields) Missing() []string {
	var missing []string
	for _, kv := range [...]struct{ name, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldSubject, f.Subject},
		{FieldMessage, f.Message},
	} {
		if kv.value == "" {
			missing = append(missing, kv.name)
		}
	}
	return missing
}

// SubjectOption is one entry of the "Project Type" select.
type SubjectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SubjectOptions lists the selectable project types.
var SubjectOptions = []SubjectOption{
	{Value: "web-development", Label: "Web Development"},
	{Value: "mobile-apps", Label: "Mobile Apps"},
	{Value: "ai-automation", Label: "AI Automation"},
}
