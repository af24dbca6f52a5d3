package mailer

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
)

// PatientWelcome is the template name used for the email sent after a patient
// is registered.
const PatientWelcome = "patient_welcome"

var welcomeHTML = htmltpl.Must(htmltpl.New(PatientWelcome).Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome, {{.Name}}</h2>
    <p>Your patient record was created on {{.RegisteredDate}}.</p>
    <p>You can reach our front desk any time if any of your details change.</p>
  </body>
</html>
`))

// RenderTemplate renders a named template with data into subject, text and html
// bodies. Unknown template names are an error so bad jobs end up rejected
// instead of silently sending empty mail.
func RenderTemplate(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case PatientWelcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Your patient record was created"
		text = fmt.Sprintf("Welcome, %v. Your patient record was created on %v.", data["Name"], data["RegisteredDate"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
