package mailer

import "strings"

// DefaultCompany is substituted for {company} when a recipient has no
// company of their own.
const DefaultCompany = "your company"

func (r Recipient) CompanyOrDefault() string {
	if r.Company == "" {
		return DefaultCompany
	}
	return r.Company
}

// Personalize replaces every {name} and {company} token in content with
// the recipient's fields. Matching is literal and case-sensitive; the
// output is not substituted again.
func Personalize(content string, r Recipient) string {
	out := strings.ReplaceAll(content, "{name}", r.Name)
	return strings.ReplaceAll(out, "{company}", r.CompanyOrDefault())
}

const (
	htmlHead = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
  </head>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    `
	htmlFoot = `
  </body>
</html>`
)

// WrapHTML puts personalized text into the fixed HTML document used for
// the html part of every message, turning newlines into <br> tags.
func WrapHTML(text string) string {
	return htmlHead + strings.ReplaceAll(text, "\n", "<br>") + htmlFoot
}
