package email

import (
	"context"
	"fmt"
	"html"
)

type SharedReportMail struct {
	To           []string
	EmployeeName string
	MonthName    string
	URL          string
	FileName     string
	ContentType  string
	Workbook     []byte
}

// SendSharedReport mails the report link with the workbook attached.
func (m *Mailer) SendSharedReport(ctx context.Context, mail SharedReportMail) error {
	subject := fmt.Sprintf("Attendance report: %s, %s", mail.EmployeeName, mail.MonthName)
	text := fmt.Sprintf("%s's attendance report for %s is available at:\n%s\n\nThe spreadsheet is attached.", mail.EmployeeName, mail.MonthName, mail.URL)
	body := fmt.Sprintf(`<p>%s's attendance report for %s is available <a href="%s">here</a>.</p><p>The spreadsheet is attached.</p>`,
		html.EscapeString(mail.EmployeeName), html.EscapeString(mail.MonthName), html.EscapeString(mail.URL))

	info := &EmailInfo{
		From:    m.From,
		To:      mail.To,
		Subject: subject,
		Text:    text,
		HTML:    body,
	}
	if len(mail.Workbook) > 0 {
		info.Attachments = []Attachment{{Filename: mail.FileName, ContentType: mail.ContentType, Content: mail.Workbook}}
	}
	return m.SendEmail(ctx, info)
}
