package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"prism-brain-be/internal/entity"
)

type IEmailService interface {
	SendReport(toEmail, projectName string, report *entity.Report) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendReport(toEmail, projectName string, report *entity.Report) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Research Report: %s", projectName))

	var themes strings.Builder
	for _, theme := range report.Themes {
		fmt.Fprintf(&themes, "<li>%s (%d notes, %.1f%%)</li>", theme.Name, theme.Frequency, theme.Percentage)
	}
	if themes.Len() == 0 {
		themes.WriteString("<li>No recurring themes yet.</li>")
	}

	var actions strings.Builder
	for _, item := range report.ActionItems {
		fmt.Fprintf(&actions, "<li>[%s] %s <em>(%s)</em></li>", item.Type, item.Content, item.Contributor)
	}
	if actions.Len() == 0 {
		actions.WriteString("<li>No open action items.</li>")
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>%d notes across %d sources, from %d contributors.</p>
			<h3>Top Themes</h3>
			<ul>%s</ul>
			<h3>Action Items</h3>
			<ul>%s</ul>
			<p>Generated at %s.</p>
		</div>
	`, projectName, report.TotalNotes, report.TotalSources, report.Contributors,
		themes.String(), actions.String(), report.LastUpdated.Format("Jan 2, 2006 15:04 MST"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Report for %q sent to %s\n", projectName, toEmail)
	return nil
}
