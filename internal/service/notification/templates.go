// internal/service/notification/templates.go
package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"sumon-service/internal/domain/inquiry"
)

// templateData feeds both inquiry email templates.
type templateData struct {
	Inquiry      *inquiry.Inquiry
	ContactEmail string
	Date         string
	Year         int
}

const wrapperHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>M/S SUMON ENTERPRISE</title>
</head>
<body style="margin:0;padding:0;background-color:#F0EDE8;font-family:'Helvetica Neue',Helvetica,Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#F0EDE8;padding:40px 16px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" border="0"
               style="max-width:600px;width:100%;background:#FFFFFF;border-radius:2px;overflow:hidden;box-shadow:0 4px 24px rgba(0,0,0,.08);">
          <tr>
            <td style="background:#1A1A2E;padding:36px 40px 28px;">
              <div style="width:40px;height:3px;background:linear-gradient(90deg,#C9A84C,#E8C96A);border-radius:2px;margin-bottom:16px;"></div>
              <p style="margin:0;font-size:11px;font-weight:700;letter-spacing:.3em;text-transform:uppercase;color:#C9A84C;">
                M/S SUMON ENTERPRISE
              </p>
              <h1 style="margin:8px 0 0;font-size:22px;font-weight:700;color:#FFFFFF;letter-spacing:.02em;line-height:1.3;">
                Construction &amp; Development
              </h1>
            </td>
          </tr>
          <tr>
            <td style="height:3px;background:linear-gradient(90deg,#C9A84C,#E8C96A,#C9A84C);"></td>
          </tr>
          {{template "content" .}}
          <tr>
            <td style="background:#1A1A2E;padding:28px 40px;">
              <div style="width:30px;height:2px;background:#C9A84C;border-radius:1px;margin-bottom:12px;"></div>
              <p style="margin:0 0 4px;font-size:13px;font-weight:700;color:#FFFFFF;">M/S SUMON ENTERPRISE</p>
              <p style="margin:0 0 12px;font-size:11px;color:rgba(255,255,255,.45);letter-spacing:.05em;">
                ESTABLISHED 2000 &nbsp;&middot;&nbsp; BUILDING EXCELLENCE
              </p>
              <p style="margin:0;font-size:11px;color:rgba(255,255,255,.35);line-height:1.7;">
                Email: {{.ContactEmail}}<br/>
                Bangladesh
              </p>
            </td>
          </tr>
          <tr>
            <td style="background:#111320;padding:14px 40px;">
              <p style="margin:0;font-size:10px;color:rgba(255,255,255,.25);text-align:center;line-height:1.6;">
                This email was sent from M/S SUMON ENTERPRISE official website.<br/>
                &copy; {{.Year}} M/S SUMON ENTERPRISE. All rights reserved.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const adminAlertContent = `{{define "content"}}
<tr>
  <td style="background:#FBF8F0;border-left:4px solid #C9A84C;padding:16px 24px;">
    <p style="margin:0;font-size:12px;font-weight:700;letter-spacing:.2em;text-transform:uppercase;color:#C9A84C;">
      New Inquiry Received
    </p>
  </td>
</tr>
<tr>
  <td style="padding:36px 40px 24px;">
    <p style="margin:0 0 6px;font-size:11px;font-weight:700;letter-spacing:.25em;text-transform:uppercase;color:#C9A84C;">
      Client Details
    </p>
    <table width="100%" cellpadding="0" cellspacing="0"
           style="border:1px solid #E8E4DC;border-radius:2px;overflow:hidden;font-size:13px;">
      <tr>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;width:35%;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Name</td>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#1A1A2E;">{{.Inquiry.Name}}</td>
      </tr>
      <tr>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Email</td>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;">
          <a href="mailto:{{.Inquiry.Email}}" style="color:#C9A84C;text-decoration:none;">{{.Inquiry.Email}}</a>
        </td>
      </tr>
      <tr>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Phone</td>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;">
          <a href="tel:{{.Inquiry.Phone}}" style="color:#C9A84C;text-decoration:none;">{{.Inquiry.Phone}}</a>
        </td>
      </tr>
      <tr>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Subject</td>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#1A1A2E;">{{.Inquiry.Subject}}</td>
      </tr>
      <tr>
        <td style="padding:10px 16px;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Date</td>
        <td style="padding:10px 16px;color:#1A1A2E;">{{.Date}}</td>
      </tr>
    </table>
  </td>
</tr>
<tr>
  <td style="padding:0 40px 36px;">
    <p style="margin:0 0 6px;font-size:11px;font-weight:700;letter-spacing:.25em;text-transform:uppercase;color:#C9A84C;">
      Message
    </p>
    <div style="background:#F8F5EF;border:1px solid #E8E4DC;border-radius:2px;padding:20px 24px;">
      <p style="margin:0;font-size:14px;color:#1A1A2E;line-height:1.8;white-space:pre-wrap;">{{.Inquiry.Message}}</p>
    </div>
  </td>
</tr>
<tr>
  <td style="padding:0 40px 40px;">
    <table cellpadding="0" cellspacing="0">
      <tr>
        <td style="background:#C9A84C;border-radius:2px;">
          <a href="mailto:{{.Inquiry.Email}}"
             style="display:inline-block;padding:12px 28px;font-size:12px;font-weight:700;letter-spacing:.15em;text-transform:uppercase;color:#FFFFFF;text-decoration:none;">
            Reply to Client
          </a>
        </td>
        <td width="12"></td>
        <td style="border:1px solid #E8E4DC;border-radius:2px;">
          <a href="tel:{{.Inquiry.Phone}}"
             style="display:inline-block;padding:12px 28px;font-size:12px;font-weight:700;letter-spacing:.15em;text-transform:uppercase;color:#1A1A2E;text-decoration:none;">
            Call Client
          </a>
        </td>
      </tr>
    </table>
  </td>
</tr>
{{end}}`

const clientConfirmationContent = `{{define "content"}}
<tr>
  <td style="padding:40px 40px 28px;">
    <p style="margin:0 0 6px;font-size:11px;font-weight:700;letter-spacing:.25em;text-transform:uppercase;color:#C9A84C;">
      Confirmation
    </p>
    <h2 style="margin:0 0 12px;font-size:24px;font-weight:700;color:#1A1A2E;line-height:1.3;">
      Thank You, {{.Inquiry.Name}}!
    </h2>
    <p style="margin:0;font-size:14px;color:#6B6B8A;line-height:1.8;">
      We have received your message and appreciate you reaching out to
      <strong style="color:#1A1A2E;">M/S SUMON ENTERPRISE</strong>. Our team will
      review your inquiry and get back to you shortly.
    </p>
  </td>
</tr>
<tr>
  <td style="padding:0 40px 28px;">
    <p style="margin:0 0 6px;font-size:11px;font-weight:700;letter-spacing:.25em;text-transform:uppercase;color:#C9A84C;">
      Your Inquiry Summary
    </p>
    <table width="100%" cellpadding="0" cellspacing="0"
           style="border:1px solid #E8E4DC;border-radius:2px;overflow:hidden;font-size:13px;">
      <tr>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;width:35%;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Subject</td>
        <td style="padding:10px 16px;border-bottom:1px solid #E8E4DC;color:#1A1A2E;">{{.Inquiry.Subject}}</td>
      </tr>
      <tr>
        <td style="padding:10px 16px;color:#6B6B8A;font-size:11px;text-transform:uppercase;">Submitted</td>
        <td style="padding:10px 16px;color:#1A1A2E;">{{.Date}}</td>
      </tr>
    </table>
    <div style="background:#1A1A2E;border-radius:2px;padding:20px 24px;margin-top:12px;">
      <p style="margin:0 0 8px;font-size:10px;font-weight:700;letter-spacing:.2em;text-transform:uppercase;color:rgba(255,255,255,.4);">
        Your Message
      </p>
      <p style="margin:0;font-size:13px;color:rgba(255,255,255,.75);line-height:1.8;white-space:pre-wrap;">{{.Inquiry.Message}}</p>
    </div>
  </td>
</tr>
<tr>
  <td style="padding:0 40px 28px;">
    <p style="margin:0 0 14px;font-size:11px;font-weight:700;letter-spacing:.25em;text-transform:uppercase;color:#C9A84C;">
      What Happens Next?
    </p>
    <p style="margin:0 0 10px;font-size:13px;color:#1A1A2E;"><strong>1. Review</strong>
      <span style="color:#6B6B8A;">&mdash; our team reviews your inquiry within 24 hours</span></p>
    <p style="margin:0 0 10px;font-size:13px;color:#1A1A2E;"><strong>2. Contact</strong>
      <span style="color:#6B6B8A;">&mdash; we reach out via email or phone to discuss your project</span></p>
    <p style="margin:0;font-size:13px;color:#1A1A2E;"><strong>3. Consultation</strong>
      <span style="color:#6B6B8A;">&mdash; we schedule a consultation to plan your construction project</span></p>
  </td>
</tr>
<tr>
  <td style="padding:0 40px 40px;">
    <p style="margin:0 0 4px;font-size:12px;color:#6B6B8A;">
      Need urgent assistance? Contact us directly:
    </p>
    <p style="margin:0;font-size:13px;font-weight:600;color:#1A1A2E;">
      <a href="mailto:{{.ContactEmail}}" style="color:#C9A84C;text-decoration:none;">{{.ContactEmail}}</a>
    </p>
  </td>
</tr>
{{end}}`

var (
	adminAlertTmpl         = template.Must(template.New("admin_alert").Parse(adminAlertContent + wrapperHTML))
	clientConfirmationTmpl = template.Must(template.New("client_confirmation").Parse(clientConfirmationContent + wrapperHTML))
)

func renderAdminAlert(inq *inquiry.Inquiry, contactEmail string) (subject, body string, err error) {
	subject = fmt.Sprintf("New Inquiry: %s — from %s", inq.Subject, inq.Name)
	body, err = render(adminAlertTmpl, inq, contactEmail)
	return subject, body, err
}

func renderClientConfirmation(inq *inquiry.Inquiry, contactEmail string) (subject, body string, err error) {
	subject = "We received your inquiry — M/S SUMON ENTERPRISE"
	body, err = render(clientConfirmationTmpl, inq, contactEmail)
	return subject, body, err
}

func render(tmpl *template.Template, inq *inquiry.Inquiry, contactEmail string) (string, error) {
	now := time.Now()
	data := templateData{
		Inquiry:      inq,
		ContactEmail: contactEmail,
		Date:         now.Format("Monday, January 2, 2006"),
		Year:         now.Year(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
