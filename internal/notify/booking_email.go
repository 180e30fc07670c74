package notify

import (
	"bytes"
	"html/template"

	"github.com/Roopkumar213/KNG/internal/models"
)

// BookingSubject is the subject line of the admin notification email.
const BookingSubject = "New Guide Booking Request"

var bookingTmpl = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
	body { font-family: 'Georgia', serif; color: #1c1917; line-height: 1.6; }
	.container { max-width: 600px; margin: 0 auto; border: 1px solid #d6d3d1; background: #fafaf9; }
	.header { background: #1c1917; color: #fff; padding: 20px; text-align: center; }
	.header h1 { margin: 0; font-family: 'Courier New', monospace; letter-spacing: 2px; text-transform: uppercase; }
	.content { padding: 30px; }
	.card { background: #fff; padding: 20px; border: 1px solid #e7e5e4; margin-bottom: 20px; border-left: 4px solid #ea580c; }
	.label { font-size: 12px; text-transform: uppercase; color: #78716c; font-weight: bold; display: block; margin-bottom: 4px; }
	.value { font-size: 16px; font-weight: bold; display: block; margin-bottom: 16px; }
	.footer { text-align: center; font-size: 12px; color: #a8a29e; padding: 20px; border-top: 1px solid #d6d3d1; }
	.btn { display: inline-block; background: #ea580c; color: white; padding: 10px 20px; text-decoration: none; border-radius: 4px; font-weight: bold; }
</style>
</head>
<body>
<div class="container">
	<div class="header">
		<h1>Kangundi Tourism</h1>
	</div>
	<div class="content">
		<p><strong>Subject:</strong> New Guide Booking Request</p>
		<p>Hello Admin,</p>
		<p>A new guide request has been received for the boulder fields.</p>

		<div class="card">
			<span class="label">Tourist Name</span>
			<span class="value">{{.Name}}</span>

			<span class="label">Contact Info</span>
			<span class="value">{{.Email}} | {{.Phone}}</span>

			<span class="label">Requested Date</span>
			<span class="value">{{.Date}}</span>

			<span class="label">Group Details</span>
			<span class="value">{{.GroupSize}} Climbers | Level: {{.ExperienceLevel}}</span>
		</div>

		<p style="text-align: center;">
			<a href="mailto:{{.Email}}" class="btn">Reply to Tourist</a>
		</p>
	</div>
	<div class="footer">
		&copy; 2026 Kangundi Heritage &amp; Adventure.<br>
		Official Government Notification System.
	</div>
</div>
</body>
</html>
`))

// BookingEmail renders the admin notification for a new booking.
func BookingEmail(b *models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := bookingTmpl.Execute(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}
