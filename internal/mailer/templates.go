package mailer

import (
	"fmt"
	"time"
)

const (
	SubjectCourseEnquiry  = "Thank You for Your Course Enquiry - PEWEC"
	SubjectContactEnquiry = "We've Received Your Message - PEWEC"
)

func SubjectRepNotification(courseName string) string {
	return fmt.Sprintf("New Enquiry: %s - PEWEC", courseName)
}

var enquiryTypeLabels = map[string]string{
	"general":    "General Inquiry",
	"admission":  "Admission Related",
	"fees":       "Fees & Payment",
	"facilities": "Facilities & Campus",
	"other":      "Other",
}

// CourseEnquiryBody is the requester confirmation for a course enquiry.
func CourseEnquiryBody(name, email, courseName string, courseDescription *string) string {
	about := ""
	if courseDescription != nil && *courseDescription != "" {
		about = fmt.Sprintf(`<tr><td style="color:#888888;vertical-align:top;">About:</td><td style="color:#555555;">%s</td></tr>`, *courseDescription)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <table role="presentation" style="width:100%%;max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:16px;">
    <tr><td style="background-color:#c44944;padding:30px 40px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:24px;">Princess Esin Women's Educational Centre</h1>
    </td></tr>
    <tr><td style="padding:40px;">
      <h2 style="color:#333333;">Thank You for Your Enquiry!</h2>
      <p style="color:#666666;">Dear <strong>%s</strong>,</p>
      <p style="color:#666666;">Thank you for showing interest in our courses at PEWEC. We have received your enquiry and our team will get back to you shortly.</p>
      <table role="presentation" style="width:100%%;background-color:#f8f9fa;border-radius:12px;">
        <tr><td style="padding:25px;">
          <h3 style="color:#c44944;margin:0 0 15px 0;">Your Enquiry Details</h3>
          <table role="presentation" style="width:100%%;">
            <tr><td style="color:#888888;width:120px;">Course:</td><td style="color:#333333;font-weight:600;">%s</td></tr>
            %s
            <tr><td style="color:#888888;">Email:</td><td style="color:#333333;">%s</td></tr>
          </table>
        </td></tr>
      </table>
      <p style="color:#666666;">Our admissions team will contact you within <strong>24&ndash;48 hours</strong> to discuss course details, fees, and the admission process.</p>
    </td></tr>
    %s
  </table>
</body>
</html>`, name, courseName, about, email, footerHTML())
}

// ContactEnquiryBody is the requester confirmation for a non-course enquiry.
func ContactEnquiryBody(firstName, lastName, email, enquiryType string) string {
	label, ok := enquiryTypeLabels[enquiryType]
	if !ok {
		label = enquiryType
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <table role="presentation" style="width:100%%;max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:16px;">
    <tr><td style="background-color:#006457;padding:30px 40px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:24px;">Princess Esin Women's Educational Centre</h1>
    </td></tr>
    <tr><td style="padding:40px;">
      <h2 style="color:#333333;">We've Received Your Message!</h2>
      <p style="color:#666666;">Dear <strong>%s %s</strong>,</p>
      <p style="color:#666666;">Thank you for reaching out to us. We have received your enquiry and appreciate you taking the time to contact PEWEC.</p>
      <table role="presentation" style="width:100%%;background-color:#f0f9f7;border-radius:12px;border-left:4px solid #006457;">
        <tr><td style="padding:25px;">
          <h3 style="color:#006457;margin:0 0 15px 0;">Enquiry Summary</h3>
          <table role="presentation" style="width:100%%;">
            <tr><td style="color:#888888;width:120px;">Enquiry Type:</td><td style="color:#333333;font-weight:600;">%s</td></tr>
            <tr><td style="color:#888888;">Email:</td><td style="color:#333333;">%s</td></tr>
          </table>
        </td></tr>
      </table>
      <p style="color:#666666;">Our team will review your enquiry and respond within <strong>24&ndash;48 hours</strong>.</p>
    </td></tr>
    %s
  </table>
</body>
</html>`, firstName, lastName, label, email, footerHTML())
}

// RepNotificationBody is the internal notification sent to the course
// representative when a course enquiry arrives.
func RepNotificationBody(firstName, lastName, email, phone, courseName string, message *string) string {
	msgRow := ""
	if message != nil && *message != "" {
		msgRow = fmt.Sprintf(`<tr><td style="color:#888888;vertical-align:top;">Message:</td><td style="color:#555555;">%s</td></tr>`, *message)
	}
	if phone == "" {
		phone = "&mdash;"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <table role="presentation" style="width:100%%;max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:16px;">
    <tr><td style="background-color:#333333;padding:24px 40px;">
      <h1 style="color:#ffffff;margin:0;font-size:20px;">New Course Enquiry</h1>
      <p style="color:#aaaaaa;margin:6px 0 0 0;font-size:14px;">PEWEC Admin Notification</p>
    </td></tr>
    <tr><td style="padding:32px 40px;">
      <p style="color:#444444;">A new enquiry has been submitted for <strong>%s</strong>.</p>
      <table role="presentation" style="width:100%%;background-color:#f8f9fa;border-radius:10px;">
        <tr><td style="padding:20px 24px;">
          <table role="presentation" style="width:100%%;">
            <tr><td style="color:#888888;width:110px;">Name:</td><td style="color:#333333;font-weight:600;">%s %s</td></tr>
            <tr><td style="color:#888888;">Email:</td><td style="color:#333333;"><a href="mailto:%s" style="color:#c44944;">%s</a></td></tr>
            <tr><td style="color:#888888;">Phone:</td><td style="color:#333333;">%s</td></tr>
            %s
          </table>
        </td></tr>
      </table>
    </td></tr>
    <tr><td style="background-color:#f8f9fa;padding:20px 40px;text-align:center;">
      <p style="color:#aaaaaa;font-size:12px;margin:0;">This is an automated notification from the PEWEC enquiry system.</p>
    </td></tr>
  </table>
</body>
</html>`, courseName, firstName, lastName, email, email, phone, msgRow)
}

func footerHTML() string {
	return fmt.Sprintf(`<tr><td style="background-color:#f8f9fa;padding:30px 40px;border-top:1px solid #eeeeee;text-align:center;">
      <p style="color:#888888;font-size:14px;margin:0 0 10px 0;"><strong>Contact Us</strong></p>
      <p style="color:#888888;font-size:13px;margin:0 0 5px 0;">+91 40 24578078 | +91 40 24520761</p>
      <p style="color:#888888;font-size:13px;margin:0 0 5px 0;">pewecpewec@yahoo.co.in</p>
      <p style="color:#888888;font-size:13px;margin:0 0 20px 0;">223, 6A3 Building, Purani Haveli Road, Hyderabad - 500002</p>
      <p style="color:#aaaaaa;font-size:12px;margin:0;">&copy; %d Princess Esin Women's Educational Centre. All rights reserved.</p>
    </td></tr>`, time.Now().Year())
}
