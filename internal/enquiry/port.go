package enquiry

import "pewec-api/internal/course"

// EmailSender dispatches one HTML email. Failures are logged by the
// caller and never surface to the submitting client.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// CourseDirectory resolves the course referenced by a course enquiry.
// Satisfied by *course.CourseService.
type CourseDirectory interface {
	GetByID(id string) (*course.Course, error)
}
