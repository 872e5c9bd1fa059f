package domain

import "time"

// ContactSubject es el tema elegido en el formulario de contacto.
type ContactSubject string

const (
	SubjectGeneral       ContactSubject = "general"
	SubjectTechnical     ContactSubject = "technical"
	SubjectAccessibility ContactSubject = "accessibility"
	SubjectFeedback      ContactSubject = "feedback"
	SubjectPartnership   ContactSubject = "partnership"
)

// ContactSubjectLabels mantiene el orden y las etiquetas del selector.
var ContactSubjectLabels = []struct {
	Subject ContactSubject `json:"value"`
	Label   string         `json:"label"`
}{
	{SubjectGeneral, "General Question"},
	{SubjectTechnical, "Technical Support"},
	{SubjectAccessibility, "Accessibility Help"},
	{SubjectFeedback, "Feedback"},
	{SubjectPartnership, "Partnership Inquiry"},
}

// Valid indica si el tema pertenece al conjunto fijo.
func (s ContactSubject) Valid() bool {
	for _, l := range ContactSubjectLabels {
		if l.Subject == s {
			return true
		}
	}
	return false
}

// ContactThankYou es el mensaje fijo que se muestra tras enviar el formulario.
const ContactThankYou = "Thank you for reaching out! We'll get back to you soon."

type ContactMessage struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Subject   ContactSubject `json:"subject"`
	Message   string         `json:"message"`
	CreatedAt time.Time      `json:"created_at"`
}
