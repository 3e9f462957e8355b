package dao

import (
	"time"
)

const (
	SubmissionContact    = "contact"
	SubmissionNewsletter = "newsletter"
)

type SubmissionFormData struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name,omitempty" binding:"omitempty,max=150"`
	Message string `json:"message,omitempty"`
}

// SubmissionFormRequest is checked as a whole by a struct level validation:
// a contact form also needs a name and a message.
type SubmissionFormRequest struct {
	Type     string             `json:"type" binding:"required,oneof=contact newsletter"`
	FormData SubmissionFormData `json:"formData"`
}

// Lead is the message published for every accepted submission.
type Lead struct {
	Id          string    `json:"id"`
	Type        string    `json:"type"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func ToLead(id string, req *SubmissionFormRequest, at time.Time) *Lead {
	return &Lead{
		Id:          id,
		Type:        req.Type,
		Email:       req.FormData.Email,
		Name:        req.FormData.Name,
		Message:     req.FormData.Message,
		SubmittedAt: at.UTC(),
	}
}

// Row is the spreadsheet row a lead is stored as.
func (l *Lead) Row() []any {
	return []any{
		l.SubmittedAt.Format(time.RFC3339),
		l.Type,
		l.Email,
		l.Name,
		l.Message,
	}
}

// TemplateData is handed to the lead notification email template.
func (l *Lead) TemplateData() map[string]any {
	return map[string]any{
		"type":        l.Type,
		"email":       l.Email,
		"name":        l.Name,
		"message":     l.Message,
		"submittedAt": l.SubmittedAt.Format(time.RFC3339),
	}
}
