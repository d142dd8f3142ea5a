package request

import "strings"

type SignupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
}

func (r SignupRequest) GetLinkedinURL() *string {
	if r.LinkedinURL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.LinkedinURL)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
