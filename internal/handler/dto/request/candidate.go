package request

import "strings"

type CreateCandidateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	LinkedinURL string  `json:"linkedin_url" binding:"required,url"`
	TeamID      int32   `json:"team_id" binding:"required,min=1"`
}

func (r CreateCandidateRequest) GetDescription() *string {
	if r.Description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
