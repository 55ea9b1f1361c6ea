package types

import (
	"fmt"
	"strings"
	"time"
)

// RemoteLocation marks an opportunity that can be done from anywhere.
const RemoteLocation = "Remoto"

type Opportunity struct {
	ID               string    `json:"id"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	RequiredSkills   []string  `json:"required_skills"`
	Location         string    `json:"location"`
	Schedule         string    `json:"schedule"`
	CreatedAt        time.Time `json:"created_at"`
}

type NewOpportunity struct {
	OrganizationID string   `form:"organization_id"`
	Title          string   `form:"title"`
	Description    string   `form:"description"`
	RequiredSkills []string `form:"required_skills"`
	Location       string   `form:"location"`
	Schedule       string   `form:"schedule"`
}

func (o NewOpportunity) Validate() error {
	if strings.TrimSpace(o.OrganizationID) == "" {
		return fmt.Errorf("%w: organization_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

func (o Opportunity) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("opportunity is missing id")
	}
	if o.OrganizationID == "" {
		return fmt.Errorf("opportunity %s is missing organization_id", o.ID)
	}
	if o.Title == "" {
		return fmt.Errorf("opportunity %s is missing title", o.ID)
	}
	return nil
}
