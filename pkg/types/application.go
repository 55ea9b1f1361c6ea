package types

import (
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// RemovedOpportunityTitle is shown for applications whose opportunity no
// longer exists.
const RemovedOpportunityTitle = "Vaga removida"

type Application struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	OpportunityID string            `json:"opportunity_id"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (a Application) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("application is missing id")
	}
	if a.UserID == "" || a.OpportunityID == "" {
		return fmt.Errorf("application %s is missing user_id or opportunity_id", a.ID)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("application %s has unknown status %q", a.ID, a.Status)
	}
	return nil
}

// ApplicationView is an Application hydrated with its opportunity title at
// read time.
type ApplicationView struct {
	Application
	OpportunityTitle string `json:"opportunity_title"`
}

type ApplicationSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
