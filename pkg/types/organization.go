package types

// Organization is modelled for completeness. The matching and application
// flows only ever see its name, copied onto each Opportunity.
type Organization struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}
