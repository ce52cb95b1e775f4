package entities

// CustomerStatusActive is assigned to customers created or touched by a save.
const CustomerStatusActive = "Active"

// CustomerColumns is the canonical column order of the customers flat file.
var CustomerColumns = []string{
	"client_name", "phone", "location", "email", "status",
	"notes", "tags", "next_follow_up", "assigned_to", "last_activity",
}

// Customer is a known client. Dates are kept as ISO strings, the way the
// spreadsheet stores them.
type Customer struct {
	ClientName   string `json:"client_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	Tags         string `json:"tags"`
	NextFollowUp string `json:"next_follow_up"`
	AssignedTo   string `json:"assigned_to"`
	LastActivity string `json:"last_activity"`
}
