package jobtread

// Raw payload shapes returned by the JobTread API. Upstream responses carry
// many optional fields, so everything that may be absent is a pointer; the
// transform layer applies default-on-absence semantics.

// RawBudget is the budget sub-record on a job.
type RawBudget struct {
	EstimatedRevenue *float64 `json:"estimatedRevenue"`
	EstimatedCost    *float64 `json:"estimatedCost"`
	EstimatedProfit  *float64 `json:"estimatedProfit"`
	ActualRevenue    *float64 `json:"actualRevenue"`
	ActualCost       *float64 `json:"actualCost"`
	ActualProfit     *float64 `json:"actualProfit"`
	Invoiced         *float64 `json:"invoiced"`
	Paid             *float64 `json:"paid"`
	Outstanding      *float64 `json:"outstanding"`
}

// RawAddress is a postal address on a job or contact.
type RawAddress struct {
	Street1 *string `json:"street1"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
}

// RawContact is a contact record; also embedded as a job's customer.
type RawContact struct {
	ID        string  `json:"id"`
	Type      *string `json:"type"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Company   *string `json:"company"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
	CreatedAt *string `json:"createdAt"`
}

// RawTask is a task record, standalone or embedded in a job.
type RawTask struct {
	ID      string  `json:"id"`
	JobID   *string `json:"jobId"`
	Title   string  `json:"title"`
	Status  string  `json:"status"`
	DueDate *string `json:"dueDate"`
}

// RawJob is a job record.
type RawJob struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Number      *string     `json:"number"`
	Status      string      `json:"status"`
	Description *string     `json:"description"`
	Customer    *RawContact `json:"customer"`
	Address     *RawAddress `json:"address"`
	Budget      *RawBudget  `json:"budget"`
	Tasks       []RawTask   `json:"tasks"`
	CreatedAt   *string     `json:"createdAt"`
	UpdatedAt   *string     `json:"updatedAt"`
}

// RawInvoice is an invoice record.
type RawInvoice struct {
	ID      string   `json:"id"`
	JobID   *string  `json:"jobId"`
	Number  *string  `json:"number"`
	Status  string   `json:"status"`
	Total   *float64 `json:"total"`
	DueDate *string  `json:"dueDate"`
}

// RawOrganization is the organization on the current user.
type RawOrganization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawUser is the current user returned by the me query.
type RawUser struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Organization *RawOrganization `json:"organization"`
}
