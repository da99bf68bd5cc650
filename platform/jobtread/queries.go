package jobtread

import "context"

// Canned read queries mirroring the fields the sidebar renders. Filter and
// pagination parameters are passed as GraphQL variables; omitted filters are
// sent as null, which the upstream treats as "no filter".

const defaultPageSize = 100

const queryJobs = `query GetJobs($first: Int, $status: String, $search: String) {
  jobs(first: $first, filter: { status: $status, search: $search }) {
    data {
      id name number status description createdAt updatedAt
      customer { id firstName lastName company email phone }
      address { street1 city state zip }
      budget { estimatedRevenue estimatedCost estimatedProfit actualRevenue actualCost actualProfit invoiced paid outstanding }
    }
    totalCount
  }
}`

const queryJob = `query GetJob($id: ID!) {
  job(id: $id) {
    id name number status description createdAt updatedAt
    customer { id firstName lastName company email phone }
    address { street1 city state zip }
    budget { estimatedRevenue estimatedCost estimatedProfit actualRevenue actualCost actualProfit invoiced paid outstanding }
    tasks { id title status dueDate }
  }
}`

const queryContacts = `query GetContacts($first: Int, $type: String, $search: String) {
  contacts(first: $first, filter: { type: $type, search: $search }) {
    data { id type firstName lastName company email phone source notes createdAt }
    totalCount
  }
}`

const queryInvoices = `query GetInvoices($jobId: ID, $status: String) {
  invoices(filter: { jobId: $jobId, status: $status }) {
    data { id jobId number status total dueDate }
  }
}`

const queryTasks = `query GetTasks($jobId: ID, $status: String) {
  tasks(filter: { jobId: $jobId, status: $status }) {
    data { id jobId title status dueDate }
  }
}`

const queryMe = `query GetCurrentUser {
  me { id email firstName lastName organization { id name } }
}`

// JobsFilter narrows the jobs list query.
type JobsFilter struct {
	First  int
	Status string
	Search string
}

// ContactsFilter narrows the contacts list query.
type ContactsFilter struct {
	First  int
	Type   string
	Search string
}

// InvoicesFilter narrows the invoices list query.
type InvoicesFilter struct {
	JobID  string
	Status string
}

// TasksFilter narrows the tasks list query.
type TasksFilter struct {
	JobID  string
	Status string
}

// Jobs fetches the jobs list.
func (c *Client) Jobs(ctx context.Context, grantKey string, filter JobsFilter) ([]RawJob, error) {
	first := filter.First
	if first <= 0 {
		first = defaultPageSize
	}

	var resp struct {
		Jobs struct {
			Data []RawJob `json:"data"`
		} `json:"jobs"`
	}
	vars := map[string]any{"first": first}
	if filter.Status != "" {
		vars["status"] = filter.Status
	}
	if filter.Search != "" {
		vars["search"] = filter.Search
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryJobs, Variables: vars}, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs.Data, nil
}

// Job fetches a single job with its tasks.
func (c *Client) Job(ctx context.Context, grantKey, id string) (RawJob, error) {
	var resp struct {
		Job *RawJob `json:"job"`
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryJob, Variables: map[string]any{"id": id}}, &resp); err != nil {
		return RawJob{}, err
	}
	if resp.Job == nil {
		return RawJob{}, nil
	}
	return *resp.Job, nil
}

// Contacts fetches the contacts list.
func (c *Client) Contacts(ctx context.Context, grantKey string, filter ContactsFilter) ([]RawContact, error) {
	first := filter.First
	if first <= 0 {
		first = defaultPageSize
	}

	var resp struct {
		Contacts struct {
			Data []RawContact `json:"data"`
		} `json:"contacts"`
	}
	vars := map[string]any{"first": first}
	if filter.Type != "" {
		vars["type"] = filter.Type
	}
	if filter.Search != "" {
		vars["search"] = filter.Search
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryContacts, Variables: vars}, &resp); err != nil {
		return nil, err
	}
	return resp.Contacts.Data, nil
}

// Invoices fetches the invoices list.
func (c *Client) Invoices(ctx context.Context, grantKey string, filter InvoicesFilter) ([]RawInvoice, error) {
	var resp struct {
		Invoices struct {
			Data []RawInvoice `json:"data"`
		} `json:"invoices"`
	}
	vars := map[string]any{}
	if filter.JobID != "" {
		vars["jobId"] = filter.JobID
	}
	if filter.Status != "" {
		vars["status"] = filter.Status
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryInvoices, Variables: vars}, &resp); err != nil {
		return nil, err
	}
	return resp.Invoices.Data, nil
}

// Tasks fetches the tasks list.
func (c *Client) Tasks(ctx context.Context, grantKey string, filter TasksFilter) ([]RawTask, error) {
	var resp struct {
		Tasks struct {
			Data []RawTask `json:"data"`
		} `json:"tasks"`
	}
	vars := map[string]any{}
	if filter.JobID != "" {
		vars["jobId"] = filter.JobID
	}
	if filter.Status != "" {
		vars["status"] = filter.Status
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryTasks, Variables: vars}, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks.Data, nil
}

// Me fetches the user owning the grant key. Used at login to validate the
// credential before a session is issued.
func (c *Client) Me(ctx context.Context, grantKey string) (RawUser, error) {
	var resp struct {
		Me *RawUser `json:"me"`
	}
	if err := c.Query(ctx, grantKey, Request{Query: queryMe}, &resp); err != nil {
		return RawUser{}, err
	}
	if resp.Me == nil {
		return RawUser{}, nil
	}
	return *resp.Me, nil
}
