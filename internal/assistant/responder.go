package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sidebar_backend/internal/domain"
)

// route maps trigger keywords to a report builder. Routes are checked in
// order and the first keyword match wins.
type route struct {
	keywords []string
	render   func(reportContext) string
}

var routes = []route{
	{keywords: []string{"health", "overview", "how is", "summary"}, render: healthReport},
	{keywords: []string{"cash", "forecast", "financial", "invoice"}, render: cashFlowReport},
	{keywords: []string{"lead", "contact", "follow up", "prospect"}, render: contactReport},
	{keywords: []string{"job", "project", "status report"}, render: jobStatusReport},
	{keywords: []string{"estimate", "pricing", "quote"}, render: estimateReport},
}

// reportContext carries the snapshot plus the aggregates every report needs.
type reportContext struct {
	snap    domain.Snapshot
	now     time.Time
	metrics domain.Metrics
	active  []domain.Job
}

// Respond builds a markdown reply for the message from the account snapshot.
// Messages that match no route get the default summary with suggested prompts.
func Respond(message string, snap domain.Snapshot, now time.Time) string {
	rc := reportContext{
		snap:    snap,
		now:     now,
		metrics: domain.BuildMetrics(snap, now),
		active:  domain.ActiveJobs(snap.Jobs),
	}

	lower := strings.ToLower(message)
	for _, rt := range routes {
		for _, kw := range rt.keywords {
			if strings.Contains(lower, kw) {
				return rt.render(rc)
			}
		}
	}
	return defaultReport(rc)
}

func healthReport(rc reportContext) string {
	m := rc.metrics

	var b strings.Builder
	fmt.Fprintf(&b, "**Business Health Check**\n\n")
	fmt.Fprintf(&b, "**Key Metrics:**\n")
	fmt.Fprintf(&b, "- Total Jobs: %d (%d active)\n", m.TotalJobs, m.ActiveJobs)
	fmt.Fprintf(&b, "- Total Revenue: %s\n", fmtCurrency(m.TotalRevenue))
	fmt.Fprintf(&b, "- Total Profit: %s\n", fmtCurrency(m.TotalProfit))
	fmt.Fprintf(&b, "- Average Margin: %s%%\n", fmtMargin(m.AvgMargin))
	fmt.Fprintf(&b, "- Total Contacts: %d\n\n", m.TotalContacts)
	fmt.Fprintf(&b, "**Invoices:**\n")
	fmt.Fprintf(&b, "- %d total invoices\n", m.TotalInvoices)
	fmt.Fprintf(&b, "- %d overdue (%s)\n\n", len(m.OverdueInvoices), fmtCurrency(m.OverdueTotal))
	fmt.Fprintf(&b, "**Tasks:**\n")
	fmt.Fprintf(&b, "- %d pending tasks\n", m.PendingTasks)
	fmt.Fprintf(&b, "- %d overdue tasks", len(m.OverdueTasks))

	if top := domain.TopByRevenue(rc.active, 3); len(top) > 0 {
		fmt.Fprintf(&b, "\n\n**Top Active Jobs:**")
		for _, j := range top {
			fmt.Fprintf(&b, "\n- %s: %s revenue, %s%% margin",
				j.Name, fmtCurrency(j.Budget.EstimatedRevenue), fmtMargin(j.Budget.Margin()))
		}
	}

	if len(m.OverdueInvoices) > 0 || len(m.OverdueTasks) > 0 {
		fmt.Fprintf(&b, "\n\n**Action Required:**")
		if len(m.OverdueInvoices) > 0 {
			fmt.Fprintf(&b, "\n- Follow up on %d overdue invoice(s) totaling %s",
				len(m.OverdueInvoices), fmtCurrency(m.OverdueTotal))
		}
		if len(m.OverdueTasks) > 0 {
			fmt.Fprintf(&b, "\n- Address %d overdue task(s)", len(m.OverdueTasks))
		}
	}
	return b.String()
}

func cashFlowReport(rc reportContext) string {
	m := rc.metrics
	activeRevenue := domain.SumBudget(rc.active, domain.EstimatedRevenue)

	var b strings.Builder
	fmt.Fprintf(&b, "**Cash Flow Analysis**\n\n")
	fmt.Fprintf(&b, "**Current Position:**\n")
	fmt.Fprintf(&b, "- Total Invoiced: %s\n", fmtCurrency(m.TotalInvoiced))
	fmt.Fprintf(&b, "- Total Collected: %s\n", fmtCurrency(m.TotalPaid))
	fmt.Fprintf(&b, "- Outstanding: %s\n", fmtCurrency(m.TotalOutstanding))
	fmt.Fprintf(&b, "- Overdue: %s (%d invoices)\n\n", fmtCurrency(m.OverdueTotal), len(m.OverdueInvoices))
	fmt.Fprintf(&b, "**Revenue Pipeline:**\n")
	fmt.Fprintf(&b, "- Active Job Revenue: %s\n", fmtCurrency(activeRevenue))
	fmt.Fprintf(&b, "- Profit Margin: %s%%", fmtMargin(m.AvgMargin))

	if len(m.OverdueInvoices) > 0 {
		fmt.Fprintf(&b, "\n\n**Overdue Invoices:**")
		for _, inv := range m.OverdueInvoices {
			days := 0
			if inv.DueDate != nil {
				days = int(rc.now.Sub(*inv.DueDate).Hours() / 24)
			}
			ref := inv.Number
			if ref == "" {
				ref = inv.ID
			}
			fmt.Fprintf(&b, "\n- Invoice %s: %s (%d days overdue)", ref, fmtCurrency(inv.Total), days)
		}
		fmt.Fprintf(&b, "\n\n**Recommendation:** Prioritize collecting overdue invoices to improve cash position.")
	}
	return b.String()
}

func contactReport(rc reportContext) string {
	recent := rc.snap.Contacts
	if len(recent) > 5 {
		recent = recent[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Contact & Lead Summary**\n\n")
	fmt.Fprintf(&b, "**Overview:**\n")
	fmt.Fprintf(&b, "- Total Contacts: %d\n\n", len(rc.snap.Contacts))
	fmt.Fprintf(&b, "**Recent Contacts:**")
	for _, c := range recent {
		fmt.Fprintf(&b, "\n- %s %s", c.FirstName, c.LastName)
		if c.Company != "" {
			fmt.Fprintf(&b, " (%s)", c.Company)
		}
		if c.Email != "" {
			fmt.Fprintf(&b, " - %s", c.Email)
		}
	}
	fmt.Fprintf(&b, "\n\n**Recommendation:** Review contacts and reach out to recent additions first.")
	return b.String()
}

func jobStatusReport(rc reportContext) string {
	m := rc.metrics

	var b strings.Builder
	fmt.Fprintf(&b, "**Job Status Report**\n\n")
	fmt.Fprintf(&b, "**Summary:**\n")
	fmt.Fprintf(&b, "- Total Jobs: %d\n", m.TotalJobs)
	fmt.Fprintf(&b, "- Active: %d\n", m.ActiveJobs)
	fmt.Fprintf(&b, "- Total Pipeline: %s\n\n", fmtCurrency(m.TotalRevenue))
	fmt.Fprintf(&b, "**By Status:**")

	statuses := make([]string, 0, len(m.StatusCounts))
	for status := range m.StatusCounts {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		fmt.Fprintf(&b, "\n- %s: %d",
			strings.ReplaceAll(status, "_", " "), m.StatusCounts[domain.JobStatus(status)])
	}

	if len(rc.active) > 0 {
		fmt.Fprintf(&b, "\n\n**Active Jobs:**")
		listed := rc.active
		if len(listed) > 5 {
			listed = listed[:5]
		}
		for _, j := range listed {
			fmt.Fprintf(&b, "\n- %s: %s revenue", j.Name, fmtCurrency(j.Budget.EstimatedRevenue))
			if j.Budget.Outstanding > 0 {
				fmt.Fprintf(&b, " (%s outstanding)", fmtCurrency(j.Budget.Outstanding))
			}
		}
	}
	return b.String()
}

func estimateReport(rc reportContext) string {
	m := rc.metrics
	avgRevenue := m.TotalRevenue / float64(max(m.TotalJobs, 1))
	margin := fmtMargin(m.AvgMargin)

	var b strings.Builder
	fmt.Fprintf(&b, "**Estimate Insights**\n\n")
	fmt.Fprintf(&b, "Based on your active jobs:\n")
	fmt.Fprintf(&b, "- Average Job Revenue: %s\n", fmtCurrency(avgRevenue))
	fmt.Fprintf(&b, "- Average Margin: %s%%\n", margin)
	fmt.Fprintf(&b, "- Active Projects: %d\n\n", m.ActiveJobs)
	fmt.Fprintf(&b, "**Pricing Guidance:**\n")
	fmt.Fprintf(&b, "- Your current margins average %s%%. Industry standard for contractors is 20-35%%.", margin)
	if m.AvgMargin < 20 {
		fmt.Fprintf(&b, "\n- Warning: Your margins are below industry average. Consider reviewing your pricing.")
	}
	if m.AvgMargin > 30 {
		fmt.Fprintf(&b, "\n- Your margins are strong. Maintain quality to justify premium pricing.")
	}
	fmt.Fprintf(&b, "\n\nUse the Smart Estimator tab to generate detailed estimates.")
	return b.String()
}

func defaultReport(rc reportContext) string {
	m := rc.metrics

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your JobTread data:\n\n")
	fmt.Fprintf(&b, "- **%d active jobs** with %s total revenue\n", m.ActiveJobs, fmtCurrency(m.TotalRevenue))
	fmt.Fprintf(&b, "- **%s%% average margin** across all jobs\n", fmtMargin(m.AvgMargin))
	fmt.Fprintf(&b, "- **%d overdue invoices** totaling %s\n", len(m.OverdueInvoices), fmtCurrency(m.OverdueTotal))
	fmt.Fprintf(&b, "- **%d pending tasks** (%d overdue)\n", m.PendingTasks, len(m.OverdueTasks))
	fmt.Fprintf(&b, "- **%d contacts** in your CRM\n\n", m.TotalContacts)
	fmt.Fprintf(&b, "I can help you dig deeper into any area. Try asking about:\n")
	fmt.Fprintf(&b, "- \"Business health check\" for a full overview\n")
	fmt.Fprintf(&b, "- \"Cash flow forecast\" for financial analysis\n")
	fmt.Fprintf(&b, "- \"Job status report\" for project updates\n")
	fmt.Fprintf(&b, "- \"Lead priority list\" for follow-up recommendations\n")
	fmt.Fprintf(&b, "- \"Estimate review\" for pricing insights")
	return b.String()
}

// fmtCurrency renders a whole-dollar amount with thousands separators,
// e.g. 1234567.89 -> $1,234,568.
func fmtCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}

// fmtMargin renders a margin percentage with one decimal place.
func fmtMargin(margin float64) string {
	return fmt.Sprintf("%.1f", margin)
}
