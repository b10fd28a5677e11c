package domain

// FilterAll is the categorical filter value that matches every record.
const FilterAll = "All"

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectCancelled  ProjectStatus = "Cancelled"
	ProjectFinished   ProjectStatus = "Finished"
)

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskTesting    TaskStatus = "Testing"
	TaskFeedback   TaskStatus = "Awaiting Feedback"
	TaskComplete   TaskStatus = "Complete"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketAnswered   TicketStatus = "Answered"
	TicketOnHold     TicketStatus = "On Hold"
	TicketClosed     TicketStatus = "Closed"
)

type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "Draft"
	EstimateSent     EstimateStatus = "Sent"
	EstimateExpired  EstimateStatus = "Expired"
	EstimateDeclined EstimateStatus = "Declined"
	EstimateAccepted EstimateStatus = "Accepted"
)

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "Draft"
	ProposalOpen     ProposalStatus = "Open"
	ProposalRevised  ProposalStatus = "Revised"
	ProposalDeclined ProposalStatus = "Declined"
	ProposalAccepted ProposalStatus = "Accepted"
)

type InvoiceStatus string

const (
	InvoiceUnpaid        InvoiceStatus = "Unpaid"
	InvoicePaid          InvoiceStatus = "Paid"
	InvoicePartiallyPaid InvoiceStatus = "Partiallypaid"
	InvoiceOverdue       InvoiceStatus = "Overdue"
	InvoiceCancelled     InvoiceStatus = "Cancelled"
)

// PayableInvoiceStatuses lists the statuses an invoice may hold and still
// accept a payment against its outstanding balance.
var PayableInvoiceStatuses = []InvoiceStatus{
	InvoiceUnpaid, InvoicePartiallyPaid, InvoiceOverdue,
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// ProjectStatuses et al. are the fixed enumerations offered by the
// categorical filter on each list page, in display order.
var (
	ProjectStatuses  = []string{"Not Started", "In Progress", "On Hold", "Cancelled", "Finished"}
	TaskStatuses     = []string{"Not Started", "In Progress", "Testing", "Awaiting Feedback", "Complete"}
	TicketStatuses   = []string{"Open", "In Progress", "Answered", "On Hold", "Closed"}
	EstimateStatuses = []string{"Draft", "Sent", "Expired", "Declined", "Accepted"}
	ProposalStatuses = []string{"Draft", "Open", "Revised", "Declined", "Accepted"}
	InvoiceStatuses  = []string{"Unpaid", "Paid", "Partiallypaid", "Overdue", "Cancelled"}
	StaffDepartments = []string{"Sales", "Support", "Development", "Marketing", "Accounting"}
	ArticleGroups    = []string{"General", "Billing", "Technical", "Getting Started"}
)
