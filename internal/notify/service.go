package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

// Service emails a summary of every new lead to the studio inbox.
type Service struct {
	email      EmailSender
	inboxEmail string
	baseURL    string
	logger     *logging.Logger
}

// NewService creates a lead notification service. A nil sender disables
// notifications; publicBaseURL, when set, is used to link each email to the
// lead's back-office page.
func NewService(email EmailSender, inboxEmail, publicBaseURL string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:      email,
		inboxEmail: inboxEmail,
		baseURL:    strings.TrimSuffix(strings.TrimSpace(publicBaseURL), "/"),
		logger:     logger,
	}
}

// NotifyLead sends the lead summary email.
func (s *Service) NotifyLead(ctx context.Context, lead *leads.Lead) error {
	if s.email == nil || s.inboxEmail == "" {
		s.logger.Debug("notify: email not configured, skipping lead notification", "lead_id", lead.ID)
		return nil
	}

	body := formatLeadSummary(lead)
	if s.baseURL != "" {
		body += fmt.Sprintf("\nOpen in back-office: %s/admin/leads/%s\n", s.baseURL, lead.ID)
	}

	msg := EmailMessage{
		To:      s.inboxEmail,
		ToName:  "Sales",
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Service),
		Body:    body,
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: lead %s: %w", lead.ID, err)
	}

	s.logger.Info("lead notification sent", "lead_id", lead.ID, "to", s.inboxEmail)
	return nil
}

func formatLeadSummary(lead *leads.Lead) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	if lead.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	}
	if lead.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	}
	fmt.Fprintf(&b, "Service: %s\n", lead.Service)
	if lead.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", lead.Timeline)
	}
	if lead.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", lead.Budget)
	}
	if lead.Discount > 0 {
		fmt.Fprintf(&b, "Discount: %d%%\n", lead.Discount)
	}
	fmt.Fprintf(&b, "Source: %s\n", lead.Source)

	details := formatDetails(&lead.Details)
	if details != "" {
		b.WriteString("\nProject details:\n")
		b.WriteString(details)
	}

	fmt.Fprintf(&b, "\nSubmitted: %s\n", lead.CreatedAt.Format("2006-01-02 15:04 MST"))
	return b.String()
}

func formatDetails(d *leads.ChatData) string {
	var b strings.Builder

	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %s: %s\n", label, value)
		}
	}
	line("Website type", d.WebsiteType)
	line("Product count", d.ProductCount)
	line("Page count", d.PageCount)
	line("Design style", d.DesignStyle)
	line("Payment systems", d.PaymentSystems)
	line("Automation", d.AutomationType)
	line("Current website", d.CurrentWebsite)
	line("App functions", d.AppFunctions)
	line("Additional info", d.AdditionalInfo)
	if len(d.Features) > 0 {
		fmt.Fprintf(&b, "  Features: %s\n", strings.Join(d.Features, "; "))
	}
	return b.String()
}
