package leads

import (
	"strings"
	"time"
)

// ChatData is the lead record accumulated by the qualification chat. Fields
// are filled incrementally as the conversation advances and are never cleared
// except by starting a new conversation.
type ChatData struct {
	Service     string `json:"service,omitempty"`
	WebsiteType string `json:"website_type,omitempty"`

	ProductCount   string `json:"product_count,omitempty"`
	PageCount      string `json:"page_count,omitempty"`
	DesignStyle    string `json:"design_style,omitempty"`
	PaymentSystems string `json:"payment_systems,omitempty"`
	AutomationType string `json:"automation_type,omitempty"`
	CurrentWebsite string `json:"current_website,omitempty"`
	AppFunctions   string `json:"app_functions,omitempty"`

	AdditionalInfo string   `json:"additional_info,omitempty"`
	Features       []string `json:"features,omitempty"`

	Timeline string `json:"timeline,omitempty"`
	Budget   string `json:"budget,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	QuestionStep     int  `json:"question_step"`
	DiscountEligible bool `json:"discount_eligible,omitempty"`
	DiscountPercent  int  `json:"discount_percent,omitempty"`
}

// Lead is a persisted lead submission.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Timeline  string    `json:"timeline"`
	Budget    string    `json:"budget"`
	Discount  int       `json:"discount_percent"`
	Details   ChatData  `json:"details"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeadRequest wraps a finished chat record for persistence.
type CreateLeadRequest struct {
	Data   ChatData `json:"data"`
	Source string   `json:"source"`
}

// Validate checks that a record is complete enough to store.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Data.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Data.Email) == "" && strings.TrimSpace(r.Data.Phone) == "" {
		return ErrMissingContact
	}
	return nil
}
