package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsites-digital/leadchat/internal/leads"
)

type capturingSender struct {
	sent []EmailMessage
	err  error
}

func (c *capturingSender) Send(_ context.Context, msg EmailMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func sampleLead() *leads.Lead {
	return &leads.Lead{
		ID:       "lead-1",
		Name:     "Анна",
		Email:    "anna@example.com",
		Phone:    "+79001234567",
		Service:  "Интернет-магазин",
		Timeline: "Сроки гибкие",
		Budget:   "50 000 – 150 000 ₽",
		Discount: 10,
		Details: leads.ChatData{
			WebsiteType:  "e-commerce",
			ProductCount: "около 100 товаров",
			Features:     []string{"подарочная упаковка"},
		},
		Source:    "chat",
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotifyLead(t *testing.T) {
	sender := &capturingSender{}
	svc := NewService(sender, "sales@smartsites.digital", "", nil)

	require.NoError(t, svc.NotifyLead(context.Background(), sampleLead()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "sales@smartsites.digital", msg.To)
	assert.Equal(t, "anna@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Анна")
	assert.Contains(t, msg.Subject, "Интернет-магазин")
	assert.Contains(t, msg.Body, "+79001234567")
	assert.Contains(t, msg.Body, "Discount: 10%")
	assert.Contains(t, msg.Body, "около 100 товаров")
	assert.Contains(t, msg.Body, "подарочная упаковка")
	assert.NotContains(t, msg.Body, "back-office", "no link without a public base URL")
}

func TestNotifyLead_BackOfficeLink(t *testing.T) {
	sender := &capturingSender{}
	svc := NewService(sender, "sales@smartsites.digital", "https://smartsites.digital/", nil)

	require.NoError(t, svc.NotifyLead(context.Background(), sampleLead()))
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Body, "https://smartsites.digital/admin/leads/lead-1")
}

func TestNotifyLead_NoSenderConfigured(t *testing.T) {
	svc := NewService(nil, "", "", nil)
	assert.NoError(t, svc.NotifyLead(context.Background(), sampleLead()))
}

func TestNotifyLead_SendFailure(t *testing.T) {
	sender := &capturingSender{err: errors.New("smtp down")}
	svc := NewService(sender, "sales@smartsites.digital", "", nil)

	err := svc.NotifyLead(context.Background(), sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead-1")
}
