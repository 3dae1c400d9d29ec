package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestChatMetricsObserve(t *testing.T) {
	m := NewChatMetrics(prometheus.NewRegistry())
	m.ObserveConversationStarted()
	m.ObserveMessage("bot")
	m.ObserveMessage("user")
	m.ObservePersuasion("price")
	m.ObservePersuasion("")
	m.ObserveUpsell()
	m.ObserveLeadSubmitted("ok")
}

func TestChatMetricsNilSafe(t *testing.T) {
	var m *ChatMetrics
	m.ObserveConversationStarted()
	m.ObserveMessage("bot")
	m.ObservePersuasion("price")
	m.ObserveUpsell()
	m.ObserveLeadSubmitted("error")
}
