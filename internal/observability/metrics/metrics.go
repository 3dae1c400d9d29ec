package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters for the conversation and lead pipeline.
type ChatMetrics struct {
	conversationsTotal prometheus.Counter
	messagesTotal      *prometheus.CounterVec
	persuasionTotal    *prometheus.CounterVec
	upsellTotal        prometheus.Counter
	leadsTotal         *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		conversationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "conversations_started_total",
			Help:      "Total conversations started",
		}),
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total transcript messages by sender",
		}, []string{"sender"}),
		persuasionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "persuasion_total",
			Help:      "Total persuasion interjections by objection type",
		}, []string{"objection"}),
		upsellTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "upsell_total",
			Help:      "Total upsell interjections",
		}),
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "leads",
			Name:      "submitted_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.conversationsTotal, m.messagesTotal, m.persuasionTotal, m.upsellTotal, m.leadsTotal)
	return m
}

func (m *ChatMetrics) ObserveConversationStarted() {
	if m == nil {
		return
	}
	m.conversationsTotal.Inc()
}

func (m *ChatMetrics) ObserveMessage(sender string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(sender).Inc()
}

func (m *ChatMetrics) ObservePersuasion(objection string) {
	if m == nil {
		return
	}
	if objection == "" {
		objection = "none"
	}
	m.persuasionTotal.WithLabelValues(objection).Inc()
}

func (m *ChatMetrics) ObserveUpsell() {
	if m == nil {
		return
	}
	m.upsellTotal.Inc()
}

func (m *ChatMetrics) ObserveLeadSubmitted(status string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(status).Inc()
}
