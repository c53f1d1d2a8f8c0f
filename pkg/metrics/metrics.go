package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MailSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "loginverify", Name: "mail_sends_total", Help: "Verification email attempts by result (sent, skipped, failed)."},
		[]string{"result"},
	)
	Decisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "loginverify", Name: "decisions_total", Help: "Decision link requests by outcome (approved, denied, invalid, error)."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(MailSends)
	reg.MustRegister(Decisions)
}
