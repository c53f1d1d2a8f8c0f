package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	MailSends.WithLabelValues("sent").Inc()
	Decisions.WithLabelValues("approved").Inc()

	n, err := testutil.GatherAndCount(reg, "loginverify_mail_sends_total", "loginverify_decisions_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// registering twice on the same registry must panic (MustRegister)
	require.Panics(t, func() { RegisterCollectors(reg) })
}
