package deliverability

import "github.com/prometheus/client_golang/prometheus/testutil"

// CheckCount reads one emailguess_checks_total series.
func (m *Metrics) CheckCount(checker, result string) float64 {
	return testutil.ToFloat64(m.checks.WithLabelValues(checker, result))
}
