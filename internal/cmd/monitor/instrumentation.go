package monitor

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/prometheus/client_golang/prometheus"
)

func newRequestMetrics(namespace, subsystem string, labels prometheus.Labels) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace:   namespace,
		Subsystem:   subsystem,
		ConstLabels: labels,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			return request.Method, requestPath(request.URL.Path), strconv.Itoa(code)
		},
	})
}

// requestPath replaces the appliance ID in the path, so each endpoint gets one set of metrics.
func requestPath(path string) string {
	const appliancePath = "/appliances/"
	before, after, found := strings.Cut(path, appliancePath)
	if !found {
		if path == "" {
			path = "/"
		}
		return path
	}
	if _, rest, ok := strings.Cut(after, "/"); ok {
		return before + appliancePath + "{id}/" + rest
	}
	return before + appliancePath + "{id}"
}

func instrumentedRoundTripper(rt http.RoundTripper, metrics metrics.RequestMetrics) http.RoundTripper {
	return roundtripper.New(
		roundtripper.WithRequestMetrics(metrics),
		roundtripper.WithRoundTripper(rt),
	)
}
