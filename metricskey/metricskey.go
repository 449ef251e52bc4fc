package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfKeyGeneration is perf metric
	PerfKeyGeneration = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_keygen",
		Help:         "perf_keygen provides the sample metrics of key generation",
		RequiredTags: []string{"algo", "size"},
	}

	// PerfCSRSign is perf metric
	PerfCSRSign = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_csr_sign",
		Help:         "perf_csr_sign provides the sample metrics of signing certificate requests",
		RequiredTags: []string{"digest"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfKeyGeneration,
	&PerfCSRSign,
}
