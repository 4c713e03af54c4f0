package loadgen

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsRegistered  = false
	batchesSentSuccess = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loadgen_batches_sent_success_total",
			Help: "Total de lotes aceitos pelo endpoint de ingestão (status 2xx)",
		},
	)
	batchesRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loadgen_batches_rejected_total",
			Help: "Total de lotes respondidos com status fora de 2xx",
		},
	)
	batchesSentFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loadgen_batches_sent_failed_total",
			Help: "Total de lotes que falharam no transporte HTTP",
		},
	)
	linesGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loadgen_lines_generated_total",
			Help: "Total de linhas de protocolo geradas",
		},
	)
	batchBuildTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loadgen_batch_build_duration_seconds",
			Help:    "Duração da montagem de um lote",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)
	sendCycleTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loadgen_send_cycle_duration_seconds",
			Help:    "Duração do ciclo de montagem e envio de um lote",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

func registerMetrics() {
	if metricsRegistered {
		return
	}
	metricsRegistered = true

	prometheus.MustRegister(
		batchesSentSuccess,
		batchesRejected,
		batchesSentFailed,
		linesGenerated,
		batchBuildTime,
		sendCycleTime,
	)
}
