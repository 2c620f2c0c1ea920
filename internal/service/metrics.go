// metrics.go — Prometheus-метрики конвейера обработки документов.
package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// documentsProcessed — количество обработанных документов
	// по виду и результату.
	documentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadstat_documents_processed_total",
			Help: "Количество обработанных документов по виду и результату.",
		},
		[]string{"type", "status"},
	)

	// recordsRecorded — количество записанных записей верхнего уровня
	// по виду документа.
	recordsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadstat_records_recorded_total",
			Help: "Количество записанных записей верхнего уровня по виду документа.",
		},
		[]string{"type"},
	)
)
