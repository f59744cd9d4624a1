package telemetry

// IncTransactionsRegistered increments the business success counter.
// Kinds: "receita", "despesa".
func IncTransactionsRegistered(kind string) {
	transactionsRegisteredTotal.WithLabelValues(kind).Inc()
}

// Increments the business failure counter
// Reasons: "validation", "tag_not_found", "db".
func IncTransactionsFailed(reason string) {
	transactionsFailedTotal.WithLabelValues(reason).Inc()
}

func IncSummariesGenerated() {
	summariesGeneratedTotal.Inc()
}

func IncEventsPublished() {
	eventsPublishedTotal.Inc()
}

// Reasons: "schema", "kafka", "queue".
func IncEventsFailed(reason string) {
	eventsFailedTotal.WithLabelValues(reason).Inc()
}

// Sets the current publisher queue size gauge.
func SetPublisherQueue(n int) {
	publisherQueueCurrent.Set(float64(n))
}

// Increments both the created counter and the current total gauge.
func IncTagsCreated() {
	tagsCreatedTotal.Inc()
	tagsTotalCurrent.Inc()
}

func IncTagsDeleted() {
	tagsDeletedTotal.Inc()
	tagsTotalCurrent.Dec()
}

// Increments the failed-create counter with a bounded reason.
func IncTagsCreateFailed(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	tagsCreateFailedTotal.WithLabelValues(reason).Inc()
}

// Sets the tags total gauge.
func SetTagsTotal(n int) {
	tagsTotalCurrent.Set(float64(n))
}
