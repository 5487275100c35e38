package metrics

import (
	"context"
	"time"
)

// NopCollector — no-op реализация Collector для отключённых метрик.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordRequest — no-op.
func (c *NopCollector) RecordRequest(_, _ string, _ int, _ time.Duration, _ bool) {}

// RecordCommand — no-op.
func (c *NopCollector) RecordCommand(_ string, _ time.Duration, _ bool) {}

// Push — no-op, всегда возвращает nil.
func (c *NopCollector) Push(_ context.Context) error {
	return nil
}
