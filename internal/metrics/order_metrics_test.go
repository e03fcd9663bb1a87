package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetrics(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newOrderMetricsWithRegisterer should not return nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersConfirmed == nil {
		t.Error("ordersConfirmed counter should not be nil")
	}
	if metrics.ordersShipped == nil {
		t.Error("ordersShipped counter should not be nil")
	}
	if metrics.ordersDelivered == nil {
		t.Error("ordersDelivered counter should not be nil")
	}
	if metrics.ordersCancelled == nil {
		t.Error("ordersCancelled counter should not be nil")
	}
	if metrics.ruleViolations == nil {
		t.Error("ruleViolations counter vec should not be nil")
	}
	if metrics.operationDuration == nil {
		t.Error("operationDuration histogram vec should not be nil")
	}
}

// Повторная регистрация в одном registry должна переиспользовать коллекторы.
func TestNewOrderMetrics_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(reg)
	second := newOrderMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	if got := counterValue(t, first.ordersCreated); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestRecordStatusChange(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	metrics.RecordStatusChange("confirmed")
	metrics.RecordStatusChange("shipped")
	metrics.RecordStatusChange("delivered")
	metrics.RecordStatusChange("cancelled")
	metrics.RecordStatusChange("pending") // неизвестный переход игнорируется

	cases := []struct {
		name    string
		counter prometheus.Counter
	}{
		{"confirmed", metrics.ordersConfirmed},
		{"shipped", metrics.ordersShipped},
		{"delivered", metrics.ordersDelivered},
		{"cancelled", metrics.ordersCancelled},
	}
	for _, tc := range cases {
		if got := counterValue(t, tc.counter); got != 1 {
			t.Fatalf("expected %s counter 1, got %v", tc.name, got)
		}
	}
}

func TestRecordRuleViolation(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	metrics.RecordRuleViolation("business_rule")
	metrics.RecordRuleViolation("business_rule")
	metrics.RecordRuleViolation("validation")

	if got := counterValue(t, metrics.ruleViolations.WithLabelValues("business_rule")); got != 2 {
		t.Fatalf("expected business_rule count 2, got %v", got)
	}
	if got := counterValue(t, metrics.ruleViolations.WithLabelValues("validation")); got != 1 {
		t.Fatalf("expected validation count 1, got %v", got)
	}
}

func TestRecordOperationDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	metrics.RecordOperationDuration("confirm", 25*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "orderdesk_operation_duration_seconds" {
			continue
		}
		if len(family.GetMetric()) != 1 {
			t.Fatalf("expected 1 labelled series, got %d", len(family.GetMetric()))
		}
		if family.GetMetric()[0].GetHistogram().GetSampleCount() != 1 {
			t.Fatal("expected 1 observation")
		}
		return
	}
	t.Fatal("operation duration metric not found")
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("write metric failed: %v", err)
	}
	return m.GetCounter().GetValue()
}
