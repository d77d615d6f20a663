package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("nourishment"))

	RecordRecommendation("nourishment", 2)

	after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("nourishment"))
	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRecordValidationFailure(t *testing.T) {
	c := ValidationFailuresTotal.WithLabelValues("care_plan", "plantType")
	before := testutil.ToFloat64(c)

	RecordValidationFailure("care_plan", "plantType")
	RecordValidationFailure("care_plan", "plantType")

	if got := testutil.ToFloat64(c); got != before+2 {
		t.Errorf("expected %v, got %v", before+2, got)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("POST", "/api/nourishment", "200")
	before := testutil.ToFloat64(c)

	RecordHTTPRequest("POST", "/api/nourishment", 200, 15*time.Millisecond)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}
