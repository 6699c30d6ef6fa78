package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordResourceOperation(t *testing.T) {
	before := testutil.ToFloat64(ResourceOperationsTotal.WithLabelValues("customer", "created"))
	RecordResourceOperation("customer", "created")
	RecordResourceOperation("customer", "created")

	got := testutil.ToFloat64(ResourceOperationsTotal.WithLabelValues("customer", "created"))
	if got-before != 2 {
		t.Errorf("Expected counter to grow by 2, got %v", got-before)
	}
}

func TestRecordRejection(t *testing.T) {
	before := testutil.ToFloat64(ResourceRejectionsTotal.WithLabelValues("product", "conflict"))
	RecordRejection("product", "conflict")

	if got := testutil.ToFloat64(ResourceRejectionsTotal.WithLabelValues("product", "conflict")); got-before != 1 {
		t.Errorf("Expected counter to grow by 1, got %v", got-before)
	}
}

func TestTrackDBOperation(t *testing.T) {
	TrackDBOperation("tblcustomer", "find")(time.Now())

	if n := testutil.CollectAndCount(DBOperationDuration, prefix+"_db_operation_duration_seconds"); n == 0 {
		t.Error("Expected at least one observed series")
	}
}
