package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"
)

func testService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:          server.URL,
		APITimeout:          5 * time.Second,
		LookupRatePerSecond: 1000,
		LookupBurst:         1000,
	}
	return New(api.New(cfg, logger.New("development")), logger.New("development"))
}

func TestPartitionSplitsByStatus(t *testing.T) {
	t.Parallel()

	orders := []api.Order{
		{ID: "1", OrderStatus: "Pending"},
		{ID: "2", OrderStatus: StatusServiceDone},
		{ID: "3", OrderStatus: StatusCancelled},
		{ID: "4", OrderStatus: "Vendor Assigned"},
	}

	history := Partition(orders)

	if len(history.All) != 4 {
		t.Fatalf("expected all orders kept, got %d", len(history.All))
	}
	if len(history.Active) != 2 || history.Active[0].ID != "1" || history.Active[1].ID != "4" {
		t.Fatalf("unexpected active bucket: %+v", history.Active)
	}
	if len(history.Completed) != 1 || history.Completed[0].ID != "2" {
		t.Fatalf("unexpected completed bucket: %+v", history.Completed)
	}
	if len(history.Cancelled) != 1 || history.Cancelled[0].ID != "3" {
		t.Fatalf("unexpected cancelled bucket: %+v", history.Cancelled)
	}
}

func TestPartitionEmptyList(t *testing.T) {
	t.Parallel()

	history := Partition(nil)
	if len(history.Active)+len(history.Completed)+len(history.Cancelled) != 0 {
		t.Fatalf("expected empty buckets, got %+v", history)
	}
}

func TestHistoryRequiresUserID(t *testing.T) {
	t.Parallel()

	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for empty user id")
	}))

	_, err := svc.History(context.Background(), "")
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHistoryFetchesAndPartitions(t *testing.T) {
	t.Parallel()

	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("userId"); got != "u1" {
			t.Errorf("unexpected userId param: %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"1","serviceType":"AC Repair","OrderStatus":"Pending"},
			{"_id":"2","serviceType":"AC Install","OrderStatus":"Service Done"}
		]}`))
	}))

	history, err := svc.History(context.Background(), "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Active) != 1 || len(history.Completed) != 1 {
		t.Fatalf("unexpected partition: %+v", history)
	}
}

func TestApproveBillSendsStatusUpdate(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))

	message, err := svc.ApproveBill(context.Background(), "bill-9")
	if err != nil {
		t.Fatalf("approve bill: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/update-status-bills/bill-9" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if message != "Bill approved successfully! Please Wait Our Vendor Call You Shortly" {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestApproveBillRequiresID(t *testing.T) {
	t.Parallel()

	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for empty bill id")
	}))

	if _, err := svc.ApproveBill(context.Background(), ""); apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
