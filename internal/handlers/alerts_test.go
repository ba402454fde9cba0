package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/service"
)

func overdueAlert() alerts.Alert {
	days := 877
	return alerts.Alert{
		ID:          "1-Preventiva",
		MachineID:   "1",
		MachineName: "Ventilador Pulmonar",
		Type:        alerts.Preventive,
		DueDate:     time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC),
		Urgency:     alerts.Overdue,
		DaysOverdue: &days,
	}
}

func TestAlertsHandler_List(t *testing.T) {
	al := &mockAlerts{list: []alerts.Alert{overdueAlert()}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Alerts: al})

	w := do(r, http.MethodGet, "/api/v1/alerts", "", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 alert, got %d", len(out))
	}
	got := out[0]
	want := map[string]any{
		"id":          "1-Preventiva",
		"machineId":   "1",
		"machineName": "Ventilador Pulmonar",
		"type":        "Preventiva",
		"dueDate":     "31/03/2023",
		"urgency":     "Vencida",
		"daysOverdue": float64(877),
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %v", k, got[k], v)
		}
	}
	if _, ok := got["daysRemaining"]; ok {
		t.Fatalf("daysRemaining must be absent for overdue alerts")
	}
}

func TestAlertsHandler_EmptyListIsArray(t *testing.T) {
	al := &mockAlerts{list: []alerts.Alert{}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Alerts: al})

	w := do(r, http.MethodGet, "/api/v1/alerts", "", "valid")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAlertsHandler_FetchFailure(t *testing.T) {
	al := &mockAlerts{err: errors.New("load machines: database is locked")}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Alerts: al})

	w := do(r, http.MethodGet, "/api/v1/alerts", "", "valid")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["error"] != "failed to load alerts" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAlertsHandler_RequiresToken(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Alerts: &mockAlerts{}})
	if w := do(r, http.MethodGet, "/api/v1/alerts", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAlertsHandler_Summary(t *testing.T) {
	al := &mockAlerts{summary: alerts.Summary{Overdue: 2, Urgent: 1, Upcoming: 3, Total: 6}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Alerts: al})

	w := do(r, http.MethodGet, "/api/v1/alerts/summary", "", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out alerts.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != al.summary {
		t.Fatalf("summary = %+v, want %+v", out, al.summary)
	}
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(&service.Service{})

	if w := do(r, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	w := do(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "vitta_http_requests_total") {
		t.Fatalf("metrics status=%d", w.Code)
	}
}
