package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/models"
	"vitta/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseRole     string
	parseErr      error

	// currentRole overrides the stored role; empty means the token's role
	currentRole    string
	currentRoleErr error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.TokenClaims, error) {
	m.lastParseToken = token
	role := m.parseRole
	if role == "" {
		role = models.RoleViewer
	}
	return service.TokenClaims{UserID: m.parseID, Role: role}, m.parseErr
}
func (m *mockAuth) CurrentRole(userID int) (string, error) {
	if m.currentRoleErr != nil {
		return "", m.currentRoleErr
	}
	if m.currentRole != "" {
		return m.currentRole, nil
	}
	if m.parseRole == "" {
		return models.RoleViewer, nil
	}
	return m.parseRole, nil
}
func (m *mockAuth) EnsureAdmin(username, password string) (bool, error) {
	return false, nil
}

type mockAlerts struct {
	list    []alerts.Alert
	summary alerts.Summary
	err     error
	calls   int
}

func (m *mockAlerts) List(ctx context.Context) ([]alerts.Alert, error) {
	m.calls++
	return m.list, m.err
}
func (m *mockAlerts) Summary(ctx context.Context) (alerts.Summary, error) {
	return m.summary, m.err
}

type mockMachines struct {
	machine models.Machine
	list    []models.Machine
	err     error
	lastID  int
	lastIn  service.MachineInput
	created int
	updated int
	deleted int
}

func (m *mockMachines) Create(ctx context.Context, in service.MachineInput) (models.Machine, error) {
	m.created++
	m.lastIn = in
	return m.machine, m.err
}
func (m *mockMachines) Get(ctx context.Context, id int) (models.Machine, error) {
	m.lastID = id
	return m.machine, m.err
}
func (m *mockMachines) List(ctx context.Context) ([]models.Machine, error) {
	return m.list, m.err
}
func (m *mockMachines) Update(ctx context.Context, id int, in service.MachineInput) (models.Machine, error) {
	m.updated++
	m.lastID = id
	m.lastIn = in
	return m.machine, m.err
}
func (m *mockMachines) Delete(ctx context.Context, id int) error {
	m.deleted++
	m.lastID = id
	return m.err
}

type mockMaintenance struct {
	record  models.MaintenanceRecord
	list    []models.MaintenanceRecord
	err     error
	lastID  int
	lastIn  service.MaintenanceInput
	created int
	deleted int
}

func (m *mockMaintenance) Create(ctx context.Context, in service.MaintenanceInput) (models.MaintenanceRecord, error) {
	m.created++
	m.lastIn = in
	return m.record, m.err
}
func (m *mockMaintenance) Get(ctx context.Context, id int) (models.MaintenanceRecord, error) {
	m.lastID = id
	return m.record, m.err
}
func (m *mockMaintenance) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return m.list, m.err
}
func (m *mockMaintenance) ListByMachine(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	m.lastID = machineID
	return m.list, m.err
}
func (m *mockMaintenance) Update(ctx context.Context, id int, in service.MaintenanceInput) (models.MaintenanceRecord, error) {
	m.lastID = id
	m.lastIn = in
	return m.record, m.err
}
func (m *mockMaintenance) Delete(ctx context.Context, id int) error {
	m.deleted++
	m.lastID = id
	return m.err
}

type mockUsers struct {
	list     []models.User
	err      error
	lastID   int
	lastRole string
}

func (m *mockUsers) ListUsers() ([]models.User, error) {
	return m.list, m.err
}
func (m *mockUsers) SetRole(ctx context.Context, id int, role string) error {
	m.lastID = id
	m.lastRole = role
	return m.err
}
func (m *mockUsers) DeleteUser(ctx context.Context, id int) error {
	m.lastID = id
	return m.err
}

type mockActivityLog struct {
	resp     []models.Activity
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockActivityLog) List(ctx context.Context, f service.LogFilter) ([]models.Activity, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// do performs a request against r with an optional JSON body and bearer token.
func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
