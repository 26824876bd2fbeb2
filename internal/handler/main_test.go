package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ewaste_backend/internal/handler"
	"ewaste_backend/internal/model"
	"ewaste_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const testSecret = "handler-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterUser(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) LoginUser(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) RegisterAdmin(ctx context.Context, req model.RegisterAdminRequest) (*model.Admin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, email, password string) (*model.Admin, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Admin), args.String(1), args.Error(2)
}

type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) SubmitPickupRequest(ctx context.Context, req model.CreatePickupRequest) (*model.PickupRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PickupRequest), args.Error(1)
}

func (m *MockIntakeService) SubmitFacility(ctx context.Context, req model.CreateFacilityRequest) (*model.Facility, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockIntakeService) ListPickupRequests(ctx context.Context) ([]model.PickupRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PickupRequest), args.Error(1)
}

func (m *MockIntakeService) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Facility), args.Error(1)
}

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Estimate(ctx context.Context, items []model.EstimateItem) (int64, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRewardService) SeedRewards(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockDirectoryService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Admin), args.Error(1)
}

func (m *MockDirectoryService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var errStoreDown = errors.New("connection refused")

type testServer struct {
	router    *gin.Engine
	jwt       *utils.JWTUtil
	auth      *MockAuthService
	intake    *MockIntakeService
	rewards   *MockRewardService
	directory *MockDirectoryService
}

func newTestServer(store handler.Pinger) *testServer {
	ts := &testServer{
		jwt:       utils.NewJWTUtil(testSecret, 1),
		auth:      new(MockAuthService),
		intake:    new(MockIntakeService),
		rewards:   new(MockRewardService),
		directory: new(MockDirectoryService),
	}
	ts.router = handler.NewRouter(handler.Dependencies{
		Auth:      ts.auth,
		Intake:    ts.intake,
		Rewards:   ts.rewards,
		Directory: ts.directory,
		JWT:       ts.jwt,
		Store:     store,
	})
	return ts
}

func (ts *testServer) do(method, path, contentType, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) postJSON(path, body string) *httptest.ResponseRecorder {
	return ts.do(http.MethodPost, path, "application/json", body)
}

func (ts *testServer) bearer(userID, role string) string {
	token, err := ts.jwt.GenerateToken(userID, role)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}
