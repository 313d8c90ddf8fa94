package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portssvc "github.com/loansim/loan_simulation_api/internal/core/ports/services"
	"github.com/loansim/loan_simulation_api/internal/dto"
	"github.com/loansim/loan_simulation_api/internal/handlers"
	"github.com/loansim/loan_simulation_api/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SimulationService ---
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) CreateSimulation(ctx context.Context, req dto.SimulationRequest) (*domain.SimulationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) UpdateSimulation(ctx context.Context, id int64, req dto.SimulationRequest) (*domain.SimulationResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) DeleteSimulation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSimulationService) GetSimulationByID(ctx context.Context, id int64) (*domain.SimulationResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) GetCachedSimulation(id int64) (*domain.SimulationResult, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Simulation), args.Error(1)
}

func (m *MockSimulationService) ListSimulationsPaginated(ctx context.Context, filter domain.SimulationFilter, params pagination.Params) (pagination.PagedList, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).(pagination.PagedList), args.Error(1)
}

func (m *MockSimulationService) GetStatistics(ctx context.Context) (*domain.SimulationStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationStatistics), args.Error(1)
}

func (m *MockSimulationService) CheckHealth(ctx context.Context) dto.HealthResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.HealthResponse)
}

// Ensure mock implements the interface
var _ portssvc.SimulationSvcFacade = (*MockSimulationService)(nil)

// --- Test Suite ---
type SimulationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSimulationService
}

func (suite *SimulationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = dto.RegisterCustomValidations(v)
	}

	suite.mockService = new(MockSimulationService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSimulationRoutes(v1, suite.mockService)
}

func (suite *SimulationHandlerTestSuite) performRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleResult(id int64) *domain.SimulationResult {
	return &domain.SimulationResult{
		Simulation: domain.Simulation{
			ID:           id,
			ProductCode:  1,
			Amount:       decimal.RequireFromString("10000.00"),
			TermMonths:   24,
			InterestRate: decimal.RequireFromString("0.0179"),
			CreatedAt:    time.Now(),
		},
		ProductName: "Produto 1",
		Schedules: []domain.Schedule{
			{Type: domain.ScheduleSAC, Installments: []domain.Installment{{Number: 1, Amortization: decimal.RequireFromString("416.67"), Interest: decimal.RequireFromString("179.00"), Payment: decimal.RequireFromString("595.67")}}},
			{Type: domain.SchedulePrice, Installments: []domain.Installment{{Number: 1, Amortization: decimal.RequireFromString("333.47"), Interest: decimal.RequireFromString("179.00"), Payment: decimal.RequireFromString("512.47")}}},
		},
	}
}

// --- Test Cases ---

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_Success() {
	body := []byte(`{"desiredAmount": 10000.00, "term": 24}`)

	suite.mockService.On("CreateSimulation", mock.Anything, mock.MatchedBy(func(req dto.SimulationRequest) bool {
		return req.Term == 24 && req.DesiredAmount.Equal(decimal.RequireFromString("10000.00"))
	})).Return(sampleResult(42), nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/simulations", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SimulationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.SimulationID)
	suite.Equal("Produto 1", resp.ProductDescription)
	suite.Len(resp.Schedules, 2)
	suite.Equal("SAC", resp.Schedules[0].Type)
	suite.Equal("PRICE", resp.Schedules[1].Type)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_AmountOutOfBounds() {
	// below the 100 lower bound; rejected by binding, service never called
	body := []byte(`{"desiredAmount": 50.00, "term": 24}`)

	w := suite.performRequest(http.MethodPost, "/api/v1/simulations", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateSimulation", mock.Anything, mock.Anything)
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_TermTooLong() {
	body := []byte(`{"desiredAmount": 10000.00, "term": 241}`)

	w := suite.performRequest(http.MethodPost, "/api/v1/simulations", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateSimulation", mock.Anything, mock.Anything)
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_NoEligibleProduct() {
	body := []byte(`{"desiredAmount": 5000.00, "term": 200}`)

	suite.mockService.On("CreateSimulation", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNoEligibleProduct).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/simulations", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestGetSimulationByID_NotFound() {
	suite.mockService.On("GetSimulationByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/simulations/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestGetSimulationByID_InvalidID() {
	w := suite.performRequest(http.MethodGet, "/api/v1/simulations/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetSimulationByID", mock.Anything, mock.Anything)
}

func (suite *SimulationHandlerTestSuite) TestListSimulations_EmitsPaginationHeader() {
	page := pagination.PagedList{
		Items: []domain.Simulation{
			{ID: 2, Amount: decimal.RequireFromString("2000.00"), TermMonths: 12},
			{ID: 1, Amount: decimal.RequireFromString("1000.00"), TermMonths: 12},
		},
		TotalCount:  12,
		TotalPages:  6,
		PageSize:    2,
		CurrentPage: 2,
	}

	suite.mockService.On("ListSimulationsPaginated", mock.Anything,
		mock.AnythingOfType("domain.SimulationFilter"),
		pagination.Params{Page: 2, PageSize: 2},
	).Return(page, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/simulations?page=2&pageSize=2", nil)

	suite.Equal(http.StatusOK, w.Code)

	var metadata dto.PaginationMetadata
	suite.Require().NoError(json.Unmarshal([]byte(w.Header().Get("X-Pagination")), &metadata))
	suite.Equal(12, metadata.TotalCount)
	suite.Equal(6, metadata.TotalPages)
	suite.Equal(2, metadata.CurrentPage)
	suite.True(metadata.HasNext)
	suite.True(metadata.HasPrevious)

	var items []dto.SimulationSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	suite.Len(items, 2)
	suite.Equal(int64(2), items[0].SimulationID)
}

func (suite *SimulationHandlerTestSuite) TestListSimulations_EmptyPage() {
	suite.mockService.On("ListSimulationsPaginated", mock.Anything, mock.Anything, mock.Anything).
		Return(pagination.PagedList{}, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/simulations?page=99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestGetStatistics() {
	stats := &domain.SimulationStatistics{
		TotalSimulations: 3,
		AverageAmount:    decimal.RequireFromString("4000.00"),
		AverageTerm:      18,
		AverageRate:      decimal.RequireFromString("0.017900"),
		LastUpdated:      time.Now(),
		PerProduct: []domain.ProductStatistics{
			{ProductCode: 1, ProductName: "Produto 1", Count: 3, AverageAmount: decimal.RequireFromString("4000.00"), AverageTerm: 18, AverageRate: decimal.RequireFromString("0.017900")},
		},
	}

	suite.mockService.On("GetStatistics", mock.Anything).Return(stats, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/simulations/stats", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.TotalSimulations)
	suite.Require().Len(resp.PerProduct, 1)
	suite.Equal("Produto 1", resp.PerProduct[0].ProductDescription)
}

func (suite *SimulationHandlerTestSuite) TestDeleteSimulation_NoContent() {
	suite.mockService.On("DeleteSimulation", mock.Anything, int64(9)).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/simulations/9", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestSimulationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationHandlerTestSuite))
}
