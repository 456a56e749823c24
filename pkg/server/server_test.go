package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-report/pkg/models/api"
	"github.com/de-tools/fleet-report/pkg/models/domain"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Devices(ctx context.Context) ([]domain.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Device), args.Error(1)
}

func (m *mockReportService) Sections() []*domain.SectionDefinition {
	args := m.Called()
	return args.Get(0).([]*domain.SectionDefinition)
}

func (m *mockReportService) DeviceReport(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	svc := new(mockReportService)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    Dependencies{Report: svc},
	})
	testServer := httptest.NewServer(webAPI.Router())
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "ListDevices",
			path: "/api/v1/devices",
			setupMocks: func() {
				svc.On("Devices", mock.Anything).
					Return([]domain.Device{{Name: "bigip-fra-01"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected:       []api.Device{{Name: "bigip-fra-01"}},
			parseResponse:  unmarshalResponse[[]api.Device](),
		},
		{
			name: "ListSections",
			path: "/api/v1/sections",
			setupMocks: func() {
				svc.On("Sections").Return([]*domain.SectionDefinition{
					{ID: "pools", Title: "Pools", Kind: domain.DataSection, Order: 40, Enabled: true},
				}).Once()
			},
			expectedStatus: http.StatusOK,
			expected: []api.Section{
				{ID: "pools", Title: "Pools", Kind: "data", Order: 40, Enabled: true},
			},
			parseResponse: unmarshalResponse[[]api.Section](),
		},
		{
			name: "GetDeviceReport",
			path: "/api/v1/devices/bigip-fra-01/report",
			setupMocks: func() {
				svc.On("DeviceReport", mock.Anything, "bigip-fra-01").
					Return("<!DOCTYPE html><html></html>", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected:       "<!DOCTYPE html><html></html>",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "GetDeviceReport_Failure",
			path: "/api/v1/devices/unreachable/report",
			setupMocks: func() {
				svc.On("DeviceReport", mock.Anything, "unreachable").
					Return("", fmt.Errorf("connection refused")).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expected:       "failed to render report\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}

	svc.AssertExpectations(t)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
