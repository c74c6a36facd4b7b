package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-users-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &models.UserDB{
		ID:        uuid.New(),
		Email:     "john@example.com",
		Name:      "John Doe",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name          string
		reqBody       RegisterRequest
		mockSetup     func(m *MockUserRegisterer)
		expectedCode  int
		expectedError string
		rawBody       bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Email: "john@example.com", Name: "John Doe"},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "John Doe").
					Return(created, nil)
			},
			expectedCode: 201,
		},
		{
			name:    "missing fields",
			reqBody: RegisterRequest{Email: "", Name: "   "},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "   ").
					Return(nil, models.ErrEmailAndNameRequired)
			},
			expectedCode:  400,
			expectedError: "email and name are required",
		},
		{
			name:    "email already exists",
			reqBody: RegisterRequest{Email: "taken@example.com", Name: "Alice"},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "taken@example.com", "Alice").
					Return(nil, models.ErrEmailAlreadyExists)
			},
			expectedCode:  409,
			expectedError: "email already exists",
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Email: "bob@example.com", Name: "Bob"},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "Bob").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp models.UserDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.ID, resp.ID)
				assert.Equal(t, created.Email, resp.Email)
				assert.Equal(t, created.Name, resp.Name)
				assert.Equal(t, "/users/"+created.ID.String(), rr.Header().Get("Location"))
				return
			}

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp["error"])
		})
	}
}
