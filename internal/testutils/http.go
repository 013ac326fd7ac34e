package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

// SetupAuthenticatedHTTPTest initializes Gin with every request authenticated as userID,
// mirroring what the auth middleware stores on the context
func SetupAuthenticatedHTTPTest(userID uuid.UUID) *HTTPTestSuite {
	suite := SetupHTTPTest()
	suite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", "test-user")
		c.Next()
	})
	return suite
}

// MakeRequest encodes body as JSON, when given, and serves the request
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}
	return suite.serve(method, url, reqBody, body != nil)
}

// MakeRawRequest serves a request whose JSON body is sent exactly as given
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.serve(method, url, strings.NewReader(body), true)
}

func (suite *HTTPTestSuite) serve(method, url string, body io.Reader, isJSON bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// errorBody is the error envelope every handler writes
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// AssertErrorCode asserts the status and the machine-readable code of an error response
func AssertErrorCode(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, expectedCode, body.Code)
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// ErrorCase is one request expected to fail with a given status and code.
// Setup registers whatever mock behaviour produces the failure.
type ErrorCase struct {
	Name           string
	Method         string
	URL            string
	Body           interface{}
	Setup          func()
	ExpectedStatus int
	ExpectedCode   string
	// ExpectedMessage, when set, must appear in the error text
	ExpectedMessage string
}

// RunErrorCases serves each case and checks the error envelope it produces
func (suite *HTTPTestSuite) RunErrorCases(t *testing.T, cases []ErrorCase) {
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			recorder := suite.MakeRequest(tc.Method, tc.URL, tc.Body)

			AssertErrorCode(t, recorder, tc.ExpectedStatus, tc.ExpectedCode)
			if tc.ExpectedMessage != "" {
				AssertErrorResponse(t, recorder, tc.ExpectedStatus, tc.ExpectedMessage)
			}
		})
	}
}
