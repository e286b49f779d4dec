package app

import (
	"net/http"
	"net/http/httptest"
	"signup/internal/app/controllers"
	"signup/internal/app/deps"
	"signup/internal/config"
	"signup/internal/core/domain/logging"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	emailvalidator "signup/internal/implementations/email_validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger *logging.FakeLogger
	Deps   *deps.Deps
	Router http.Handler
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Deps = &deps.Deps{
		Config: &config.Config{
			Port:            9090,
			AllowedOrigins:  []string{"*"},
			MaxBodyBytes:    65536,
			SignUpRateLimit: 10,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
		},
		Logger:         suite.Logger,
		Now:            func() time.Time { return time.Now().UTC() },
		EmailValidator: emailvalidator.NewOzzo(512),
	}
	suite.Router = NewRouter(suite.Deps, controllers.InitControllers(suite.Deps))
}

func TestApp(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) signUp(body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	suite.Router.ServeHTTP(rw, r)
	return rw
}

func (suite *testSuite) TestSignUpSuccess() {
	rw := suite.signUp(`{
		"name": "any_name",
		"email": "any_email@mail.com",
		"password": "any_password",
		"passwordConfirmation": "any_password"
	}`)

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.JSONEq(`{"message": "sign up request accepted"}`, rw.Body.String())
	assert.NotEmpty(rw.Header().Get("X-Request-ID"))
}

func (suite *testSuite) TestSignUpMissingParam() {
	rw := suite.signUp(`{"email": "a@b.com", "password": "p", "passwordConfirmation": "p"}`)

	assert := suite.Require()
	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.JSONEq(`{"kind": "MissingParamError", "param": "name", "error": "Missing param: name"}`, rw.Body.String())
}

func (suite *testSuite) TestSignUpInvalidEmail() {
	rw := suite.signUp(`{
		"name": "any_name",
		"email": "invalid_email",
		"password": "any_password",
		"passwordConfirmation": "any_password"
	}`)

	assert := suite.Require()
	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.JSONEq(`{"kind": "InvalidParamError", "param": "email", "error": "Invalid param: email"}`, rw.Body.String())
}

func (suite *testSuite) TestRequestIDReachesLogs() {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{}`))
	r.Header.Set("X-Request-ID", "req-42")
	suite.Router.ServeHTTP(rw, r)

	assert := suite.Require()
	assert.Equal("req-42", rw.Header().Get("X-Request-ID"))
	assert.NotEmpty(suite.Logger.Logged)
	for _, record := range suite.Logger.Logged {
		assert.Equal("req-42", record.RequestID)
	}
}

func (suite *testSuite) TestUnknownMethod() {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/signup", nil)
	suite.Router.ServeHTTP(rw, r)

	suite.Require().Equal(http.StatusMethodNotAllowed, rw.Code)
}

func (suite *testSuite) TestRateLimitKeyIgnoresProxyHeadersByDefault() {
	limiter := ratelimiter.NewFakeRateLimiter(false)
	suite.Deps.RateLimiter = limiter
	suite.Router = NewRouter(suite.Deps, controllers.InitControllers(suite.Deps))

	for _, forwardedFor := range []string{"203.0.113.7", "203.0.113.8"} {
		rw := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{}`))
		r.RemoteAddr = "198.51.100.1:4242"
		r.Header.Set("X-Forwarded-For", forwardedFor)
		suite.Router.ServeHTTP(rw, r)

		suite.Require().Equal(http.StatusTooManyRequests, rw.Code)
	}

	suite.Require().Equal([]string{
		SIGN_UP_RATE_LIMIT_KEY + "::198.51.100.1",
		SIGN_UP_RATE_LIMIT_KEY + "::198.51.100.1",
	}, limiter.Keys)
}

func (suite *testSuite) TestRateLimited() {
	limiter := ratelimiter.NewFakeRateLimiter(false)
	suite.Deps.RateLimiter = limiter
	suite.Deps.Config.TrustProxyHeaders = true
	suite.Router = NewRouter(suite.Deps, controllers.InitControllers(suite.Deps))

	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{}`))
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	suite.Router.ServeHTTP(rw, r)

	assert := suite.Require()
	assert.Equal(http.StatusTooManyRequests, rw.Code)
	assert.Equal([]string{SIGN_UP_RATE_LIMIT_KEY + "::203.0.113.7"}, limiter.Keys)
}

func (suite *testSuite) TestInitHttpServer() {
	server := InitHttpServer(suite.Deps, controllers.InitControllers(suite.Deps))

	assert := suite.Require()
	assert.Equal("0.0.0.0:9090", server.Addr)
	assert.Equal(time.Second, server.ReadTimeout)
	assert.NotNil(server.Handler)
}
