package member_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uknowme/member-server/internal/member"
	"github.com/uknowme/member-server/internal/model"
	sharedError "github.com/uknowme/member-server/internal/shared/error"
	"github.com/uknowme/member-server/internal/shared/middleware"
	"github.com/uknowme/member-server/internal/shared/testutil"
	"github.com/uknowme/member-server/internal/shared/token"
)

type apiEnv struct {
	*serviceEnv
	router       *gin.Engine
	tokenManager token.Manager
}

// setupAPI wires the member routes the same way the server does.
func setupAPI(t *testing.T, authorizer member.DirectoryAuthorizer) *apiEnv {
	t.Helper()

	env := setupService(t, authorizer)
	tokenManager := testutil.NewTestTokenManager()
	memberHandler := member.NewMemberHandler(env.service)

	router := testutil.SetupTestRouter()
	members := router.Group("/api/v1/members")
	{
		members.POST("", memberHandler.Join)
		members.GET("/exists/id/:id", memberHandler.ExistsByID)
		members.GET("/exists/nickname/:nickname", memberHandler.ExistsByNickname)
		members.GET("/exists/tel/:tel", memberHandler.ExistsByTel)
		members.POST("/find-id", memberHandler.FindID)

		directory := members.Group("", middleware.OptionalJWT(tokenManager))
		directory.GET("", memberHandler.GetMemberList)
		directory.GET("/:seq", memberHandler.GetMemberBySeq)

		me := members.Group("", middleware.JWT(tokenManager))
		me.PUT("", memberHandler.Update)
		me.GET("/me", memberHandler.GetMemberInfo)
		me.DELETE("/me", memberHandler.Delete)
		me.POST("/me/password", memberHandler.ValidatePassword)
	}

	return &apiEnv{serviceEnv: env, router: router, tokenManager: tokenManager}
}

func (e *apiEnv) join(t *testing.T, request *member.JoinRequest) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, e.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body:   request,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func (e *apiEnv) tokenFor(t *testing.T, id string) string {
	t.Helper()
	return testutil.AccessToken(t, e.tokenManager, id, string(model.RoleUser))
}

func TestJoinAPI_Success(t *testing.T) {
	// Given: Setup test environment
	env := setupAPI(t, nil)

	// When: Execute join request
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	// Then: Member is stored with a hashed password
	stored := loadMember(t, env.db, "hong01")
	assert.NotEqual(t, "password123", stored.Password)
}

func TestJoinAPI_Duplicate(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	testCases := []struct {
		name     string
		request  *member.JoinRequest
		wantCode string
	}{
		{name: "Duplicate id", request: joinRequest("hong01", "other", "010-9999-0000"), wantCode: "MEMBER-003"},
		{name: "Duplicate nickname", request: joinRequest("kim01", "gildong", "010-9999-0000"), wantCode: "MEMBER-004"},
		{name: "Duplicate tel", request: joinRequest("kim01", "other", "010-1234-5678"), wantCode: "MEMBER-005"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body:   tc.request,
			})

			assert.Equal(t, http.StatusConflict, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.wantCode, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}

	assert.Equal(t, int64(1), countMembers(t, env.db))
}

func TestJoinAPI_ValidationError(t *testing.T) {
	env := setupAPI(t, nil)

	testCases := []struct {
		name   string
		mutate func(*member.JoinRequest)
	}{
		{name: "Missing id", mutate: func(r *member.JoinRequest) { r.ID = "" }},
		{name: "Invalid id", mutate: func(r *member.JoinRequest) { r.ID = "1abc" }},
		{name: "Password too short", mutate: func(r *member.JoinRequest) { r.Password = "short" }},
		{name: "Invalid gender", mutate: func(r *member.JoinRequest) { r.Gender = "OTHER" }},
		{name: "Invalid birth", mutate: func(r *member.JoinRequest) { r.Birth = "19900115" }},
		{name: "Invalid tel", mutate: func(r *member.JoinRequest) { r.Tel = "555-0001" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := joinRequest("hong01", "gildong", "010-1234-5678")
			tc.mutate(request)

			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body:   request,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}

	assert.Equal(t, int64(0), countMembers(t, env.db))
}

func TestExistsAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	testCases := []struct {
		url  string
		want bool
	}{
		{url: "/api/v1/members/exists/id/hong01", want: true},
		{url: "/api/v1/members/exists/id/kim01", want: false},
		{url: "/api/v1/members/exists/nickname/gildong", want: true},
		{url: "/api/v1/members/exists/tel/010-1234-5678", want: true},
		{url: "/api/v1/members/exists/tel/010-0000-0000", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: tc.url})

			require.Equal(t, http.StatusOK, recorder.Code)

			var response member.ExistsResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tc.want, response.Exists)
		})
	}
}

func TestGetMemberInfoAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	t.Run("Without token", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members/me"})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "AUTH-000", errorResponse.Code)
	})

	t.Run("With token", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/members/me",
			Token:  env.tokenFor(t, "hong01"),
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "password")

		var response member.MemberInfoResponse
		testutil.ParseResponse(t, recorder, &response)
		assert.Equal(t, "hong01", response.ID)
		assert.Equal(t, "gildong", response.Nickname)
	})

	t.Run("Refresh token is rejected", func(t *testing.T) {
		refreshToken, err := env.tokenManager.GenerateRefreshToken("hong01", string(model.RoleUser))
		require.NoError(t, err)

		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/members/me",
			Token:  refreshToken,
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestUpdateAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))
	env.join(t, joinRequest("kim01", "chulsoo", "010-2222-3333"))

	address := "Busan"

	t.Run("Other member is forbidden", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method: http.MethodPut,
			URL:    "/api/v1/members",
			Body:   member.UpdateRequest{ID: "hong01", Address: &address},
			Token:  env.tokenFor(t, "kim01"),
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "MEMBER-007", errorResponse.Code)
	})

	t.Run("Owner updates", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method: http.MethodPut,
			URL:    "/api/v1/members",
			Body:   member.UpdateRequest{ID: "hong01", Address: &address},
			Token:  env.tokenFor(t, "hong01"),
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Busan", loadMember(t, env.db, "hong01").Address)
	})
}

func TestValidatePasswordAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	testCases := []struct {
		password string
		want     bool
	}{
		{password: "password123", want: true},
		{password: "password124", want: false},
	}

	for _, tc := range testCases {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/v1/members/me/password",
			Body:   member.ValidatePasswordRequest{Password: tc.password},
			Token:  env.tokenFor(t, "hong01"),
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var response member.ValidatePasswordResponse
		testutil.ParseResponse(t, recorder, &response)
		assert.Equal(t, tc.want, response.Valid)
	}
}

func TestFindIDAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/find-id",
		Body:   member.FindIDRequest{Name: "홍길동", Tel: "010-1234-5678"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var response member.FindIDResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "hong01", response.ID)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/find-id",
		Body:   member.FindIDRequest{Name: "홍길동", Tel: "010-0000-0000"},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestDeleteAPI(t *testing.T) {
	env := setupAPI(t, nil)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))
	accessToken := env.tokenFor(t, "hong01")

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
		Token:  accessToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// the token outlives the account
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
		Token:  accessToken,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDirectoryAPI_Public(t *testing.T) {
	env := setupAPI(t, member.AllowPublic)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))
	env.join(t, joinRequest("kim01", "chulsoo", "010-2222-3333"))

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	var list []member.MemberInfoResponse
	testutil.ParseResponse(t, recorder, &list)
	require.Len(t, list, 2)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/members/%d", list[1].Seq),
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var info member.MemberInfoResponse
	testutil.ParseResponse(t, recorder, &info)
	assert.Equal(t, "kim01", info.ID)
}

func TestDirectoryAPI_BySeqInvalidPath(t *testing.T) {
	env := setupAPI(t, member.AllowPublic)

	for _, url := range []string{"/api/v1/members/0", "/api/v1/members/abc"} {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: url})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, url)
	}

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members/42"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDirectoryAPI_Authenticated(t *testing.T) {
	env := setupAPI(t, member.RequireAuthenticated)
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  "not-a-jwt",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  env.tokenFor(t, "hong01"),
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDirectoryAPI_Admin(t *testing.T) {
	env := setupAPI(t, member.RequireRole(model.RoleAdmin))
	env.join(t, joinRequest("hong01", "gildong", "010-1234-5678"))

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  env.tokenFor(t, "hong01"),
	})
	require.Equal(t, http.StatusForbidden, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-008", errorResponse.Code)

	// role is read from storage, not from the token
	promoteToAdmin(t, env.db, "hong01")
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  env.tokenFor(t, "hong01"),
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}
