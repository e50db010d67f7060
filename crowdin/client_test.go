package crowdin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI starts a fake GraphQL endpoint that answers every request with
// status and body, recording the query and Authorization header it saw
func newTestAPI(t *testing.T, status int, body string) (*Client, *[]string, *[]string) {
	t.Helper()
	var queries, auths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		queries = append(queries, payload["query"])
		auths = append(auths, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, srv.Client()), &queries, &auths
}

func TestQuery_ReturnsData(t *testing.T) {
	client, queries, auths := newTestAPI(t, http.StatusOK, `{"data":{"viewer":{"username":"alice"}}}`)

	data, err := client.Query(context.Background(), "tok123", "query { viewer { username } }")
	require.NoError(t, err)

	assert.Equal(t, "alice", data.Get("viewer.username").String())
	assert.Equal(t, []string{"query { viewer { username } }"}, *queries)
	assert.Equal(t, []string{"Bearer tok123"}, *auths)
}

func TestQuery_FirstErrorWins(t *testing.T) {
	client, _, _ := newTestAPI(t, http.StatusOK,
		`{"errors":[{"message":"first problem"},{"message":"second problem"}],"data":null}`)

	_, err := client.Query(context.Background(), "tok", "query {}")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "first problem", apiErr.Message)
	assert.NotContains(t, err.Error(), "second problem")
}

func TestQuery_ErrorsOnNonSuccessStatus(t *testing.T) {
	client, _, _ := newTestAPI(t, http.StatusUnauthorized, `{"errors":[{"message":"Unauthorized"}]}`)

	_, err := client.Query(context.Background(), "tok", "query {}")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestQuery_EmptyErrorsArrayIsIgnored(t *testing.T) {
	client, _, _ := newTestAPI(t, http.StatusOK, `{"errors":[],"data":{"viewer":{"id":1}}}`)

	data, err := client.Query(context.Background(), "tok", "query {}")
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Get("viewer.id").Int())
}

func TestQuery_UnexpectedBodies(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not json", status: http.StatusOK, body: "<html>oops</html>"},
		{name: "no data", status: http.StatusOK, body: `{}`},
		{name: "server error without errors", status: http.StatusBadGateway, body: `{"message":"bad gateway"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestAPI(t, tt.status, tt.body)

			_, err := client.Query(context.Background(), "tok", "query {}")
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}

func TestFetchViewer(t *testing.T) {
	client, queries, _ := newTestAPI(t, http.StatusOK,
		`{"data":{"viewer":{"username":"alice","isAdmin":false,"id":42,"createdAt":"2020-01-01"}}}`)

	user, err := client.FetchViewer(context.Background(), "tok123")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "2020-01-01", user.CreatedAt)

	require.Len(t, *queries, 1)
	for _, field := range []string{"viewer", "username", "isAdmin", "id", "createdAt"} {
		assert.Contains(t, (*queries)[0], field)
	}
}

func TestFetchViewer_MissingViewer(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null viewer", body: `{"data":{"viewer":null}}`},
		{name: "only id", body: `{"data":{"viewer":{"id":42}}}`},
		{name: "no id", body: `{"data":{"viewer":{"username":"alice","isAdmin":false,"createdAt":"2020-01-01"}}}`},
		{name: "no username", body: `{"data":{"viewer":{"isAdmin":false,"id":42,"createdAt":"2020-01-01"}}}`},
		{name: "no isAdmin", body: `{"data":{"viewer":{"username":"alice","id":42,"createdAt":"2020-01-01"}}}`},
		{name: "no createdAt", body: `{"data":{"viewer":{"username":"alice","isAdmin":false,"id":42}}}`},
		{name: "id of wrong type", body: `{"data":{"viewer":{"username":"alice","isAdmin":false,"id":"abc","createdAt":"2020-01-01"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestAPI(t, http.StatusOK, tt.body)

			user, err := client.FetchViewer(context.Background(), "tok")
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
			assert.Nil(t, user)
		})
	}
}

func TestFetchTranslationCount(t *testing.T) {
	client, queries, _ := newTestAPI(t, http.StatusOK,
		`{"data":{"viewer":{"projects":{"edges":[{"node":{"id":1,"translations":{"totalCount":7}}},{"node":{"id":2,"translations":{"totalCount":100}}}]}}}}`)

	count, err := client.FetchTranslationCount(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	require.Len(t, *queries, 1)
	q := (*queries)[0]
	assert.Contains(t, q, "projects(first: 1)")
	assert.Contains(t, q, "translations(userId: 42, first: 10)")
	assert.Contains(t, q, "totalCount")
}

func TestFetchTranslationCount_NoProjects(t *testing.T) {
	client, _, _ := newTestAPI(t, http.StatusOK, `{"data":{"viewer":{"projects":{"edges":[]}}}}`)

	_, err := client.FetchTranslationCount(context.Background(), "tok", 42)
	assert.ErrorIs(t, err, ErrNoProjects)
}

func TestFetchTranslationCount_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no projects field", body: `{"data":{"viewer":{}}}`},
		{name: "no totalCount", body: `{"data":{"viewer":{"projects":{"edges":[{"node":{"translations":{}}}]}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestAPI(t, http.StatusOK, tt.body)

			_, err := client.FetchTranslationCount(context.Background(), "tok", 1)
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}

func TestFetchTranslationCount_APIError(t *testing.T) {
	client, _, _ := newTestAPI(t, http.StatusOK, `{"errors":[{"message":"Project not found"}]}`)

	_, err := client.FetchTranslationCount(context.Background(), "tok", 1)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.True(t, strings.HasSuffix(err.Error(), "Project not found"))
}
