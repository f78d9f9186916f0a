package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/drive"
	contentmemory "github.com/marmos91/dittodrive/pkg/store/content/memory"
	entitymemory "github.com/marmos91/dittodrive/pkg/store/entity/memory"
)

type testAPI struct {
	mux     *http.ServeMux
	service *drive.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	service := drive.NewService(entitymemory.NewMemoryEntityStore(), contentmemory.NewMemoryContentStore())
	adapter := NewRESTAdapter(RESTConfig{}, service)
	return &testAPI{mux: adapter.routes(), service: service}
}

func (api *testAPI) do(t *testing.T, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	if actor != "" {
		request.Header.Set(actingUserHeader, actor)
	}

	recorder := httptest.NewRecorder()
	api.mux.ServeHTTP(recorder, request)
	return recorder
}

func (api *testAPI) createUser(t *testing.T, id string) string {
	t.Helper()
	user, err := api.service.CreateUser(context.Background(), id)
	require.NoError(t, err)
	return user.ID
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value))
	return value
}

func TestCreateUser(t *testing.T) {
	api := newTestAPI(t)

	recorder := api.do(t, http.MethodPost, "/v1/users", "", map[string]string{"id": "alice"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody[map[string]any](t, recorder)
	assert.Equal(t, "alice", body["id"])
}

func TestCreateUser_Duplicate(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	recorder := api.do(t, http.MethodPost, "/v1/users", "", map[string]string{"id": "alice"})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestFileRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	recorder := api.do(t, http.MethodPost, "/v1/files", "alice", map[string]any{
		"name":     "report.txt",
		"contents": []byte("quarterly numbers"),
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[map[string]any](t, recorder)
	fileID := created["id"].(string)
	require.NotEmpty(t, fileID)

	recorder = api.do(t, http.MethodGet, "/v1/files/"+fileID, "alice", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched struct {
		Name     string `json:"name"`
		Contents []byte `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, "report.txt", fetched.Name)
	assert.Equal(t, []byte("quarterly numbers"), fetched.Contents)
}

func TestGetFile_Forbidden(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")
	api.createUser(t, "mallory")

	file, err := api.service.CreateFile(context.Background(), "alice", "secret.txt", "", nil)
	require.NoError(t, err)

	recorder := api.do(t, http.MethodGet, "/v1/files/"+file.ID, "mallory", nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	body := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, "FORBIDDEN", body["error"])
}

func TestGetFile_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	recorder := api.do(t, http.MethodGet, "/v1/files/missing", "alice", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMissingActorHeader(t *testing.T) {
	api := newTestAPI(t)

	recorder := api.do(t, http.MethodGet, "/v1/files/some-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestMoveFile(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")
	ctx := context.Background()

	folder, err := api.service.CreateFolder(ctx, "alice", "docs", "")
	require.NoError(t, err)
	file, err := api.service.CreateFile(ctx, "alice", "doc.txt", "", nil)
	require.NoError(t, err)

	recorder := api.do(t, http.MethodPost, "/v1/files/"+file.ID+"/move", "alice", map[string]any{
		"to_folder": folder.ID,
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// A null destination moves back to the root.
	recorder = api.do(t, http.MethodPost, "/v1/files/"+file.ID+"/move", "alice", map[string]any{
		"to_folder": nil,
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	moved, _, err := api.service.GetFile(ctx, "alice", file.ID)
	require.NoError(t, err)
	assert.Empty(t, moved.ParentFolder)
}

func TestMoveFolder_SelfMove(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	folder, err := api.service.CreateFolder(context.Background(), "alice", "docs", "")
	require.NoError(t, err)

	recorder := api.do(t, http.MethodPost, "/v1/folders/"+folder.ID+"/move", "alice", map[string]any{
		"to_folder": folder.ID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	body := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, "INVALID_OPERATION", body["error"])
}

func TestShareFolder(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")
	api.createUser(t, "bob")
	ctx := context.Background()

	folder, err := api.service.CreateFolder(ctx, "alice", "shared", "")
	require.NoError(t, err)
	file, err := api.service.CreateFile(ctx, "alice", "doc.txt", folder.ID, []byte("x"))
	require.NoError(t, err)

	recorder := api.do(t, http.MethodPost, "/v1/folders/"+folder.ID+"/share", "alice", map[string]string{
		"user": "bob",
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = api.do(t, http.MethodGet, "/v1/files/"+file.ID, "bob", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestShareFile_TargetMissing(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	file, err := api.service.CreateFile(context.Background(), "alice", "doc.txt", "", nil)
	require.NoError(t, err)

	recorder := api.do(t, http.MethodPost, "/v1/files/"+file.ID+"/share", "alice", map[string]string{
		"user": "nobody",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMalformedBody(t *testing.T) {
	api := newTestAPI(t)
	api.createUser(t, "alice")

	request := httptest.NewRequest(http.MethodPost, "/v1/folders", bytes.NewReader([]byte("{not json")))
	request.Header.Set(actingUserHeader, "alice")
	recorder := httptest.NewRecorder()
	api.mux.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)

	recorder := api.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
