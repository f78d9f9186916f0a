package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/pkg/drive"
	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// actingUserHeader carries the id of the user performing the request.
const actingUserHeader = "X-Acting-User"

type createUserRequest struct {
	ID string `json:"id"`
}

type createFileRequest struct {
	Name         string `json:"name"`
	ParentFolder string `json:"parent_folder"`
	Contents     []byte `json:"contents"`
}

type createFolderRequest struct {
	Name         string `json:"name"`
	ParentFolder string `json:"parent_folder"`
}

type moveRequest struct {
	// ToFolder is the destination folder id; null or absent means the root.
	ToFolder *string `json:"to_folder"`
}

type shareRequest struct {
	User string `json:"user"`
}

type fileResponse struct {
	*entity.File
	Contents []byte `json:"contents,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (adapter *RESTAdapter) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/users", adapter.handleCreateUser)

	mux.HandleFunc("POST /v1/files", adapter.handleCreateFile)
	mux.HandleFunc("GET /v1/files/{id}", adapter.handleGetFile)
	mux.HandleFunc("POST /v1/files/{id}/move", adapter.handleMoveFile)
	mux.HandleFunc("POST /v1/files/{id}/share", adapter.handleShareFile)

	mux.HandleFunc("POST /v1/folders", adapter.handleCreateFolder)
	mux.HandleFunc("GET /v1/folders/{id}", adapter.handleGetFolder)
	mux.HandleFunc("POST /v1/folders/{id}/move", adapter.handleMoveFolder)
	mux.HandleFunc("POST /v1/folders/{id}/share", adapter.handleShareFolder)

	mux.HandleFunc("GET /healthz", adapter.handleHealthz)

	return mux
}

func (adapter *RESTAdapter) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := adapter.service.CreateUser(r.Context(), req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (adapter *RESTAdapter) handleCreateFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createFileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	file, err := adapter.service.CreateFile(r.Context(), actor, req.Name, req.ParentFolder, req.Contents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fileResponse{File: file})
}

func (adapter *RESTAdapter) handleGetFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}

	file, contents, err := adapter.service.GetFile(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{File: file, Contents: contents})
}

func (adapter *RESTAdapter) handleMoveFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := adapter.service.MoveFile(r.Context(), actor, r.PathValue("id"), destination(req)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (adapter *RESTAdapter) handleShareFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req shareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := adapter.service.ShareFile(r.Context(), actor, r.PathValue("id"), req.User); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (adapter *RESTAdapter) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createFolderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	folder, err := adapter.service.CreateFolder(r.Context(), actor, req.Name, req.ParentFolder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (adapter *RESTAdapter) handleGetFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}

	folder, err := adapter.service.GetFolder(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (adapter *RESTAdapter) handleMoveFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := adapter.service.MoveFolder(r.Context(), actor, r.PathValue("id"), destination(req)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (adapter *RESTAdapter) handleShareFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req shareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := adapter.service.ShareFolder(r.Context(), actor, r.PathValue("id"), req.User); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (adapter *RESTAdapter) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := adapter.service.Healthcheck(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// actingUser extracts the acting user id; missing header is a 400.
func actingUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor := r.Header.Get(actingUserHeader)
	if actor == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "BAD_REQUEST",
			Message: actingUserHeader + " header is required",
		})
		return "", false
	}
	return actor, true
}

func destination(req moveRequest) string {
	if req.ToFolder == nil {
		return ""
	}
	return *req.ToFolder
}

// decodeJSON decodes the request body into v; malformed bodies are a 400.
// An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "BAD_REQUEST",
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response: %v", err)
	}
}

// writeError maps domain errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var driveErr *drive.Error
	if !errors.As(err, &driveErr) {
		logger.Error("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   string(drive.ErrStore),
			Message: "internal error",
		})
		return
	}

	status := http.StatusInternalServerError
	switch driveErr.Code {
	case drive.ErrNotFound:
		status = http.StatusNotFound
	case drive.ErrForbidden:
		status = http.StatusForbidden
	case drive.ErrInvalidOperation:
		status = http.StatusUnprocessableEntity
	case drive.ErrStore:
		logger.Error("request failed: %v", driveErr)
	}

	writeJSON(w, status, errorResponse{
		Error:   string(driveErr.Code),
		Message: driveErr.Message,
	})
}
