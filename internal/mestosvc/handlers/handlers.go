package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avvvet/mesto-services/internal/mestosvc/apperr"
	"github.com/avvvet/mesto-services/internal/mestosvc/auth"
	"github.com/avvvet/mesto-services/internal/mestosvc/service"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxBodyBytes = 1 << 20

	msgNotFound       = "requested resource not found"
	msgInternal       = "internal server error"
	msgInvalidRequest = "invalid request"
	msgAuthRequired   = "authorization required"
)

type Handler struct {
	users        *service.UserService
	cards        *service.CardService
	tokens       *auth.TokenAuth
	cookieSecure bool
}

func NewHandler(users *service.UserService, cards *service.CardService, tokens *auth.TokenAuth, cookieSecure bool) *Handler {
	return &Handler{
		users:        users,
		cards:        cards,
		tokens:       tokens,
		cookieSecure: cookieSecure,
	}
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// handlerFunc is an HTTP handler that reports failures instead of writing them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap is the single place where domain errors become HTTP responses.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	reqID := middleware.GetReqID(r.Context())

	if kind == apperr.KindInternal {
		log.Errorf("[%s] %s %s failed: %v", reqID, r.Method, r.URL.Path, err)
		h.CreateResponse(w, kind.Status(), messageResponse{Message: msgInternal})
		return
	}

	var e *apperr.Error
	errors.As(err, &e)
	log.Debugf("[%s] %s %s rejected: %v", reqID, r.Method, r.URL.Path, err)
	h.CreateResponse(w, kind.Status(), messageResponse{Message: e.Message})
}

func (h *Handler) CreateResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, http.StatusNotFound, messageResponse{Message: msgNotFound})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, http.StatusOK, messageResponse{Message: "mesto service is running"})
}

// Authenticator admits requests whose token jwtauth.Verify accepted and
// stores the caller's id in the request context.
func (h *Handler) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.UserIDFromVerified(r.Context())
		if err != nil {
			h.writeError(w, r, &apperr.Error{Kind: apperr.KindUnauthorized, Message: msgAuthRequired, Err: err})
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), id)))
	})
}

func callerID(r *http.Request) (primitive.ObjectID, error) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		return primitive.NilObjectID, apperr.Unauthorized(msgAuthRequired)
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.BadRequest(msgInvalidRequest)
		}
		return &apperr.Error{Kind: apperr.KindBadRequest, Message: msgInvalidRequest, Err: err}
	}
	return nil
}
