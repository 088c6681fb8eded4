package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.As(err, &typeError):
			return fmt.Errorf("body contains incorrect JSON type for field %q", typeError.Field)
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
}

// writeError maps service and draft errors onto HTTP statuses
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		s.writeJSON(w, status, errorBody{Error: "the server encountered a problem and could not process your request"})
		return
	}

	s.writeJSON(w, status, errorBody{Error: err.Error(), Kind: string(draft.KindOf(err))})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ladder.ErrLobbyNotFound),
		errors.Is(err, ladder.ErrPlayerNotFound),
		errors.Is(err, ladder.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, ladder.ErrRegistrationClosed),
		errors.Is(err, ladder.ErrRoundConflict),
		errors.Is(err, ladder.ErrPlayerConflict):
		return http.StatusConflict
	case errors.Is(err, ladder.ErrNotCaptain):
		return http.StatusForbidden
	}

	switch draft.KindOf(err) {
	case draft.KindInvalidTransition, draft.KindSlotConflict, draft.KindAlreadyFinished:
		return http.StatusConflict
	case draft.KindDegenerateInput, draft.KindInvalidInput:
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
