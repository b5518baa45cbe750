package controllers

import (
	"errors"
	"net/http"
	"studynexus/internal/providers"
	"studynexus/internal/services"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

var errBadRequest = errors.New("malformed request body")

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorTable = []errorMapping{
	{errBadRequest, http.StatusBadRequest, "40000"},
	{services.ErrInvalidAmount, http.StatusBadRequest, "40001"},
	{services.ErrInvalidName, http.StatusBadRequest, "40002"},
	{services.ErrInvalidTutors, http.StatusBadRequest, "40003"},
	{services.ErrUnknownVoice, http.StatusBadRequest, "40004"},
	{services.ErrEmptyMaterial, http.StatusBadRequest, "40005"},
	{services.ErrUnsupportedMaterial, http.StatusBadRequest, "40006"},
	{services.ErrInvalidReminder, http.StatusBadRequest, "40007"},
	{services.ErrMissingDestination, http.StatusBadRequest, "40008"},
	{services.ErrNotConnected, http.StatusBadRequest, "40009"},
	{services.ErrInsufficientBalance, http.StatusBadRequest, "40010"},
	{services.ErrInsufficientStake, http.StatusBadRequest, "40011"},
	{services.ErrNothingToClaim, http.StatusBadRequest, "40012"},
	{services.ErrBonusLocked, http.StatusBadRequest, "40013"},
	{services.ErrNoActiveSession, http.StatusBadRequest, "40014"},
	{services.ErrNoSummaryView, http.StatusBadRequest, "40015"},
	{services.ErrUnknownItem, http.StatusNotFound, "40401"},
	{services.ErrUnknownModule, http.StatusNotFound, "40402"},
	{services.ErrUnknownSession, http.StatusNotFound, "40403"},
	{services.ErrAlreadyClaimed, http.StatusConflict, "40901"},
	{services.ErrAlreadyPremium, http.StatusConflict, "40902"},
	{services.ErrDuplicateCredential, http.StatusConflict, "40903"},
	{services.ErrStaleQuote, http.StatusConflict, "40904"},
}

func errorFor(err error) (int, apiError) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, apiError{Code: m.code, Message: m.err.Error()}
		}
	}
	return http.StatusInternalServerError, apiError{Code: "50000", Message: "Internal Server Error"}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	status, body := errorFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorEnvelope{Error: body})
}

// decodeBody reads at most maxRequestBodySize bytes of JSON into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest
	}
	return nil
}
