package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/bestelerim/internal/ports"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Detail         string `json:"detail"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// statusFor maps service errors onto the HTTP contract.
func statusFor(err error) (int, errorBody) {
	var (
		upstream *ports.UpstreamError
		conn     *ports.ConnectivityError
	)
	switch {
	case errors.As(err, &upstream):
		return http.StatusBadGateway, errorBody{
			Detail:         upstream.Error(),
			UpstreamStatus: upstream.Status,
		}
	case errors.As(err, &conn):
		return http.StatusBadGateway, errorBody{Detail: "failed to reach media repository"}
	case errors.Is(err, ports.ErrStoreUnavailable):
		return http.StatusInternalServerError, errorBody{Detail: "engagement store is not configured"}
	case errors.Is(err, ports.ErrInvalidAction):
		return http.StatusBadRequest, errorBody{Detail: "action must be \"like\" or \"unlike\""}
	case errors.Is(err, ports.ErrEmptyAssetName):
		return http.StatusBadRequest, errorBody{Detail: "missing asset name"}
	}
	return http.StatusInternalServerError, errorBody{Detail: "internal error"}
}

func writeError(w http.ResponseWriter, err error) {
	status, body := statusFor(err)
	writeJSON(w, status, body)
}

// callCtx keeps request values but drops cancellation: a client that goes
// away does not abort a listing or an upsert already in flight. The remote
// client timeout is the only deadline.
func callCtx(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
