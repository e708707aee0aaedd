package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"custodian/internal/hdwallet"
	"custodian/internal/http/handler/middleware"
	"custodian/internal/http/payload"
	"custodian/internal/ledger"

	"go.uber.org/zap"
)

var (
	InitMnemonic  = "POST /custody/mnemonic"
	DeriveAddress = "POST /custody/addresses"
	ExportKey     = "POST /custody/keys/export"
	SubmitSettle  = "POST /custody/settlements"
	GetBalance    = "GET /custody/balances/{asset}"
)

// ConfirmHeader must be "true" for a key export to proceed.
const ConfirmHeader = "X-Confirm"

type CustodyHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	custody          CustodyService
}

func NewCustodyHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, custodyService CustodyService) *CustodyHandler {
	return &CustodyHandler{
		logs:             logger,
		requestValidator: requestValidator,
		custody:          custodyService,
	}
}

// Register adds every custody route to mux.
func (h *CustodyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(InitMnemonic, h.HandleInitMnemonic)
	mux.HandleFunc(DeriveAddress, h.HandleDeriveAddress)
	mux.HandleFunc(ExportKey, h.HandleExportKey)
	mux.HandleFunc(SubmitSettle, h.HandleSettle)
	mux.HandleFunc(GetBalance, h.HandleGetBalance)
}

func (h *CustodyHandler) HandleInitMnemonic(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	principalID, ok := h.principal(w, r, InitMnemonic)
	if !ok {
		return
	}

	var req payload.MnemonicRequest
	if !h.decode(w, r, &req, InitMnemonic) {
		return
	}

	info, err := h.custody.InitMnemonic(r.Context(), principalID, req.Network)
	if err != nil {
		h.fail(w, err, msgMnemonicFailed, InitMnemonic, requestId)
		return
	}

	h.respond(w, Response{Data: info}, http.StatusOK, requestId)
}

func (h *CustodyHandler) HandleDeriveAddress(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	principalID, ok := h.principal(w, r, DeriveAddress)
	if !ok {
		return
	}

	var req payload.DeriveAddressRequest
	if !h.decode(w, r, &req, DeriveAddress) {
		return
	}

	address, err := h.custody.DeriveAddress(r.Context(), req.ToDeriveRequest(principalID))
	if err != nil {
		h.fail(w, err, msgDeriveFailed, DeriveAddress, requestId)
		return
	}

	h.logs.Infow("address derived",
		"principal_id", principalID,
		"address", address.Address,
		"index", address.DerivationIndex,
		"handler", DeriveAddress,
		"request_id", requestId)

	h.respond(w, Response{Data: payload.NewAddressView(address)}, http.StatusCreated, requestId)
}

func (h *CustodyHandler) HandleExportKey(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	principalID, ok := h.principal(w, r, ExportKey)
	if !ok {
		return
	}

	var req payload.ExportKeyRequest
	if !h.decode(w, r, &req, ExportKey) {
		return
	}

	key, err := h.custody.ExportKey(r.Context(), hdwallet.ExportRequest{
		PrincipalID: principalID,
		Address:     req.Address,
		Confirmed:   strings.EqualFold(strings.TrimSpace(r.Header.Get(ConfirmHeader)), "true"),
		Reason:      req.Reason,
		IP:          clientIP(r),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		h.fail(w, err, msgExportFailed, ExportKey, requestId)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	h.respond(w, Response{Data: key}, http.StatusOK, requestId)
}

func (h *CustodyHandler) HandleSettle(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	principalID, ok := h.principal(w, r, SubmitSettle)
	if !ok {
		return
	}

	var req payload.SettlementRequest
	if !h.decode(w, r, &req, SubmitSettle) {
		return
	}

	result, err := h.custody.Settle(r.Context(), principalID, req.ToSettlement())
	if errors.Is(err, ledger.ErrDuplicate) {
		h.respond(w, Response{Message: msgDuplicate}, http.StatusOK, requestId)
		h.logs.Infow("duplicate settlement ignored",
			"principal_id", principalID,
			"tx_hash", req.TxHash,
			"handler", SubmitSettle,
			"request_id", requestId)
		return
	}
	if err != nil {
		h.fail(w, err, msgSettleFailed, SubmitSettle, requestId)
		return
	}

	h.respond(w, Response{
		Message: msgSettled,
		Data:    payload.NewSettlementView(result.Transaction, result.Balances),
	}, http.StatusCreated, requestId)
}

func (h *CustodyHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	principalID, ok := h.principal(w, r, GetBalance)
	if !ok {
		return
	}

	asset := r.PathValue("asset")
	if asset == "" {
		h.respond(w, Response{
			Message: msgRequestFailed,
			Error:   "asset parameter is required",
		}, http.StatusBadRequest, requestId)
		return
	}

	balance, err := h.custody.Balance(r.Context(), principalID, asset)
	if err != nil {
		h.fail(w, err, msgBalanceFailed, GetBalance, requestId)
		return
	}

	h.respond(w, Response{Data: payload.NewBalanceView(balance)}, http.StatusOK, requestId)
}

func (h *CustodyHandler) principal(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	principalID := middleware.PrincipalIDFrom(r.Context())
	if principalID == "" {
		requestId := middleware.RequestIDFrom(r.Context())
		h.respond(w, Response{
			Message: msgUnauthenticated,
			Error:   "principal is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("request reached handler without principal",
			"handler", route,
			"request_id", requestId)
		return "", false
	}
	return principalID, true
}

func (h *CustodyHandler) decode(w http.ResponseWriter, r *http.Request, object any, route string) bool {
	err := h.requestValidator.DecodeJSONPayload(r, object)
	if err == nil {
		return true
	}

	requestId := middleware.RequestIDFrom(r.Context())
	h.respond(w, Response{
		Message: msgRequestFailed,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
	return false
}

func (h *CustodyHandler) fail(w http.ResponseWriter, err error, message, route, requestId string) {
	code, expose := statusFor(err)
	resp := Response{Message: message, Error: oopsErr}
	if expose {
		resp.Error = err.Error()
	}

	h.respond(w, resp, code, requestId)
	if code >= http.StatusInternalServerError {
		h.logs.Errorw(message,
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}
	h.logs.Warnw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *CustodyHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
