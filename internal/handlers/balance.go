package handlers

import (
	"net/http"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	balanceService domain.BalanceService
	logger         *zap.Logger
}

func NewBalanceHandler(balanceService domain.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get balance", zap.Int64("user_id", userID))
		return
	}

	if err := writeJSON(w, http.StatusOK, balance); err != nil {
		h.logger.Error("failed to encode balance response", zap.Error(err))
	}
}

func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.balanceService.GetTransactions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get transactions", zap.Int64("user_id", userID))
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := writeJSON(w, http.StatusOK, transactions); err != nil {
		h.logger.Error("failed to encode transactions response", zap.Error(err))
	}
}
