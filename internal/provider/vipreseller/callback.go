package vipreseller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
)

type callbackPayload struct {
	trxData
	Data json.RawMessage `json:"data"`
}

// ParseCallback разбирает уведомление провайдера.
// Поддерживаются плоская форма {trxid, status} и вложенная {data: {trxid, status}}.
func (c *Client) ParseCallback(body []byte) (*domain.ProviderStatus, error) {
	return ParseCallback(body)
}

// ParseCallback разбирает уведомление провайдера без обращения к сети
func ParseCallback(body []byte) (*domain.ProviderStatus, error) {
	var payload callbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("vipreseller: malformed callback: %v: %w", err, domain.ErrValidation)
	}

	data := payload.trxData
	if nested := bytes.TrimSpace(payload.Data); len(nested) > 0 && nested[0] == '{' {
		var inner trxData
		if err := json.Unmarshal(nested, &inner); err != nil {
			return nil, fmt.Errorf("vipreseller: malformed callback data: %v: %w", err, domain.ErrValidation)
		}
		if inner.TrxID != "" {
			data = inner
		}
	}

	data.TrxID = strings.TrimSpace(data.TrxID)
	data.Status = strings.TrimSpace(data.Status)
	if data.TrxID == "" {
		return nil, domain.NewValidationError("trxid", "required")
	}
	if data.Status == "" {
		return nil, domain.NewValidationError("status", "required")
	}

	return &domain.ProviderStatus{
		ExternalID:   data.TrxID,
		Status:       MapStatus(data.Status),
		RawStatus:    data.Status,
		Note:         data.Note,
		SerialNumber: data.SN,
	}, nil
}
