package postgres

import (
	"github.com/avc/topup-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// decimalArg сравнивает аргумент запроса с ожидаемой суммой по значению
type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.want)
}

func eqDecimal(s string) decimalArg {
	return decimalArg{want: decimal.RequireFromString(s)}
}

func refundChange(userID int64) domain.BalanceChange {
	return domain.BalanceChange{
		UserID:      userID,
		Amount:      decimal.NewFromInt(50000),
		Type:        domain.TransactionTypeRefund,
		Reference:   "TU-1",
		Description: "refund",
	}
}
