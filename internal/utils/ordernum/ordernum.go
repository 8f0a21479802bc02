package ordernum

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	prefix     = "TU"
	randDigits = 6
)

// Generate создает номер заказа вида TU-YYYYMMDD-NNNNNN-C,
// где C контрольная цифра по алгоритму Луна над датой и случайной частью.
// Уникальность гарантирует ограничение в БД, при коллизии номер генерируется заново.
func Generate(now time.Time) string {
	return build(now, rand.IntN(1_000_000))
}

func build(now time.Time, seq int) string {
	date := now.UTC().Format("20060102")
	body := fmt.Sprintf("%s%0*d", date, randDigits, seq%1_000_000)
	return fmt.Sprintf("%s-%s-%s-%d", prefix, date, body[len(date):], CheckDigit(body))
}

// Validate проверяет формат номера заказа и его контрольную цифру
func Validate(number string) bool {
	parts := strings.Split(number, "-")
	if len(parts) != 4 || parts[0] != prefix || len(parts[1]) != 8 || len(parts[2]) != randDigits || len(parts[3]) != 1 {
		return false
	}
	return Luhn(parts[1] + parts[2] + parts[3])
}

// Luhn проверяет номер по алгоритму Луна
func Luhn(number string) bool {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) == 0 || !digitsOnly(number) {
		return false
	}
	return luhnSum(number, false)%10 == 0
}

// CheckDigit вычисляет контрольную цифру, которую нужно дописать к number
func CheckDigit(number string) int {
	if !digitsOnly(number) {
		return 0
	}
	return (10 - luhnSum(number, true)%10) % 10
}

// luhnSum суммирует цифры с конца строки, удваивая каждую вторую.
// doubleFirst нужен при расчете контрольной цифры, которой еще нет в строке.
func luhnSum(number string, doubleFirst bool) int {
	sum := 0
	isSecond := doubleFirst
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isSecond = !isSecond
	}
	return sum
}

func digitsOnly(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
