package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Category определяет категорию товара и форму данных получателя
type Category string

const (
	CategoryGame        Category = "game"
	CategoryPrepaid     Category = "prepaid"
	CategorySocialMedia Category = "social_media"
)

// Valid сообщает, известна ли категория
func (c Category) Valid() bool {
	switch c {
	case CategoryGame, CategoryPrepaid, CategorySocialMedia:
		return true
	}
	return false
}

// GameTarget данные получателя игрового пополнения
type GameTarget struct {
	UserID string `json:"user_id" validate:"required,alphanum,min=3,max=32"`
	ZoneID string `json:"zone_id,omitempty" validate:"omitempty,alphanum,max=16"`
}

// PrepaidTarget данные получателя пополнения связи или кошелька
type PrepaidTarget struct {
	Phone string `json:"phone" validate:"required,numeric,startswith=08,min=10,max=14"`
}

// SocialMediaTarget данные получателя услуги для соцсетей
type SocialMediaTarget struct {
	Target string `json:"target" validate:"required,printascii,max=255"`
}

// CustomerData данные получателя, разобранные по категории товара.
// Заполнен ровно один вариант, соответствующий Category.
type CustomerData struct {
	Category Category           `json:"category"`
	Game     *GameTarget        `json:"game,omitempty"`
	Prepaid  *PrepaidTarget     `json:"prepaid,omitempty"`
	Social   *SocialMediaTarget `json:"social_media,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseCustomerData собирает вариант данных получателя для категории из плоского набора полей
func ParseCustomerData(category Category, raw map[string]string) (CustomerData, error) {
	field := func(name string) string {
		return strings.TrimSpace(raw[name])
	}

	data := CustomerData{Category: category}
	switch category {
	case CategoryGame:
		data.Game = &GameTarget{UserID: field("user_id"), ZoneID: field("zone_id")}
	case CategoryPrepaid:
		data.Prepaid = &PrepaidTarget{Phone: NormalizePhone(field("phone"))}
	case CategorySocialMedia:
		data.Social = &SocialMediaTarget{Target: field("target")}
	default:
		return CustomerData{}, NewValidationError("category", "unsupported category")
	}

	if err := data.Validate(); err != nil {
		return CustomerData{}, err
	}
	return data, nil
}

// Validate проверяет, что заполнен только вариант своей категории и он корректен
func (c CustomerData) Validate() error {
	var target any
	filled := 0
	if c.Game != nil {
		filled++
		target = c.Game
	}
	if c.Prepaid != nil {
		filled++
		target = c.Prepaid
	}
	if c.Social != nil {
		filled++
		target = c.Social
	}
	if filled != 1 {
		return NewValidationError("customer_data", "exactly one target must be set")
	}

	switch {
	case c.Category == CategoryGame && c.Game == nil,
		c.Category == CategoryPrepaid && c.Prepaid == nil,
		c.Category == CategorySocialMedia && c.Social == nil:
		return NewValidationError("customer_data", "target does not match category "+string(c.Category))
	}

	if err := validate.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return NewValidationError(fe.Field(), "failed '"+fe.Tag()+"' rule")
		}
		return NewValidationError("customer_data", err.Error())
	}
	return nil
}

// Target возвращает идентификатор получателя и дополнительный идентификатор (зону) для провайдера
func (c CustomerData) Target() (target, zone string) {
	switch {
	case c.Game != nil:
		return c.Game.UserID, c.Game.ZoneID
	case c.Prepaid != nil:
		return c.Prepaid.Phone, ""
	case c.Social != nil:
		return c.Social.Target, ""
	}
	return "", ""
}

// NormalizePhone приводит номер к локальному формату 08xxxxxxxx
func NormalizePhone(phone string) string {
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	switch {
	case strings.HasPrefix(phone, "+62"):
		return "0" + phone[3:]
	case strings.HasPrefix(phone, "62"):
		return "0" + phone[2:]
	}
	return phone
}
