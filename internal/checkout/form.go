package checkout

import (
	"regexp"
	"strings"

	"github.com/shopfront/internal/constants"
)

var (
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	whitespacePattern = regexp.MustCompile(`\s`)
)

// 表单字段名，与错误 map 的 key 一致
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldState      = "state"
	FieldZipCode    = "zipCode"
	FieldCardName   = "cardName"
	FieldCardNumber = "cardNumber"
	FieldExpiryDate = "expiryDate"
	FieldCVV        = "cvv"
	// FieldForm 非字段级错误，例如下单失败
	FieldForm = "form"
)

// Form 结算表单，JSON 键与 Errors 的字段键一致
type Form struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
}

// Errors 字段 -> 错误信息，为空表示校验通过
type Errors map[string]string

// WithDefaults 补齐国家与支付方式默认值
func (f Form) WithDefaults() Form {
	if strings.TrimSpace(f.Country) == "" {
		f.Country = constants.DefaultCountry
	}
	if strings.TrimSpace(f.PaymentMethod) == "" {
		f.PaymentMethod = constants.PaymentMethodCreditCard
	}
	return f
}

// Redacted 去除支付卡信息，用于保存与回显
func (f Form) Redacted() Form {
	f.CardNumber = ""
	f.ExpiryDate = ""
	f.CVV = ""
	return f
}

// Validate 校验结算表单，仅信用卡支付时校验卡信息
func Validate(form Form) Errors {
	errs := Errors{}

	requireField(errs, FieldFirstName, form.FirstName, "First name is required")
	requireField(errs, FieldLastName, form.LastName, "Last name is required")
	if form.Email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		errs[FieldEmail] = "Email is invalid"
	}
	requireField(errs, FieldPhone, form.Phone, "Phone is required")
	requireField(errs, FieldAddress, form.Address, "Address is required")
	requireField(errs, FieldCity, form.City, "City is required")
	requireField(errs, FieldState, form.State, "State is required")
	requireField(errs, FieldZipCode, form.ZipCode, "ZIP code is required")

	if form.PaymentMethod != constants.PaymentMethodCreditCard {
		return errs
	}

	requireField(errs, FieldCardName, form.CardName, "Name on card is required")
	if form.CardNumber == "" {
		errs[FieldCardNumber] = "Card number is required"
	} else if !cardNumberPattern.MatchString(whitespacePattern.ReplaceAllString(form.CardNumber, "")) {
		errs[FieldCardNumber] = "Card number must be 16 digits"
	}
	if form.ExpiryDate == "" {
		errs[FieldExpiryDate] = "Expiry date is required"
	} else if !expiryPattern.MatchString(form.ExpiryDate) {
		errs[FieldExpiryDate] = "Expiry date must be MM/YY format"
	}
	if form.CVV == "" {
		errs[FieldCVV] = "CVV is required"
	} else if !cvvPattern.MatchString(form.CVV) {
		errs[FieldCVV] = "CVV must be 3 or 4 digits"
	}
	return errs
}

func requireField(errs Errors, field, value, message string) {
	if value == "" {
		errs[field] = message
	}
}
