package gocardless

import "github.com/shopspring/decimal"

// COMMON MODELS

// Amount is a monetary value as GoCardless transmits it: the amount stays a
// decimal string so it survives decode/encode byte-for-byte.
type Amount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Decimal parses the amount string into an exact decimal value. The string
// field itself is never rewritten.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Amount)
}

// TOKEN MODELS

type CreateTokenRequest struct {
	SecretId  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
}

type CreateTokenResponse struct {
	Access         string `json:"access"`
	AccessExpires  int    `json:"access_expires"`
	Refresh        string `json:"refresh"`
	RefreshExpires int    `json:"refresh_expires"`
}

// INSTITUTION MODELS

type Institution struct {
	Id                   string   `json:"id"`
	Name                 string   `json:"name"`
	Bic                  string   `json:"bic"`
	TransactionTotalDays string   `json:"transaction_total_days"`
	Countries            []string `json:"countries"`
	Logo                 string   `json:"logo"`
}

// END USER AGREEMENT MODELS

type CreateEndUserAgreementRequest struct {
	InstitutionId      string   `json:"institution_id"`
	MaxHistoricalDays  int      `json:"max_historical_days"`
	AccessValidForDays string   `json:"access_valid_for_days"`
	AccessScope        []string `json:"access_scope"`
}

type EndUserAgreement struct {
	Id                 string   `json:"id"`
	Created            string   `json:"created"`
	InstitutionId      string   `json:"institution_id"`
	MaxHistoricalDays  int64    `json:"max_historical_days"`
	AccessValidForDays int64    `json:"access_valid_for_days"`
	AccessScope        []string `json:"access_scope"`
}

// REQUISITION MODELS

type CreateRequisitionRequest struct {
	Redirect      string `json:"redirect"`
	InstitutionId string `json:"institution_id"`
	UserLanguage  string `json:"user_language"`
	Reference     string `json:"reference,omitempty"`
	Agreement     string `json:"agreement,omitempty"`
}

type ListRequisitionsResponse struct {
	Count   int64          `json:"count"`
	Results []*Requisition `json:"results"`
}

type Requisition struct {
	Id                string            `json:"id"`
	Created           string            `json:"created"`
	Redirect          string            `json:"redirect"`
	Status            RequisitionStatus `json:"status"`
	InstitutionId     string            `json:"institution_id"`
	Agreement         string            `json:"agreement"`
	Reference         string            `json:"reference"`
	Accounts          []string          `json:"accounts"`
	UserLanguage      string            `json:"user_language"`
	Link              string            `json:"link"`
	AccountSelection  bool              `json:"account_selection"`
	RedirectImmediate bool              `json:"redirect_immediate"`
}

// RequisitionStatus is the two-letter lifecycle code of a requisition. Codes
// GoCardless introduces later decode fine, they just report Known() == false.
type RequisitionStatus string

const (
	RequisitionStatusCreated                  RequisitionStatus = "CR"
	RequisitionStatusGivingConsent            RequisitionStatus = "GC"
	RequisitionStatusUndergoingAuthentication RequisitionStatus = "UA"
	RequisitionStatusRejected                 RequisitionStatus = "RJ"
	RequisitionStatusSelectingAccounts        RequisitionStatus = "SA"
	RequisitionStatusGrantingAccess           RequisitionStatus = "GA"
	RequisitionStatusLinked                   RequisitionStatus = "LN"
	RequisitionStatusExpired                  RequisitionStatus = "EX"
)

var requisitionStatusNames = map[RequisitionStatus]string{
	RequisitionStatusCreated:                  "created",
	RequisitionStatusGivingConsent:            "giving consent",
	RequisitionStatusUndergoingAuthentication: "undergoing authentication",
	RequisitionStatusRejected:                 "rejected",
	RequisitionStatusSelectingAccounts:        "selecting accounts",
	RequisitionStatusGrantingAccess:           "granting access",
	RequisitionStatusLinked:                   "linked",
	RequisitionStatusExpired:                  "expired",
}

func (s RequisitionStatus) Known() bool {
	_, ok := requisitionStatusNames[s]
	return ok
}

func (s RequisitionStatus) String() string {
	if name, ok := requisitionStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// BALANCE MODELS

type ListBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type Balance struct {
	BalanceAmount Amount `json:"balanceAmount"`
	BalanceType   string `json:"balanceType"`
	ReferenceDate string `json:"referenceDate"`
}

// ACCOUNT MODELS

type AccountDetailsResponse struct {
	Account *Account `json:"account"`
}

// Account holds whatever subset of detail fields the institution populates.
// Everything except ResourceId and Currency can be absent.
type Account struct {
	ResourceId               string        `json:"resourceId"`
	Iban                     string        `json:"iban,omitempty"`
	Bban                     string        `json:"bban,omitempty"`
	Bic                      string        `json:"bic,omitempty"`
	Msisdn                   string        `json:"msisdn,omitempty"`
	Currency                 string        `json:"currency"`
	OwnerName                string        `json:"ownerName,omitempty"`
	OwnerAddressUnstructured string        `json:"ownerAddressUnstructured,omitempty"`
	Name                     string        `json:"name,omitempty"`
	DisplayName              string        `json:"displayName,omitempty"`
	Details                  string        `json:"details,omitempty"`
	Product                  string        `json:"product,omitempty"`
	CashAccountType          string        `json:"cashAccountType,omitempty"`
	Status                   AccountStatus `json:"status,omitempty"`
	LinkedAccounts           string        `json:"linkedAccounts,omitempty"`
	Usage                    AccountUsage  `json:"usage,omitempty"`
}

// AccountStatus is the availability of an account. Absent means available.
type AccountStatus string

const (
	AccountStatusEnabled AccountStatus = "enabled"
	AccountStatusDeleted AccountStatus = "deleted"
	AccountStatusBlocked AccountStatus = "blocked"
)

func (s AccountStatus) Known() bool {
	switch s {
	case AccountStatusEnabled, AccountStatusDeleted, AccountStatusBlocked:
		return true
	}
	return false
}

// AccountUsage distinguishes private from professional accounts.
type AccountUsage string

const (
	AccountUsagePrivate      AccountUsage = "PRIV"
	AccountUsageProfessional AccountUsage = "ORGA"
)

func (u AccountUsage) Known() bool {
	return u == AccountUsagePrivate || u == AccountUsageProfessional
}

// TRANSACTION MODELS

type ListTransactionsResponse struct {
	Transactions Transactions `json:"transactions"`
}

// Transactions splits an account's transactions into settled and provisional
// entries. A missing key on the wire decodes to an empty slice.
type Transactions struct {
	Booked  []*Transaction `json:"booked"`
	Pending []*Transaction `json:"pending"`
}

type Transaction struct {
	TransactionId                     string              `json:"transactionId,omitempty"`
	BookingDate                       string              `json:"bookingDate,omitempty"`
	ValueDate                         string              `json:"valueDate,omitempty"`
	BookingDateTime                   string              `json:"bookingDateTime,omitempty"`
	ValueDateTime                     string              `json:"valueDateTime,omitempty"`
	TransactionAmount                 Amount              `json:"transactionAmount"`
	CreditorName                      string              `json:"creditorName,omitempty"`
	DebtorName                        string              `json:"debtorName,omitempty"`
	RemittanceInformationUnstructured string              `json:"remittanceInformationUnstructured,omitempty"`
	ProprietaryBankTransactionCode    string              `json:"proprietaryBankTransactionCode,omitempty"`
	CreditorAccount                   *CreditorAccount    `json:"creditorAccount,omitempty"`
	InternalTransactionId             string              `json:"internalTransactionId,omitempty"`
	CurrencyExchange                  []*CurrencyExchange `json:"currencyExchange,omitempty"`
}

type CreditorAccount struct {
	Bban string `json:"bban"`
}

type CurrencyExchange struct {
	SourceCurrency string `json:"sourceCurrency"`
	ExchangeRate   string `json:"exchangeRate"`
	UnitCurrency   string `json:"unitCurrency"`
	TargetCurrency string `json:"targetCurrency"`
}
