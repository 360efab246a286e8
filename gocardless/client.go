package gocardless

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/daanvanberkel/gocardless-bankdata/util"
	"github.com/sirupsen/logrus"
)

// TODO: make the country configurable
const institutionCountry = "gb"

// GoCardlessClient talks to the GoCardless Bank Account Data API. A client
// returned by NewGoCardlessClient is always authenticated, there is no
// unauthenticated half-state to guard against.
type GoCardlessClient struct {
	client    *GoCardlessHttpClient
	log       *logrus.Logger
	secretId  util.Secret
	secretKey util.Secret

	tokenMu sync.RWMutex
	token   *CreateTokenResponse
}

func NewGoCardlessClient(config *util.Config, log *logrus.Logger) (*GoCardlessClient, error) {
	httpClient, err := NewGoCardlessHttpClient(config.GoCardlessConfig.ApiBaseUrl, config.GoCardlessConfig.UserAgent, log)
	if err != nil {
		return nil, err
	}

	client := &GoCardlessClient{
		client:    httpClient,
		log:       log,
		secretId:  config.GoCardlessConfig.SecretId,
		secretKey: config.GoCardlessConfig.SecretKey,
	}

	token, err := client.createToken()
	if err != nil {
		log.WithError(err).Error("GoCardless authentication failed")
		return nil, err
	}

	client.token = token
	httpClient.SetTokenSource(client)

	return client, nil
}

// ENDPOINT CALLS

func (c *GoCardlessClient) GetInstitutions() ([]*Institution, error) {
	response, err := c.client.DoGoCardlessRequest("GET", "/institutions/?country="+institutionCountry, nil)
	if err != nil {
		return nil, err
	}

	var institutions []*Institution
	if err := json.Unmarshal(response, &institutions); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return institutions, nil
}

func (c *GoCardlessClient) CreateEndUserAgreement(institutionId string, maxHistoricalDays int) (*EndUserAgreement, error) {
	if maxHistoricalDays < 1 {
		return nil, errors.New("max historical days must be a positive number")
	}

	response, err := c.client.DoGoCardlessRequest("POST", "/agreements/enduser/", CreateEndUserAgreementRequest{
		InstitutionId:      institutionId,
		MaxHistoricalDays:  maxHistoricalDays,
		AccessValidForDays: "30",
		AccessScope:        []string{"balances", "details", "transactions"},
	})
	if err != nil {
		return nil, err
	}

	var agreement EndUserAgreement
	if err := json.Unmarshal(response, &agreement); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &agreement, nil
}

func (c *GoCardlessClient) ListRequisitions() (*ListRequisitionsResponse, error) {
	response, err := c.client.DoGoCardlessRequest("GET", "/requisitions/", nil)
	if err != nil {
		return nil, err
	}

	var requisitions ListRequisitionsResponse
	if err := json.Unmarshal(response, &requisitions); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &requisitions, nil
}

// CreateRequisition starts a new linking session. The reference must be
// unique per credential, a duplicate is rejected by GoCardless. An empty
// agreementId or reference is omitted from the request.
func (c *GoCardlessClient) CreateRequisition(redirect string, institutionId string, agreementId string, reference string) (*Requisition, error) {
	response, err := c.client.DoGoCardlessRequest("POST", "/requisitions/", CreateRequisitionRequest{
		Redirect:      redirect,
		InstitutionId: institutionId,
		UserLanguage:  "EN", // TODO: make the user language configurable
		Reference:     reference,
		Agreement:     agreementId,
	})
	if err != nil {
		return nil, err
	}

	var requisition Requisition
	if err := json.Unmarshal(response, &requisition); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &requisition, nil
}

func (c *GoCardlessClient) GetBalances(accountId string) ([]*Balance, error) {
	response, err := c.client.DoGoCardlessRequest("GET", "/accounts/"+accountId+"/balances", nil)
	if err != nil {
		return nil, err
	}

	var balances ListBalancesResponse
	if err := json.Unmarshal(response, &balances); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return balances.Balances, nil
}

// GetAccountDetails returns nil when the institution has not populated any
// details for the account yet.
func (c *GoCardlessClient) GetAccountDetails(accountId string) (*Account, error) {
	response, err := c.client.DoGoCardlessRequest("GET", "/accounts/"+accountId+"/details", nil)
	if err != nil {
		return nil, err
	}

	var details AccountDetailsResponse
	if err := json.Unmarshal(response, &details); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return details.Account, nil
}

func (c *GoCardlessClient) GetTransactions(accountId string) (*Transactions, error) {
	response, err := c.client.DoGoCardlessRequest("GET", "/accounts/"+accountId+"/transactions", nil)
	if err != nil {
		return nil, err
	}

	var transactions ListTransactionsResponse
	if err := json.Unmarshal(response, &transactions); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &transactions.Transactions, nil
}

// TOKEN HANDLING

// AccessToken implements TokenSource. Readers see either the construction
// token or a complete replacement from Reauthenticate, never a mix.
func (c *GoCardlessClient) AccessToken() (string, error) {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()

	if c.token == nil || c.token.Access == "" {
		return "", errors.New("no access token available")
	}

	return c.token.Access, nil
}

// Reauthenticate mints a fresh token pair and replaces the stored token
// atomically. GoCardless does not refresh tokens on its own, callers decide
// when the old one has run out.
func (c *GoCardlessClient) Reauthenticate() error {
	token, err := c.createToken()
	if err != nil {
		c.log.WithError(err).Error("GoCardless reauthentication failed")
		return err
	}

	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()

	c.log.Debug("Replaced gocardless token")
	return nil
}

func (c *GoCardlessClient) createToken() (*CreateTokenResponse, error) {
	response, err := c.client.DoAnonymousGoCardlessRequest("POST", "/token/new/", CreateTokenRequest{
		SecretId:  c.secretId.Expose(),
		SecretKey: c.secretKey.Expose(),
	})
	if err != nil {
		return nil, err
	}

	var token CreateTokenResponse
	if err := json.Unmarshal(response, &token); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if token.Access == "" {
		return nil, errors.New("gocardless returned an empty access token")
	}

	return &token, nil
}
