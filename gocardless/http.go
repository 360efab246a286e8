package gocardless

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource hands the http client the current access token. The
// GoCardlessClient implements it on top of its write-once token field.
type TokenSource interface {
	AccessToken() (string, error)
}

type GoCardlessHttpClient struct {
	apiBaseUrl  string
	userAgent   string
	log         *logrus.Logger
	httpClient  *http.Client
	tokenSource TokenSource
}

func NewGoCardlessHttpClient(apiBaseUrl string, userAgent string, log *logrus.Logger) (*GoCardlessHttpClient, error) {
	return &GoCardlessHttpClient{
		apiBaseUrl: apiBaseUrl,
		userAgent:  userAgent,
		log:        log,
		httpClient: &http.Client{},
	}, nil
}

func (c *GoCardlessHttpClient) SetTokenSource(tokenSource TokenSource) {
	c.tokenSource = tokenSource
}

// DoGoCardlessRequest sends an authenticated request and returns the raw
// response body.
func (c *GoCardlessHttpClient) DoGoCardlessRequest(method string, path string, data interface{}) ([]byte, error) {
	return c.doRequest(method, path, data, true)
}

// DoAnonymousGoCardlessRequest sends a request without a bearer token. Only
// the token endpoint is called this way.
func (c *GoCardlessHttpClient) DoAnonymousGoCardlessRequest(method string, path string, data interface{}) ([]byte, error) {
	return c.doRequest(method, path, data, false)
}

func (c *GoCardlessHttpClient) doRequest(method string, path string, data interface{}, authenticated bool) ([]byte, error) {
	requestId := uuid.New()
	log := c.log.WithFields(logrus.Fields{
		"method":    method,
		"path":      path,
		"requestId": requestId.String(),
	})

	var bodyReader io.Reader
	if data != nil {
		body, err := json.Marshal(data)
		if err != nil {
			log.WithError(err).Error("Cannot marshal request body")
			return nil, &TransportError{Op: "marshal request body", Err: err}
		}
		bodyReader = bytes.NewBuffer(body)
	}

	url := c.apiBaseUrl + path
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		log.WithError(err).Error("Cannot create new request")
		return nil, &TransportError{Op: "create request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestId.String())
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		if c.tokenSource == nil {
			return nil, errors.New("no token source configured, authenticate first")
		}

		accessToken, err := c.tokenSource.AccessToken()
		if err != nil {
			log.WithError(err).Error("Cannot load access token")
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	log.Debug("Send gocardless request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Cannot send request")
		return nil, &TransportError{Op: "send request", Err: err}
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Cannot read gocardless response body")
		return nil, &TransportError{Op: "read response body", Err: err}
	}

	log.WithFields(logrus.Fields{
		"statusCode": resp.StatusCode,
		"bodyLength": len(respBody),
	}).Debug("Response received from gocardless")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("body", string(respBody)).Warn("Received error from gocardless")
		return nil, &ApiError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}
