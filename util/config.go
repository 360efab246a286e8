package util

import (
	"errors"
	"os"
)

type GoCardlessConfig struct {
	ApiBaseUrl string
	SecretId   Secret
	SecretKey  Secret
	UserAgent  string
}

type Config struct {
	GoCardlessConfig *GoCardlessConfig
}

func LoadConfig() (*Config, error) {
	goCardlessConfig, err := loadGoCardlessConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		GoCardlessConfig: goCardlessConfig,
	}, nil
}

func loadGoCardlessConfig() (*GoCardlessConfig, error) {
	apiBaseUrl, exists := os.LookupEnv("GOCARDLESS_API_BASE_URL")
	if !exists {
		apiBaseUrl = "https://bankaccountdata.gocardless.com/api/v2"
	}
	if string(apiBaseUrl[len(apiBaseUrl)-1]) == "/" {
		return nil, errors.New("gocardless api base url cannot end with a slash")
	}

	secretId, exists := os.LookupEnv("GOCARDLESS_SECRET_ID")
	if !exists {
		return nil, errors.New("missing gocardless secret id in env")
	}

	secretKey, exists := os.LookupEnv("GOCARDLESS_SECRET_KEY")
	if !exists {
		return nil, errors.New("missing gocardless secret key in env")
	}

	userAgent, exists := os.LookupEnv("GOCARDLESS_USER_AGENT")
	if !exists {
		userAgent = "GoCardlessBankData/1.0"
	}

	return &GoCardlessConfig{
		ApiBaseUrl: apiBaseUrl,
		SecretId:   NewSecret(secretId),
		SecretKey:  NewSecret(secretKey),
		UserAgent:  userAgent,
	}, nil
}
