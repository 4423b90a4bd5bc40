package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openweb3-io/chaindata/types"
)

// Client is the low-level HTTP client for the hosted chaindata API. The
// heavy lifting (decoding raw chain data, classification, pricing) happens
// on the service side; this client only issues requests and maps JSON.
type Client struct {
	URL     string
	Http    *http.Client
	Network string
	ApiKey  string
}

const ApiKeyHeader = "x-api-key"

// Status is the service's error envelope for non-200 responses.
type Status struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewClient returns a new hosted-API Client.
func NewClient(url string, apiKey string) *Client {
	url = strings.TrimSuffix(url, "/")
	return &Client{
		URL:    url,
		Http:   &http.Client{},
		ApiKey: apiKey,
	}
}

// Base64 encode if needed
func encodeApiKeyUserPassword(userPwMaybe string) string {
	if strings.Contains(userPwMaybe, ":") {
		return base64.StdEncoding.EncodeToString([]byte(userPwMaybe))
	}
	return userPwMaybe
}

// ApiCall issues a request against a path under the configured base URL.
func (client *Client) ApiCall(ctx context.Context, method string, path string, data interface{}) ([]byte, error) {
	apiURL := fmt.Sprintf("%s/v1%s", client.URL, path)
	return client.ApiCallWithUrl(ctx, method, apiURL, data)
}

func (client *Client) ApiCallWithUrl(ctx context.Context, method string, url string, data interface{}) ([]byte, error) {
	// Serialize the request
	var req *http.Request
	var err error
	if data != nil {
		buf := new(bytes.Buffer)
		json.NewEncoder(buf).Encode(data)
		req, err = http.NewRequestWithContext(ctx, method, url, buf)
	} else {
		// provide untyped nil to use no body. any "typed" nil will cause panic.
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	if client.Network != "" {
		req.Header.Add("network", client.Network)
	}
	if client.ApiKey != "" {
		req.Header.Set(ApiKeyHeader, encodeApiKeyUserPassword(client.ApiKey))
	}
	logrus.WithFields(logrus.Fields{
		"method":  method,
		"url":     url,
		"network": client.Network,
	}).Debug("chaindata request")

	// Send the request
	res, err := client.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	bz, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"body":   string(bz),
		"status": res.StatusCode,
	}).Debug("chaindata response")

	// Return error if HTTP return error
	if res.StatusCode != 200 {
		var r Status
		err = json.Unmarshal(bz, &r)
		if err != nil || r.Message == "" {
			return nil, types.WrapErr(&types.Error{
				Code:      int32(res.StatusCode),
				Message:   http.StatusText(res.StatusCode),
				Retriable: res.StatusCode >= 500,
			}, nil)
		}
		return nil, &types.Error{
			Code:      r.Code,
			Message:   r.Message,
			Retriable: res.StatusCode >= 500,
		}
	}

	return bz, nil
}

// Get issues a GET and unmarshals the response into out.
func (client *Client) Get(ctx context.Context, path string, out interface{}) error {
	bz, err := client.ApiCall(ctx, "GET", path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, out)
}

// Post issues a POST with a JSON body and unmarshals the response into out.
func (client *Client) Post(ctx context.Context, path string, data interface{}, out interface{}) error {
	bz, err := client.ApiCall(ctx, "POST", path, data)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, out)
}
