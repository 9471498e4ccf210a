package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxErrorBodyLength = 256

type httpResponseGetter struct {
	httpClient *http.Client
}

// NewHttpResponseGetter returns a new instance of the HTTP response getter. A zero timeout means no timeout
func NewHttpResponseGetter(requestTimeout time.Duration) (*httpResponseGetter, error) {
	if requestTimeout < 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidRequestTimeout, requestTimeout)
	}

	return &httpResponseGetter{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// Get executes a GET request on the provided URL and unmarshals the JSON body into the response
func (getter *httpResponseGetter) Get(ctx context.Context, url string, response interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := getter.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s, body: %s", ErrUnexpectedHttpStatus, resp.Status, truncate(body, maxErrorBodyLength))
	}

	return json.Unmarshal(body, response)
}

func truncate(body []byte, maxLength int) string {
	if len(body) <= maxLength {
		return string(body)
	}

	return string(body[:maxLength]) + "..."
}

// IsInterfaceNil returns true if there is no value under the interface
func (getter *httpResponseGetter) IsInterfaceNil() bool {
	return getter == nil
}
