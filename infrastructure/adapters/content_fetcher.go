package adapters

import (
	"io"
	"net/http"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/domain"
)

type ContentFetcher interface {
	FetchContent(req *http.Request, provider domain.Provider) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request, provider domain.Provider) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method":   req.Method,
			"URL":      req.URL.String(),
			"provider": provider,
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		closeErr := body.Close()
		if closeErr != nil {
			c.logger.Error(closeErr, "Failed to close the response body")
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method":   req.Method,
			"URL":      req.URL.String(),
			"provider": provider,
		})
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.logger.ErrorWithFields(nil, "HTTP request returned non-success status code", map[string]interface{}{
			"method":   req.Method,
			"URL":      req.URL.String(),
			"status":   res.StatusCode,
			"provider": provider,
			"message":  string(payload),
		})
		return nil, &domain.ProviderError{
			Provider:   provider,
			StatusCode: res.StatusCode,
			Body:       string(payload),
		}
	}

	return payload, nil
}
