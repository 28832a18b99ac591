package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SamuelLeutner/student-risk-dashboard/config"
	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/utils"
)

// FetchError reports a failed read of the records endpoint: transport
// failure, non-2xx status or an undecodable body.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type StudentsClient struct {
	Config      *config.Config
	Client      *http.Client
	token       string
	tokenExpiry time.Time
	muAuth      sync.Mutex
}

func NewStudentsClient(config *config.Config) *StudentsClient {
	return &StudentsClient{
		Config: config,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *StudentsClient) MakeRequest(ctx context.Context, method, url string, headers map[string]string, body io.Reader) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.Config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			log.Printf("Request '%s %s' cancelled via context before attempt %d: %v", method, utils.SplitURL(url), attempt+1, ctx.Err())
			return nil, &FetchError{URL: utils.SplitURL(url), Err: ctx.Err()}
		default:
		}

		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, &FetchError{URL: utils.SplitURL(url), Err: fmt.Errorf("error creating request: %w", err)}
		}

		for key, value := range headers {
			req.Header.Set(key, value)
		}

		log.Printf("Request (%s): %s (Attempt %d/%d)...", method, utils.SplitURL(url), attempt+1, c.Config.MaxRetries+1)

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = &FetchError{URL: utils.SplitURL(url), Err: fmt.Errorf("http client error: %w", err)}
		} else {
			bodyBytes, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()

			switch {
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				if readErr != nil {
					return nil, &FetchError{URL: utils.SplitURL(url), StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response body: %w", readErr)}
				}
				return bodyBytes, nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = &FetchError{URL: utils.SplitURL(url), StatusCode: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(bodyBytes)))}
			default:
				log.Printf("HTTP %d error: %s", resp.StatusCode, string(bodyBytes))
				return nil, &FetchError{URL: utils.SplitURL(url), StatusCode: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(bodyBytes)))}
			}
		}

		if attempt >= c.Config.MaxRetries {
			break
		}

		delay := c.Config.RetryDelay * time.Duration(1<<attempt)
		log.Printf("Request failed (attempt %d/%d): %v. Waiting %s before retrying...", attempt+1, c.Config.MaxRetries+1, lastErr, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			log.Printf("Context cancelled during retry wait for %s: %v", utils.SplitURL(url), ctx.Err())
			return nil, &FetchError{URL: utils.SplitURL(url), Err: ctx.Err()}
		}
	}
	return nil, lastErr
}

// FetchStudents reads the records endpoint once. Any failure is returned
// as a *FetchError.
func (c *StudentsClient) FetchStudents(ctx context.Context) ([]models.RawRecord, error) {
	url := c.Config.StudentsURL()
	log.Println("Iniciando busca de dados da API...")

	headers := map[string]string{
		"Accept": "application/json",
	}

	token, err := c.GetAuthToken(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	body, err := c.MakeRequest(ctx, http.MethodGet, url, headers, nil)
	if err != nil {
		return nil, err
	}

	var records []models.RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &FetchError{URL: utils.SplitURL(url), Err: fmt.Errorf("error parsing API response: %w", err)}
	}

	log.Printf("Dados da API recebidos: %d alunos.", len(records))
	return records, nil
}
