package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sumplot/sumplot/internal/model"
)

const calcRequestTimeout = 15 * time.Second

// CalcClient is the HTTP client the presentation surface uses to reach the
// calculation service.
type CalcClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCalcClient(baseURL string) *CalcClient {
	return &CalcClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: calcRequestTimeout,
		},
	}
}

// Calculate posts both operands to the calculation service and returns the sum.
func (c *CalcClient) Calculate(ctx context.Context, number1, number2 float64) (float64, error) {
	payload, err := json.Marshal(model.CalculationRequest{
		Number1: &number1,
		Number2: &number2,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal calculation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create calculation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("calculation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return 0, fmt.Errorf("calculation service returned %d: %s", resp.StatusCode, errBody.Error)
		}
		return 0, fmt.Errorf("calculation service returned status %d", resp.StatusCode)
	}

	var result model.CalculationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode calculation response: %w", err)
	}

	return result.Result, nil
}
