package api

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"

	"github.com/consistencyhq/consistency-cli/internal/constants"
	"github.com/consistencyhq/consistency-cli/internal/logger"
	"github.com/consistencyhq/consistency-cli/internal/models"
)

// FallbackQuotes is shown whenever the quote service is unreachable.
var FallbackQuotes = []models.Quote{
	{
		Content: "Believe you can and you're halfway there.",
		Author:  "Theodore Roosevelt",
	},
	{
		Content: "It does not matter how slowly you go as long as you do not stop.",
		Author:  "Confucius",
	},
	{
		Content: "Small changes eventually add up to huge results.",
		Author:  "Anonymous",
	},
}

// FetchRandomQuote fetches an inspirational quote from the third-party
// quote service. It never fails: any error falls back to a random local
// quote. The request goes through the shared HTTP client, so the mock
// interceptor sees it and passes it through (the quote host is on its
// denylist).
func (c *Client) FetchRandomQuote(ctx context.Context) models.Quote {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, constants.QuoteAPIURL, nil)
	if err != nil {
		return randomFallbackQuote()
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Debug("quote fetch failed, using fallback", "error", err)
		return randomFallbackQuote()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("quote fetch failed, using fallback", "status", resp.StatusCode)
		return randomFallbackQuote()
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return randomFallbackQuote()
	}

	var quote models.Quote
	if err := json.Unmarshal(data, &quote); err != nil || quote.Content == "" {
		return randomFallbackQuote()
	}

	return quote
}

func randomFallbackQuote() models.Quote {
	return FallbackQuotes[rand.Intn(len(FallbackQuotes))]
}
