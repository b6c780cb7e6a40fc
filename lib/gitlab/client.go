package gitlab

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the GitLab REST API.
//
// Calls within one command run sequentially; the only shared state is the
// underlying HTTP transport, which resty pools internally.
type Client struct {
	http *resty.Client
	log  *zap.SugaredLogger
}

// NewClient creates a GitLab API client for the given base URL
// (e.g. https://gitlab.example.com/api/v4) authenticated with a private
// token. The API is rate-sensitive, so a client-side limiter paces every
// request.
func NewClient(apiURL string, apiToken string, log *zap.SugaredLogger) *Client {
	limiter := rate.NewLimiter(rate.Every(time.Second/90), 1)

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(apiURL, "/")).
		SetHeader("PRIVATE-TOKEN", apiToken).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})

	log.Debugw("created GitLab client", "api_url", apiURL)

	return &Client{
		http: httpClient,
		log:  log,
	}
}
