package webdriver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/wingest/types"
	"github.com/mobile-next/wingest/utils"
)

const requestTimeout = 5 * time.Second

// ErrNoSession is returned for element queries when no session id is set.
var ErrNoSession = errors.New("no automation driver session configured")

// Client talks to a WebDriver compatible automation driver to learn where
// elements are on screen.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
	sizes      *lru.Cache[string, types.Size]
}

// NewClient creates a client for the driver listening at hostPort.
func NewClient(hostPort, sessionID string) *Client {
	baseURL := hostPort
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL:   baseURL,
		sessionID: sessionID,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// EnableSizeCache keeps up to entries element sizes in memory. Element
// locations are always fetched.
func (c *Client) EnableSizeCache(entries int) error {
	cache, err := lru.New[string, types.Size](entries)
	if err != nil {
		return fmt.Errorf("failed to create element size cache: %w", err)
	}
	c.sizes = cache
	return nil
}

// BaseURL returns the driver address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SessionID returns the configured session.
func (c *Client) SessionID() string {
	return c.sessionID
}

type driverError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type response struct {
	Value json.RawMessage `json:"value"`
}

// getEndpoint issues a GET and returns the "value" member of the reply.
func (c *Client) getEndpoint(endpoint string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch endpoint %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	var result response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("invalid JSON response from %s (HTTP %d): %w", endpoint, resp.StatusCode, err)
	}

	var driverErr driverError
	if err := json.Unmarshal(result.Value, &driverErr); err == nil && driverErr.Error != "" {
		return nil, fmt.Errorf("driver returned %s: %s", driverErr.Error, driverErr.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("driver returned HTTP %d for %s", resp.StatusCode, endpoint)
	}

	return result.Value, nil
}

func (c *Client) elementEndpoint(elementID, property string) (string, error) {
	if c.sessionID == "" {
		return "", ErrNoSession
	}
	return fmt.Sprintf("session/%s/element/%s/%s", c.sessionID, elementID, property), nil
}

// ElementLocation returns the top left corner of the element.
func (c *Client) ElementLocation(elementID string) (types.Point, error) {
	endpoint, err := c.elementEndpoint(elementID, "location")
	if err != nil {
		return types.Point{}, err
	}

	value, err := c.getEndpoint(endpoint)
	if err != nil {
		return types.Point{}, err
	}

	var location struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(value, &location); err != nil {
		return types.Point{}, fmt.Errorf("unexpected element location %s: %w", string(value), err)
	}

	return types.Point{X: int(location.X), Y: int(location.Y)}, nil
}

// ElementSize returns the element's width and height.
func (c *Client) ElementSize(elementID string) (types.Size, error) {
	endpoint, err := c.elementEndpoint(elementID, "size")
	if err != nil {
		return types.Size{}, err
	}

	if c.sizes != nil {
		if size, ok := c.sizes.Get(endpoint); ok {
			utils.Verbose("Using cached size for element %s", elementID)
			return size, nil
		}
	}

	value, err := c.getEndpoint(endpoint)
	if err != nil {
		return types.Size{}, err
	}

	var size struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(value, &size); err != nil {
		return types.Size{}, fmt.Errorf("unexpected element size %s: %w", string(value), err)
	}

	result := types.Size{Width: int(size.Width), Height: int(size.Height)}
	if c.sizes != nil {
		c.sizes.Add(endpoint, result)
	}
	return result, nil
}

// Status returns the driver's /status value.
func (c *Client) Status() (map[string]interface{}, error) {
	value, err := c.getEndpoint("status")
	if err != nil {
		return nil, err
	}

	var status map[string]interface{}
	if err := json.Unmarshal(value, &status); err != nil {
		return nil, fmt.Errorf("unexpected driver status %s: %w", string(value), err)
	}
	return status, nil
}
