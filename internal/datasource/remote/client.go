// Package remote reads data source records from the upstream REST API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/log"
)

// Upstream endpoint paths.
const (
	pathSpendingCategories = "/spending/categories"
	pathSpendingStatus     = "/spending/status"
	pathTotalSpending      = "/spending/total"
	pathHabits             = "/habits"
	pathAccomplishedHabits = "/accomplished_habits"
	pathComputedGoal       = "/goal/computed"
	pathWeeklyStreak       = "/streak/weekly"
	pathLongestStreak      = "/streak/longest"
	pathWeeklySavings      = "/savings/weekly"
)

const maxBodyBytes = 4 << 20

// Config configures the client.
type Config struct {
	BaseURL       string
	Token         string
	Timeout       time.Duration
	RatePerSecond int
	HTTPClient    *http.Client
}

// Client is a datasource.Source backed by the upstream API. Requests are
// not retried.
type Client struct {
	base    *url.URL
	token   string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// New validates cfg and builds a client.
func New(cfg Config, logger *log.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("remote: invalid base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RatePerSecond < 1 {
		cfg.RatePerSecond = 1
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Client{
		base:    base,
		token:   cfg.Token,
		timeout: cfg.Timeout,
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond),
		logger:  logger.WithComponent(log.ComponentRemote),
	}, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.Path, e.Status, e.Body)
}

// Unwrap lets callers match datasource.ErrUnavailable.
func (e *StatusError) Unwrap() error { return datasource.ErrUnavailable }

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Upstream request failed", log.FieldPath, path, log.FieldError, err)
		return fmt.Errorf("%w: GET %s: %v", datasource.ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Upstream request completed",
		log.FieldPath, path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", datasource.ErrUnavailable, path, err)
	}
	return nil
}

func (c *Client) SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error) {
	var out []core.CategoryObservation
	if err := c.get(ctx, pathSpendingCategories, &out); err != nil {
		return nil, err
	}
	for i, o := range out {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("%w: spending category %d: %v", datasource.ErrUnavailable, i, err)
		}
	}
	return out, nil
}

func (c *Client) SpendingStatus(ctx context.Context) (core.SpendingStatus, error) {
	var out core.SpendingStatus
	err := c.get(ctx, pathSpendingStatus, &out)
	return out, err
}

func (c *Client) TotalSpending(ctx context.Context) (core.TotalSpending, error) {
	var out core.TotalSpending
	err := c.get(ctx, pathTotalSpending, &out)
	return out, err
}

// upstreamHabit is the habit shape the API returns. It reports completion
// as a flag rather than a count.
type upstreamHabit struct {
	Description       string `json:"description"`
	WeeklyOccurrences int    `json:"weekly_occurrences"`
	Completed         *int   `json:"completed"`
	IsCompleted       bool   `json:"is_completed"`
}

func (c *Client) Habits(ctx context.Context) ([]core.HabitObservation, error) {
	var raw []upstreamHabit
	if err := c.get(ctx, pathHabits, &raw); err != nil {
		return nil, err
	}
	out := make([]core.HabitObservation, 0, len(raw))
	for _, h := range raw {
		obs := core.HabitObservation{
			Description:       h.Description,
			WeeklyOccurrences: h.WeeklyOccurrences,
			Completed:         h.Completed,
		}
		if obs.Completed == nil && h.IsCompleted {
			n := h.WeeklyOccurrences
			obs.Completed = &n
		}
		out = append(out, obs)
	}
	return out, nil
}

func (c *Client) AccomplishedHabits(ctx context.Context) ([]core.Accomplishment, error) {
	var out []core.Accomplishment
	if err := c.get(ctx, pathAccomplishedHabits, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ComputedGoal(ctx context.Context) (core.ComputedGoal, error) {
	var out core.ComputedGoal
	err := c.get(ctx, pathComputedGoal, &out)
	return out, err
}

func (c *Client) WeeklyStreak(ctx context.Context) (core.WeeklyStreak, error) {
	var out core.WeeklyStreak
	if err := c.get(ctx, pathWeeklyStreak, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LongestStreak(ctx context.Context) (core.LongestStreak, error) {
	var out core.LongestStreak
	err := c.get(ctx, pathLongestStreak, &out)
	return out, err
}

func (c *Client) WeeklySavings(ctx context.Context) (core.WeeklySavings, error) {
	var out core.WeeklySavings
	err := c.get(ctx, pathWeeklySavings, &out)
	return out, err
}

var _ datasource.Source = (*Client)(nil)
