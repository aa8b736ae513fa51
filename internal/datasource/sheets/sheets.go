// Package sheets reads spending categories and habits from a Google
// Spreadsheet. Resources the spreadsheet does not hold are served by a
// fallback source.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/log"
)

// Config names the spreadsheet, its tabs and the service account.
type Config struct {
	SpreadsheetID   string
	SpendingSheet   string
	HabitsSheet     string
	CredentialsFile string
	CredentialsJSON string
}

// valuesReader is the one Sheets call the client needs.
type valuesReader interface {
	Values(ctx context.Context, rng string) ([][]interface{}, error)
}

type serviceReader struct {
	svc           *gsheet.Service
	spreadsheetID string
}

func (r serviceReader) Values(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// Client serves SpendingCategories and Habits from the spreadsheet and
// everything else from the embedded fallback.
type Client struct {
	datasource.Source
	reader        valuesReader
	spendingSheet string
	habitsSheet   string
	logger        *log.Logger
}

// New creates a Sheets client authenticated with a service account.
func New(ctx context.Context, cfg Config, fallback datasource.Source, logger *log.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if fallback == nil {
		return nil, errors.New("sheets: fallback source is required")
	}
	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return newClient(serviceReader{svc: svc, spreadsheetID: cfg.SpreadsheetID}, cfg, fallback, logger), nil
}

func newClient(reader valuesReader, cfg Config, fallback datasource.Source, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Discard()
	}
	spending := cfg.SpendingSheet
	if spending == "" {
		spending = "Spending"
	}
	habits := cfg.HabitsSheet
	if habits == "" {
		habits = "Habits"
	}
	return &Client{
		Source:        fallback,
		reader:        reader,
		spendingSheet: spending,
		habitsSheet:   habits,
		logger:        logger.WithComponent(log.ComponentSheets),
	}
}

func credentials(cfg Config) ([]byte, error) {
	switch {
	case cfg.CredentialsJSON != "":
		return []byte(cfg.CredentialsJSON), nil
	case cfg.CredentialsFile != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE)")
	}
}

func (c *Client) read(ctx context.Context, sheet string) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!A:Z", sheet)
	values, err := c.reader.Values(ctx, rng)
	if err != nil {
		c.logger.WarnContext(ctx, "Sheet read failed", "range", rng, log.FieldError, err)
		return nil, fmt.Errorf("%w: read %s: %v", datasource.ErrUnavailable, rng, err)
	}
	return values, nil
}

func (c *Client) SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error) {
	values, err := c.read(ctx, c.spendingSheet)
	if err != nil {
		return nil, err
	}
	obs, err := parseCategoryRows(values)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", datasource.ErrUnavailable, c.spendingSheet, err)
	}
	c.logger.DebugContext(ctx, "Spending categories read", log.FieldRecords, len(obs))
	return obs, nil
}

func (c *Client) Habits(ctx context.Context) ([]core.HabitObservation, error) {
	values, err := c.read(ctx, c.habitsSheet)
	if err != nil {
		return nil, err
	}
	habits, err := parseHabitRows(values)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", datasource.ErrUnavailable, c.habitsSheet, err)
	}
	return habits, nil
}

var _ datasource.Source = (*Client)(nil)
