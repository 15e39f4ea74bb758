package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production":
	default:
		return fmt.Errorf("env must be development or production (got %q)", c.Env)
	}

	if err := validateURL("monday.api_url", c.Monday.APIURL); err != nil {
		return err
	}
	if err := validateURL("monday.file_url", c.Monday.FileURL); err != nil {
		return err
	}
	if err := validateURL("supabase.url", c.Supabase.URL); err != nil {
		return err
	}

	if c.Monday.BoardID == c.Monday.ExpensesBoardID {
		return fmt.Errorf("board_id and expenses_board_id must differ (got %q)", c.Monday.BoardID)
	}

	if err := c.Monday.Columns.validate(); err != nil {
		return fmt.Errorf("monday.columns: %w", err)
	}

	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("session.max_age must be > 0 (got %d)", c.Session.MaxAge)
	}
	if !strings.HasPrefix(c.Session.LoginPath, "/") {
		return fmt.Errorf("session.login_path must start with / (got %q)", c.Session.LoginPath)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	return nil
}

func (t *ColumnTitles) validate() error {
	for name, value := range map[string]string{
		"start":          t.Start,
		"end":            t.End,
		"pause":          t.Pause,
		"project":        t.Project,
		"employee":       t.Employee,
		"description":    t.Description,
		"expense_amount": t.ExpenseAmount,
		"receipt":        t.Receipt,
		"involvement":    t.Involvement,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s title must not be empty", name)
		}
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
	}
	return nil
}
