package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

const (
	NotAvailable = "-"

	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	defaultJSONIndent = 2
)

var (
	ErrBaseURLRequired = errors.New("a CMS base URL is required, use --base-url or CMSCTL_BASE_URL")
	ErrBrandRequired   = errors.New("a brand is required, use --brand or CMSCTL_BRAND")
)

// EnvKeyReplacer maps flag names like base-url to CMSCTL_BASE_URL
var EnvKeyReplacer = strings.NewReplacer("-", "_")

// CreateClient builds a CMS client from the global flags, environment and config file
func CreateClient() (drupal.Client, error) {
	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	brand := viper.GetString("brand")
	if brand == "" {
		return nil, ErrBrandRequired
	}

	return drupal.New(baseURL,
		drupal.Brand(brand),
		drupal.APIKey(viper.GetString("api-key")),
		drupal.Debug(strconv.FormatBool(viper.GetBool("debug"))),
	), nil
}

// render writes v in the configured output format, using table to fill in
// the table format
func render(w io.Writer, v any, table func(t *tablewriter.Table)) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode as JSON: %w", err)
		}
		return nil
	case OutputFormatYAML:
		return renderYAML(w, v)
	default:
		t := tablewriter.NewWriter(w)
		table(t)
		return t.Render()
	}
}

// renderYAML goes through JSON so that the yaml keys match the json field names
func renderYAML(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	var doc any
	if err = yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	_, err = w.Write(out)
	return err
}

func formatDate(t time.Time, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return t.Format("2006-01-02 15:04")
}

func formatDuration(c content.Course) string {
	return strconv.FormatFloat(c.Duration, 'f', -1, 64) + " " + string(c.DurationUnit)
}

func optional(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

func categoryNames(categories []content.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if len(names) == 0 {
		return NotAvailable
	}
	return strings.Join(names, ", ")
}

func trainerNames(trainers []content.Trainer) string {
	names := make([]string, 0, len(trainers))
	for _, t := range trainers {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		return NotAvailable
	}
	return strings.Join(names, ", ")
}
