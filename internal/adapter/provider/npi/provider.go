// Package npi looks up National Provider Identifier records in the NPPES
// public registry and validates NPI check digits.
package npi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/credtrack/credtrack-backend/internal/config"
)

// Record is the subset of an NPPES registry entry the application keeps.
type Record struct {
	Number       string   `json:"number"`
	Name         string   `json:"name"`
	Credential   string   `json:"credential,omitempty"`
	Organization bool     `json:"organization"`
	Taxonomies   []string `json:"taxonomies,omitempty"`
	State        string   `json:"state,omitempty"`
}

// Provider queries the NPPES NPI registry API.
type Provider struct {
	client *resty.Client
	log    *slog.Logger
}

// NewProvider creates a Provider from the registry config.
func NewProvider(cfg config.RegistryConfig, logger *slog.Logger) *Provider {
	client := resty.New().
		SetBaseURL(cfg.NPIBaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetHeader("Accept", "application/json")

	return &Provider{
		client: client,
		log:    logger.With("adapter", "npi"),
	}
}

type apiResponse struct {
	ResultCount int         `json:"result_count"`
	Results     []apiResult `json:"results"`
}

type apiResult struct {
	Number          string `json:"number"`
	EnumerationType string `json:"enumeration_type"`
	Basic           struct {
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		OrganizationName string `json:"organization_name"`
		Credential       string `json:"credential"`
	} `json:"basic"`
	Taxonomies []struct {
		Desc    string `json:"desc"`
		State   string `json:"state"`
		Primary bool   `json:"primary"`
	} `json:"taxonomies"`
}

// Lookup fetches the registry record for an NPI number.
// Returns nil, nil when the registry has no entry for it.
func (p *Provider) Lookup(ctx context.Context, number string) (*Record, error) {
	p.log.DebugContext(ctx, "npi registry lookup", slog.String("number", number))

	var response apiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("version", "2.1").
		SetQueryParam("number", number).
		SetResult(&response).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("npi: registry request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("npi: registry status %d", resp.StatusCode())
	}

	if response.ResultCount == 0 || len(response.Results) == 0 {
		return nil, nil
	}

	return toRecord(response.Results[0]), nil
}

func toRecord(r apiResult) *Record {
	record := &Record{
		Number:       r.Number,
		Credential:   r.Basic.Credential,
		Organization: r.EnumerationType == "NPI-2",
	}

	if record.Organization {
		record.Name = r.Basic.OrganizationName
	} else {
		record.Name = r.Basic.FirstName + " " + r.Basic.LastName
	}

	for _, tax := range r.Taxonomies {
		record.Taxonomies = append(record.Taxonomies, tax.Desc)
		if tax.Primary && tax.State != "" {
			record.State = tax.State
		}
	}

	return record
}
