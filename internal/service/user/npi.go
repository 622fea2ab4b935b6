package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/credtrack/credtrack-backend/internal/adapter/provider/npi"
	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// ValidateNPI checks the NPI's Luhn digit, looks it up in the NPPES
// registry and stores the number with a registry snapshot. A number that
// passes the checksum but is absent from the registry is stored unverified.
func (s *Service) ValidateNPI(ctx context.Context, number string) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !npi.ValidChecksum(number) {
		return nil, domain.NewValidationError("npi_number", "invalid NPI number")
	}

	record, err := s.registry.Lookup(ctx, number)
	if err != nil {
		// Registry outage: keep the checksum-validated number, mark it
		// unverified so a later attempt can finish the job.
		s.log.WarnContext(ctx, "npi registry lookup failed",
			slog.String("error", err.Error()),
		)
		return s.users.SetNPI(ctx, userID, number, false, nil)
	}
	if record == nil {
		return s.users.SetNPI(ctx, userID, number, false, nil)
	}

	data, err := recordToMap(record)
	if err != nil {
		return nil, fmt.Errorf("encode registry snapshot: %w", err)
	}

	u, err := s.users.SetNPI(ctx, userID, number, true, data)
	if err != nil {
		return nil, fmt.Errorf("store npi: %w", err)
	}

	s.log.InfoContext(ctx, "npi verified",
		slog.String("user_id", userID.String()),
		slog.String("npi_number", number),
	)

	return u, nil
}

// RemoveNPI clears the stored NPI number and registry snapshot.
func (s *Service) RemoveNPI(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.ClearNPI(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("clear npi: %w", err)
	}

	s.log.InfoContext(ctx, "npi removed", slog.String("user_id", userID.String()))

	return u, nil
}

func recordToMap(record *npi.Record) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
