// Package vision calls a vision-capable model to read CME certificate
// documents. It returns the model's raw text; turning that text into
// normalized fields belongs to the extraction service.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/credtrack/credtrack-backend/internal/config"
)

// Provider sends certificate images to the Anthropic API.
type Provider struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider creates a Provider from the extraction config.
func NewProvider(cfg config.ExtractionConfig, logger *slog.Logger) *Provider {
	return &Provider{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "vision"),
	}
}

// ExtractCertificate sends one certificate image and returns the raw model
// response text. The call is bounded by the configured timeout regardless
// of the parent context.
func (p *Provider) ExtractCertificate(ctx context.Context, image []byte, mediaType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.log.DebugContext(ctx, "vision request",
		slog.String("media_type", mediaType),
		slog.Int("image_bytes", len(image)),
	)

	encoded := base64.StdEncoding.EncodeToString(image)

	// PDFs go in a document block; the image block only accepts raster
	// formats.
	fileBlock := anthropic.NewImageBlockBase64(mediaType, encoded)
	if mediaType == "application/pdf" {
		fileBlock = anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded})
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				fileBlock,
				anthropic.NewTextBlock(extractionPrompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision: api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("vision: empty response")
	}

	return msg.Content[0].Text, nil
}

const extractionPrompt = `This image is a continuing medical education (CME) certificate.

Read it and output ONLY a valid JSON object with this exact schema:
{
  "title": "<activity or course title>",
  "provider": "<accrediting or issuing organization>",
  "credits": <number of credits awarded>,
  "credit_type": "<credit designation exactly as printed, e.g. AMA PRA Category 1 Credit(s)>",
  "subject": "<medical subject or specialty, if stated>",
  "completion_date": "<date of completion, YYYY-MM-DD if possible>",
  "expiration_date": "<expiration date if printed, else null>",
  "certificate_number": "<certificate or reference number if printed, else null>"
}

Rules:
- Use null for any field you cannot read from the certificate
- Keep the credit designation verbatim, do not abbreviate it
- Output ONLY the JSON, no markdown, no explanations`
