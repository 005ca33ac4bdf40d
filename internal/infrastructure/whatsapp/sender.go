// Package whatsapp implementa el MessageSender sobre el WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/pkg/config"
	"github.com/tu-usuario/portaria-pro/pkg/logger"
)

var _ delivery.MessageSender = (*Sender)(nil)

const graphAPIBase = "https://graph.facebook.com/v20.0"

// Sender cliente del WhatsApp Cloud API. Si no hay AccessToken configurado
// opera en modo simulado: solo registra el envío (útil en development).
type Sender struct {
	cfg    config.WhatsAppConfig
	client *http.Client
	log    *logger.Logger
}

// NewSender construye el cliente con timeout propio.
func NewSender(cfg config.WhatsAppConfig, log *logger.Logger) *Sender {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Sender{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Send entrega el mensaje a todos los teléfonos como un evento atómico:
// el primer fallo aborta y el evento completo se reporta como fallido.
// Un timeout del proveedor llega como error y NO consume cuota (lo decide
// el caso de uso).
func (s *Sender) Send(ctx context.Context, phones []string, message string) error {
	if s.cfg.AccessToken == "" || s.cfg.PhoneNumberID == "" {
		s.log.Info().
			Int("phones", len(phones)).
			Str("message", message).
			Msg("whatsapp en modo simulado: envío omitido")
		return nil
	}
	for _, to := range phones {
		if err := s.sendText(ctx, to, message); err != nil {
			return fmt.Errorf("enviar a %s: %w", to, err)
		}
	}
	return nil
}

func (s *Sender) sendText(ctx context.Context, to, text string) error {
	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, s.cfg.PhoneNumberID)

	reqBody := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"body": text,
		},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp api: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
