package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ErrDelivery indicates a Telegram delivery failure: missing credentials,
// missing local file, or a non-success HTTP status.
var ErrDelivery = errors.New("telegram delivery failed")

// DefaultAPIBase is the Telegram Bot API host. Overridable for tests.
const DefaultAPIBase = "https://api.telegram.org"

// TelegramNotifier posts text and file payloads to a single chat via the
// Telegram Bot API. No retries, no batching.
type TelegramNotifier struct {
	APIBase  string
	BotToken string
	ChatID   string
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		APIBase:  DefaultAPIBase,
		BotToken: botToken,
		ChatID:   chatID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (t *TelegramNotifier) checkCredentials() error {
	if t.BotToken == "" || t.ChatID == "" {
		return fmt.Errorf("%w: bot token or chat id not configured", ErrDelivery)
	}
	return nil
}

func (t *TelegramNotifier) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.APIBase, t.BotToken, method)
}

// SendMessage posts a Markdown-formatted text message with link previews
// disabled.
func (t *TelegramNotifier) SendMessage(text string) error {
	if err := t.checkCredentials(); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"chat_id":                  t.ChatID,
		"text":                     text,
		"parse_mode":               "Markdown",
		"disable_web_page_preview": true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrDelivery, err)
	}

	resp, err := t.Client.Post(t.endpoint("sendMessage"), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: send message: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: sendMessage status %d, body: %s", ErrDelivery, resp.StatusCode, string(respBody))
	}
	return nil
}

// SendPhoto uploads a local image with an optional Markdown caption.
func (t *TelegramNotifier) SendPhoto(photoPath, caption string) error {
	return t.sendFile("sendPhoto", "photo", photoPath, caption)
}

// SendDocument uploads an arbitrary local file with an optional caption.
func (t *TelegramNotifier) SendDocument(filePath, caption string) error {
	return t.sendFile("sendDocument", "document", filePath, caption)
}

func (t *TelegramNotifier) sendFile(method, field, path, caption string) error {
	if err := t.checkCredentials(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrDelivery, path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("chat_id", t.ChatID)
	_ = w.WriteField("caption", caption)
	_ = w.WriteField("parse_mode", "Markdown")
	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%w: build form: %v", ErrDelivery, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrDelivery, path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: finish form: %v", ErrDelivery, err)
	}

	resp, err := t.Client.Post(t.endpoint(method), w.FormDataContentType(), &buf)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDelivery, method, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s status %d, body: %s", ErrDelivery, method, resp.StatusCode, string(respBody))
	}
	return nil
}
