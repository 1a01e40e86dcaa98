package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Config holds the relay endpoint settings
type Config struct {
	URL       string
	Key       string
	Player    string
	Namespace string
}

// Validate checks the settings required to send commands
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New(ErrMsgMissingURL)
	}
	if c.Player == "" {
		return errors.New(ErrMsgMissingPlayer)
	}
	return nil
}

// CommandRequest is the JSON body posted to the relay
type CommandRequest struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

// Client posts in-game commands to the relay endpoint
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a relay client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// GiveCommand renders the command that hands itemID to the configured player
func (c *Client) GiveCommand(itemID string) string {
	return fmt.Sprintf(GiveCommandFmt, c.cfg.Player, c.cfg.Namespace, strings.ToLower(itemID))
}

// Give sends one give command. The response body is ignored.
func (c *Client) Give(ctx context.Context, itemID string) error {
	body, err := json.Marshal(CommandRequest{
		Command: c.GiveCommand(itemID),
		Key:     c.cfg.Key,
	})
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeRequestFmt, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf(ErrMsgBuildRequestFmt, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(ErrMsgSendFmt, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf(ErrMsgStatusFmt, resp.StatusCode)
	}
	return nil
}
