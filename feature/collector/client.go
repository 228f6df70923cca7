package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

// TokenFile is the credentials file read by the CLI client, relative to the
// home directory. It holds TOKEN= and URL= lines.
const TokenFile = ".fpntoken"

// ErrNoCredentials is returned when no token or URL could be found.
var ErrNoCredentials = errors.New("missing collector credentials")

// Credentials locate and authenticate against a collector server.
type Credentials struct {
	Token string
	URL   string
}

// LoadCredentials fills the blanks of flags from the COLLECTOR_TOKEN and
// COLLECTOR_URL environment variables, then from the credentials file.
func LoadCredentials(flags Credentials, file string) (Credentials, error) {
	creds := flags
	if creds.Token == "" {
		creds.Token = os.Getenv("COLLECTOR_TOKEN")
	}
	if creds.URL == "" {
		creds.URL = os.Getenv("COLLECTOR_URL")
	}

	if (creds.Token == "" || creds.URL == "") && file != "" {
		values, err := godotenv.Read(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return creds, fmt.Errorf("failed to read %s: %w", file, err)
		}
		if creds.Token == "" {
			creds.Token = strings.TrimSpace(values["TOKEN"])
		}
		if creds.URL == "" {
			creds.URL = strings.TrimSpace(values["URL"])
		}
	}

	if creds.Token == "" || creds.URL == "" {
		return creds, fmt.Errorf("%w: pass --token and --url or put TOKEN= and URL= lines into ~/%s", ErrNoCredentials, TokenFile)
	}
	return creds, nil
}

// DefaultTokenFile returns the credentials file in the home directory.
func DefaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, TokenFile)
}

// Client talks to a collector server.
type Client struct {
	creds   Credentials
	timeout time.Duration
}

// NewClient creates a client. A zero timeout means 60 seconds.
func NewClient(creds Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{creds: creds, timeout: timeout}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.creds.URL, "/") + path
}

func (c *Client) do(agent *fiber.Agent, out any) error {
	agent.Set(fiber.HeaderAuthorization, "Token "+c.creds.Token).Timeout(c.timeout)
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("invalid collector url: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("server returned HTTP %d: %s", code, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid server response: %w", err)
	}
	return nil
}

// Sync submits command output for a device.
func (c *Client) Sync(req Request) (Response, error) {
	var out Response
	err := c.do(fiber.Post(c.url("/api/collector/")).JSON(req), &out)
	return out, err
}

// Commands fetches the command listing.
func (c *Client) Commands() (map[string]string, error) {
	var out struct {
		Result bool              `json:"result"`
		Detail map[string]string `json:"detail"`
	}
	if err := c.do(fiber.Get(c.url("/api/collector/commands")), &out); err != nil {
		return nil, err
	}
	return out.Detail, nil
}
