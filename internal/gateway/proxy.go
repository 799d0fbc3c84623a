package gateway

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/minimarket/admin-api/pkg/logger"
)

// Proxy forwards requests to the admin API upstream.
type Proxy struct {
	upstream string
	client   *http.Client
}

// NewProxy creates a proxy against the given upstream base URL.
func NewProxy(upstream string) *Proxy {
	return &Proxy{
		upstream: strings.TrimRight(upstream, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Forward relays the request to the upstream and copies the response
// back onto the fiber context.
func (p *Proxy) Forward(c *fiber.Ctx) error {
	targetURL := p.upstream + string(c.Request().URI().Path())
	if query := string(c.Request().URI().QueryString()); query != "" {
		targetURL += "?" + query
	}

	req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create request",
		})
	}

	p.copyRequestHeaders(c, req)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Logger.Error().
			Err(err).
			Str("target", targetURL).
			Msg("Upstream unreachable")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to reach admin API",
		})
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
	c.Status(resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read response",
		})
	}
	return c.Send(body)
}

// CheckHealth probes the upstream health endpoint.
func (p *Proxy) CheckHealth() error {
	resp, err := p.client.Get(p.upstream + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fiber.NewError(fiber.StatusBadGateway, "upstream unhealthy")
	}
	return nil
}

func (p *Proxy) copyRequestHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		if strings.ToLower(string(key)) == "host" {
			return
		}
		req.Header.Set(string(key), string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}
