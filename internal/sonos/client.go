// Package sonos dispatches commands to the local speaker HTTP service.
//
// The service is an opaque collaborator: every command is a plain GET,
// the response body is discarded, and the status code is not inspected.
// A transport failure is logged and otherwise swallowed so a flaky
// service never turns a convenience command into a hard failure.
package sonos

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/homeline/sonoctl/internal/config"
)

// Client fires commands at the speaker HTTP service.
type Client struct {
	base       string
	httpClient *http.Client
	groupDelay time.Duration
	log        *log.Entry
}

// New creates a client for the configured service. Every call made
// through the client carries the same request id in its log lines, so
// multi-call operations can be correlated.
func New(cfg *config.Config) *Client {
	return &Client{
		base:       strings.TrimRight(cfg.APIBase, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		groupDelay: cfg.GroupDelay(),
		log:        log.WithField("request_id", uuid.NewString()),
	}
}

// RoomAction issues /{room}/{action}.
func (c *Client) RoomAction(room, action string) {
	c.get("/" + encodeSegment(room) + "/" + action)
}

// RoomActionValue issues /{room}/{action}/{value}.
func (c *Client) RoomActionValue(room, action, value string) {
	c.get("/" + encodeSegment(room) + "/" + action + "/" + encodeSegment(value))
}

// ApplyPreset issues /preset/{name}, asking the service to form the
// named speaker group.
func (c *Client) ApplyPreset(name string) {
	c.get("/preset/" + encodeSegment(name))
}

// PauseAll issues /pauseall.
func (c *Client) PauseAll() {
	c.get("/pauseall")
}

// Say issues /{room}/say/{message} for a single-room announcement.
func (c *Client) Say(room, message string) {
	c.get("/" + encodeSegment(room) + "/say/" + encodeSegment(message))
}

// SayAll issues /sayall/{message}, announcing on every speaker.
func (c *Client) SayAll(message string) {
	c.get("/sayall/" + encodeSegment(message))
}

// PlayPlaylist starts playlist playback on a room: one call to start
// playback from the content URI, then repeat, then shuffle. The three
// calls are sequential with no rollback; a partial failure leaves the
// device in a mixed state.
func (c *Client) PlayPlaylist(room, uri string, repeat string, shuffle bool) {
	c.get("/" + encodeSegment(room) + "/" + encodeSegment(uri))
	c.get("/" + encodeSegment(room) + "/repeat/" + repeat)
	if shuffle {
		c.get("/" + encodeSegment(room) + "/shuffle/on")
	} else {
		c.get("/" + encodeSegment(room) + "/shuffle/off")
	}
}

// FormGroup applies a preset and waits the configured delay for the
// group to converge before the caller addresses the coordinator.
func (c *Client) FormGroup(preset string) {
	c.ApplyPreset(preset)
	time.Sleep(c.groupDelay)
}

func (c *Client) get(path string) {
	url := c.base + path
	c.log.Debugf("GET %s", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		// Fire-and-forget: warn but never fail the invocation.
		c.log.Warnf("request failed: %v", err)
		return
	}
	resp.Body.Close()
}

// encodeSegment percent-encodes spaces in a free-text path segment.
// Only the space character is handled; room names and messages with
// other reserved characters pass through verbatim.
func encodeSegment(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}
