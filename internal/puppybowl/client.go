// Package puppybowl implements a read only client for the Puppy Bowl players api.
package puppybowl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leighmacdonald/puppybowl-tui/internal/network"
	"github.com/oapi-codegen/runtime"
)

// ErrRequestFailed is the only failure kind surfaced by the client. It covers transport
// failures, unexpected statuses and undecodable responses alike.
var ErrRequestFailed = errors.New("request failed")

var (
	errAPI           = errors.New("api reported failure")
	errMissingPlayer = errors.New("response did not contain a player")
)

// Fetcher is the read side of the players api.
type Fetcher interface {
	Players(ctx context.Context) (Roster, error)
	Player(ctx context.Context, playerID int) (Player, error)
}

// Client fetches players from a single cohort scoped api root. Every call is a single
// attempt; there is no retrying or caching of results.
type Client struct {
	baseURL    string
	httpClient network.HTTPDoer
}

// New creates a client for the cohort root, eg: https://fsa-puppy-bowl.herokuapp.com/api/2307-FSA-ET-WEB-FT-SF
func New(baseURL string, httpClient network.HTTPDoer) *Client {
	if httpClient == nil {
		httpClient = network.NewClient(15 * time.Second)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the cohort root the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Players fetches the full roster.
func (c *Client) Players(ctx context.Context) (Roster, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := network.FetchJSON[envelope[playersData]](ctx, c.httpClient, c.baseURL+"/players", requestHeaders(requestID))
	if err == nil {
		err = resp.err()
	}

	if err != nil {
		slog.Error("Trouble fetching players", slog.String("error", err.Error()),
			slog.String("request_id", requestID))

		return nil, errors.Join(err, ErrRequestFailed)
	}

	slog.Debug("Fetched players", slog.Int("count", len(resp.Data.Players)),
		slog.String("request_id", requestID), slog.Duration("duration", time.Since(start)))

	return resp.Data.Players, nil
}

// Player fetches a single player by id.
func (c *Client) Player(ctx context.Context, playerID int) (Player, error) {
	requestID := uuid.NewString()
	start := time.Now()

	player, err := c.player(ctx, playerID, requestID)
	if err != nil {
		slog.Error(fmt.Sprintf("Trouble fetching player #%d", playerID), slog.String("error", err.Error()),
			slog.Int("player_id", playerID), slog.String("request_id", requestID))

		return Player{}, errors.Join(err, ErrRequestFailed)
	}

	slog.Debug("Fetched player", slog.Int("player_id", playerID),
		slog.String("request_id", requestID), slog.Duration("duration", time.Since(start)))

	return player, nil
}

func (c *Client) player(ctx context.Context, playerID int, requestID string) (Player, error) {
	pathParam, errParam := runtime.StyleParamWithLocation("simple", false, "playerId", runtime.ParamLocationPath, playerID)
	if errParam != nil {
		return Player{}, errParam
	}

	resp, errResp := network.FetchJSON[envelope[playerData]](ctx, c.httpClient, c.baseURL+"/players/"+pathParam, requestHeaders(requestID))
	if errResp != nil {
		return Player{}, errResp
	}

	if err := resp.err(); err != nil {
		return Player{}, err
	}

	if resp.Data.Player == nil {
		return Player{}, errMissingPlayer
	}

	return *resp.Data.Player, nil
}

func (e envelope[T]) err() error {
	if e.Error != nil {
		return fmt.Errorf("%w: %s", errAPI, e.Error.Message)
	}

	if e.Success != nil && !*e.Success {
		return errAPI
	}

	return nil
}

func requestHeaders(requestID string) http.Header {
	headers := http.Header{}
	headers.Set("X-Request-ID", requestID)

	return headers
}
