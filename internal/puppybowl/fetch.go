package puppybowl

import "context"

// FetchAllPlayers returns the roster, or nil when the request failed. The failure has
// already been logged by the fetcher.
func FetchAllPlayers(ctx context.Context, fetcher Fetcher) Roster {
	players, err := fetcher.Players(ctx)
	if err != nil {
		return nil
	}

	return players
}

// FetchSinglePlayer returns the player, or nil when the request failed.
func FetchSinglePlayer(ctx context.Context, fetcher Fetcher, playerID int) *Player {
	player, err := fetcher.Player(ctx, playerID)
	if err != nil {
		return nil
	}

	return &player
}
