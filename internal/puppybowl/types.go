package puppybowl

import "time"

// Team is the subset of the team resource embedded in a player record.
type Team struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Player is a single roster entry as returned by the api. Values are read only from the
// client's point of view.
type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"imageUrl"`
	TeamID    *int      `json:"teamId"`
	CohortID  int       `json:"cohortId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Team is only present when the player has been assigned to one.
	Team *Team `json:"team,omitempty"`
}

// Roster is an ordered snapshot of every player in a cohort.
type Roster []Player

// IDs returns the player ids in roster order.
func (r Roster) IDs() []int {
	ids := make([]int, len(r))
	for idx, player := range r {
		ids[idx] = player.ID
	}

	return ids
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// envelope wraps every payload the api returns.
type envelope[T any] struct {
	Success *bool     `json:"success"`
	Error   *apiError `json:"error"`
	Data    T         `json:"data"`
}

type playersData struct {
	Players Roster `json:"players"`
}

type playerData struct {
	Player *Player `json:"player"`
}
