package gotosocial

// Status is the payload for the status-creation endpoint. ScheduledAt
// carries the tweet's original timestamp so the instance backdates the
// imported status.
type Status struct {
	Status      string   `json:"status"`
	ScheduledAt string   `json:"scheduled_at"`
	Visibility  string   `json:"visibility"`
	MediaIDs    []string `json:"media_ids"`
}

// mediaResponse is the part of the media upload response we care about.
type mediaResponse struct {
	ID string `json:"id"`
}
