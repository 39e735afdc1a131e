package worker

import "context"

// MessageGranter credits crowns for a chat message
type MessageGranter interface {
	GrantForMessage(ctx context.Context, userID string, messageLength int) (int64, error)
}

// MessageGrantJob grants crowns for one chat message off the event handler goroutine
type MessageGrantJob struct {
	Granter       MessageGranter
	UserID        string
	MessageLength int
}

// Process applies the grant
func (j *MessageGrantJob) Process(ctx context.Context) error {
	_, err := j.Granter.GrantForMessage(ctx, j.UserID, j.MessageLength)
	return err
}
