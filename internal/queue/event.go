// Package queue defines message payloads exchanged over the message broker.
package queue

// TodoCompletedEvent is published when an update marks a previously
// open todo as completed. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type TodoCompletedEvent struct {
	TodoID      string `json:"todo_id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	CompletedAt string `json:"completed_at"`
}
