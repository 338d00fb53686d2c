// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// GameProvisionedQueue is the durable queue carrying provisioning events.
const GameProvisionedQueue = "game.provisioned"

// GameProvisionedEvent is published when a game has been fully provisioned:
// row inserted, QR image uploaded and the public URL written back.  It
// carries enough for downstream consumers to log or notify without querying
// the primary database.
type GameProvisionedEvent struct {
	GameID        uint64 `json:"game_id"`
	OwnerID       uint64 `json:"owner_id"`
	Title         string `json:"title"`
	GameURL       string `json:"game_url"`
	QRCodeURL     string `json:"qr_code_url"`
	ProvisionedAt string `json:"provisioned_at"`
}
