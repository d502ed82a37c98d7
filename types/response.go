package types

const TypeWebsocketJobUpdate = "job_update"

// WebSocketJobUpdate is broadcast to progress subscribers on every job
// state transition.
type WebSocketJobUpdate struct {
	Type string         `json:"type"`
	Job  *ConversionJob `json:"job"`
}
