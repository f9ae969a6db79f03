package service

// WebSocket event types sent to mission coordinators
const (
	EventAssessmentUpdated   = "assessment_updated"
	EventAssessmentFinalized = "assessment_finalized"
	EventTeamJoined          = "team_joined"
	EventBoardUpdate         = "board_update"
	EventMissionClosed       = "mission_closed"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToCoordinator(missionCode string, msgType string, payload interface{})
	DisconnectMission(missionCode string)
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastToCoordinator(string, string, interface{}) {}
func (noopBroadcaster) DisconnectMission(string)                           {}
