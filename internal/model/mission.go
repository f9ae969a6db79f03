package model

import "time"

type MissionStatus string

const (
	MissionOpen   MissionStatus = "open"
	MissionClosed MissionStatus = "closed"
)

// Mission groups the assessments of the teams working one incident
type Mission struct {
	Code          string        `json:"code" bson:"code"`
	Name          string        `json:"name" bson:"name"`
	CoordinatorID string        `json:"coordinatorId" bson:"coordinatorId"`
	Status        MissionStatus `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	ClosedAt      *time.Time    `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}

// MissionMeta is the cached subset of a mission checked on hot paths
type MissionMeta struct {
	Name          string        `json:"name"`
	CoordinatorID string        `json:"coordinatorId"`
	Status        MissionStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Team is a field team that joined a mission
type Team struct {
	ID          string    `json:"id"`
	MissionCode string    `json:"missionCode"`
	Name        string    `json:"name"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// CreateMissionRequest is the request body for creating a mission
type CreateMissionRequest struct {
	Name string `json:"name"`
}

// JoinMissionRequest is the request body for a team joining a mission
type JoinMissionRequest struct {
	TeamName string `json:"teamName"`
}

// JoinMissionResponse is returned after a team joins
type JoinMissionResponse struct {
	TeamID      string `json:"teamId"`
	MissionCode string `json:"missionCode"`
	Token       string `json:"token"`
}
