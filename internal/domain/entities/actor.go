package entities

import "strings"

// Role is the workflow role of the authenticated actor.
type Role string

const (
	RoleRequester       Role = "requester"
	RoleCoordinator     Role = "coordinator"
	RoleFinance         Role = "finance"
	RolePayingAuthority Role = "paying_authority"
)

func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCoordinator:
		return RoleCoordinator
	case RoleFinance:
		return RoleFinance
	case RolePayingAuthority:
		return RolePayingAuthority
	}
	return RoleRequester
}

// Actor identifies who performs a workflow action.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Channel is a notification channel with its own per-user sender alias.
type Channel string

const (
	ChannelCollaborator Channel = "collaborator"
	ChannelCoordinator  Channel = "coordinator"
)

func ParseChannel(s string) (Channel, bool) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case ChannelCollaborator:
		return ChannelCollaborator, true
	case ChannelCoordinator:
		return ChannelCoordinator, true
	}
	return "", false
}

// Sender overrides the from address of a single outgoing message.
type Sender struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}
