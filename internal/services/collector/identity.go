package collector

import (
	"maps"
	"strings"
	"sync"

	"github.com/KirkDiggler/choicetrail/internal/models"
)

const (
	// defaultDisplayName is the engine's unedited player name
	defaultDisplayName = "Player"

	genderVariable = "playerGender"
	levelVariable  = "playerLevel"
)

// Variable names checked in priority order
var (
	nameVariables  = []string{"TextInputName_player", "playerName", "username", "name"}
	phoneVariables = []string{"phoneNumber", "TextInputName_phoneNumber", "playerPhoneNumber", "phone"}
)

// resolveName returns the first non-empty name variable, then the player's
// display name unless it is the engine default, then "Anonymous"
func resolveName(source IdentitySource) string {
	if source == nil {
		return models.AnonymousPlayer
	}

	if name := firstVariable(source.Variables(), nameVariables); name != "" {
		return name
	}

	if name := stringValue(source.PlayerConfig()["displayName"]); name != "" && name != defaultDisplayName {
		return name
	}

	return models.AnonymousPlayer
}

// resolvePhone returns the first non-empty phone variable, then the player's
// configured phone number, then ""
func resolvePhone(source IdentitySource) string {
	if source == nil {
		return ""
	}

	if phone := firstVariable(source.Variables(), phoneVariables); phone != "" {
		return phone
	}

	return stringValue(source.PlayerConfig()["phoneNumber"])
}

func firstVariable(vars map[string]any, names []string) string {
	for _, name := range names {
		if value := stringValue(vars[name]); strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// MapIdentity is an IdentitySource backed by plain maps. It is safe for
// concurrent use.
type MapIdentity struct {
	mu     sync.RWMutex
	vars   map[string]any
	player map[string]any
}

// NewMapIdentity creates a MapIdentity holding copies of vars and player
func NewMapIdentity(vars, player map[string]any) *MapIdentity {
	m := &MapIdentity{
		vars:   make(map[string]any),
		player: make(map[string]any),
	}
	maps.Copy(m.vars, vars)
	maps.Copy(m.player, player)
	return m
}

// SetVariables merges vars into the variable bag
func (m *MapIdentity) SetVariables(vars map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.vars, vars)
}

// SetPlayerConfig merges player into the player character config
func (m *MapIdentity) SetPlayerConfig(player map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.player, player)
}

func (m *MapIdentity) Variables() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.vars)
}

func (m *MapIdentity) PlayerConfig() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.player)
}
