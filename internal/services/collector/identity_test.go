package collector

import (
	"testing"

	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	testCases := []struct {
		name   string
		vars   map[string]any
		player map[string]any
		want   string
	}{
		{"text input wins", map[string]any{"TextInputName_player": "Budi", "playerName": "B", "name": "x"}, nil, "Budi"},
		{"falls through empty values", map[string]any{"TextInputName_player": "", "username": "sari99"}, nil, "sari99"},
		{"generic name last", map[string]any{"name": "Dewi"}, nil, "Dewi"},
		{"display name", nil, map[string]any{"displayName": "Rina"}, "Rina"},
		{"default display name ignored", nil, map[string]any{"displayName": "Player"}, models.AnonymousPlayer},
		{"nothing", nil, nil, models.AnonymousPlayer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveName(NewMapIdentity(tc.vars, tc.player)))
		})
	}

	assert.Equal(t, models.AnonymousPlayer, resolveName(nil))
}

func TestResolvePhone(t *testing.T) {
	testCases := []struct {
		name   string
		vars   map[string]any
		player map[string]any
		want   string
	}{
		{"phone number first", map[string]any{"phoneNumber": "0811", "phone": "0899"}, nil, "0811"},
		{"text input", map[string]any{"TextInputName_phoneNumber": "0812"}, nil, "0812"},
		{"player phone", map[string]any{"playerPhoneNumber": "0813"}, nil, "0813"},
		{"plain phone", map[string]any{"phone": "0814"}, nil, "0814"},
		{"player config", nil, map[string]any{"phoneNumber": "0815"}, "0815"},
		{"nothing", nil, nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolvePhone(NewMapIdentity(tc.vars, tc.player)))
		})
	}

	assert.Equal(t, "", resolvePhone(nil))
}

func TestMapIdentityCopiesInput(t *testing.T) {
	vars := map[string]any{"playerName": "Budi"}
	identity := NewMapIdentity(vars, nil)

	vars["playerName"] = "changed"
	assert.Equal(t, "Budi", identity.Variables()["playerName"])

	identity.SetVariables(map[string]any{"playerLevel": "SMA"})
	assert.Equal(t, "SMA", identity.Variables()["playerLevel"])
	assert.Equal(t, "Budi", identity.Variables()["playerName"])
}
