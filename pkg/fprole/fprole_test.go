package fprole

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestIsFPRole(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"12 FP", true},
		{"0 FP", true},
		{"123FP", true},
		{"7 fp", true},
		{"Moderator", false},
		{"FP", false},
		{"12 FPS", false},
		{"x12 FP", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFPRole(tt.name); got != tt.want {
			t.Errorf("IsFPRole(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoleName(t *testing.T) {
	if got := RoleName(12); got != "12 FP" {
		t.Errorf("RoleName(12) = %v, want %v", got, "12 FP")
	}
	if got := RoleName(0); got != "0 FP" {
		t.Errorf("RoleName(0) = %v, want %v", got, "0 FP")
	}
}

func TestPlanShedsOnlyFPRoles(t *testing.T) {
	guildRoles := []*discordgo.Role{
		{ID: "1", Name: "7 FP"},
		{ID: "2", Name: "Moderator"},
		{ID: "3", Name: "12 FP"},
		{ID: "4", Name: "DJ"},
	}

	// Member holds an outdated FP role plus a foreign role
	removeIDs, targetID := Plan([]string{"1", "2"}, guildRoles, 12)

	if len(removeIDs) != 1 || removeIDs[0] != "1" {
		t.Errorf("Plan() removeIDs = %v, want [1]", removeIDs)
	}
	if targetID != "3" {
		t.Errorf("Plan() targetID = %v, want 3", targetID)
	}
}

func TestPlanMissingTargetRole(t *testing.T) {
	guildRoles := []*discordgo.Role{
		{ID: "1", Name: "7 FP"},
		{ID: "2", Name: "Moderator"},
	}

	removeIDs, targetID := Plan([]string{"1", "2"}, guildRoles, 99)

	if len(removeIDs) != 1 || removeIDs[0] != "1" {
		t.Errorf("Plan() removeIDs = %v, want [1]", removeIDs)
	}
	if targetID != "" {
		t.Errorf("Plan() targetID = %v, want empty", targetID)
	}
}

func TestPlanMemberWithoutFPRoles(t *testing.T) {
	guildRoles := []*discordgo.Role{
		{ID: "1", Name: "Moderator"},
		{ID: "2", Name: "5 FP"},
	}

	removeIDs, targetID := Plan([]string{"1"}, guildRoles, 5)

	if len(removeIDs) != 0 {
		t.Errorf("Plan() removeIDs = %v, want none", removeIDs)
	}
	if targetID != "2" {
		t.Errorf("Plan() targetID = %v, want 2", targetID)
	}
}
