package app

import "testing"

func TestCanViewProfile(t *testing.T) {
	tests := []struct {
		name             string
		identity, target string
		want             bool
	}{
		{"anonymous", "", "alice", false},
		{"own profile", "alice", "alice", true},
		{"other user's profile", "bob", "alice", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewProfile(tt.identity, tt.target); got != tt.want {
				t.Errorf("CanViewProfile(%q, %q) = %v, want %v", tt.identity, tt.target, got, tt.want)
			}
		})
	}
}

func TestOwnerOnlyRules(t *testing.T) {
	rules := map[string]func(identity, owner string) bool{
		"CanDeleteUser":     CanDeleteUser,
		"CanCreateFeedback": CanCreateFeedback,
		"CanModifyFeedback": CanModifyFeedback,
		"CanDeleteFeedback": CanDeleteFeedback,
	}

	tests := []struct {
		name            string
		identity, owner string
		want            bool
	}{
		{"owner", "alice", "alice", true},
		{"other user", "bob", "alice", false},
		{"anonymous", "", "alice", false},
		{"anonymous against empty owner", "", "", false},
	}

	for name, rule := range rules {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				if got := rule(tt.identity, tt.owner); got != tt.want {
					t.Errorf("%s(%q, %q) = %v, want %v", name, tt.identity, tt.owner, got, tt.want)
				}
			})
		}
	}
}
