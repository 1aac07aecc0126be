package app

// Authorization rules. Each function is a pure decision over the acting
// session identity and the target of the action; an empty identity means
// anonymous. Denials carry no detail, callers surface a uniform message.

// CanViewProfile reports whether identity may view target's profile.
// Any authenticated user may view any profile.
func CanViewProfile(identity, target string) bool {
	return identity != ""
}

// CanDeleteUser reports whether identity may delete the target account.
func CanDeleteUser(identity, target string) bool {
	return identity != "" && identity == target
}

// CanCreateFeedback reports whether identity may create feedback owned by
// target.
func CanCreateFeedback(identity, target string) bool {
	return identity != "" && identity == target
}

// CanModifyFeedback reports whether identity may edit feedback owned by owner.
func CanModifyFeedback(identity, owner string) bool {
	return identity != "" && identity == owner
}

// CanDeleteFeedback reports whether identity may delete feedback owned by
// owner. Same rule as modification.
func CanDeleteFeedback(identity, owner string) bool {
	return CanModifyFeedback(identity, owner)
}
