package domain

// ActionKind enumerates everything a caller can attempt against the resource
// set. Decision logic lives in Authorize; handlers and services never inspect
// roles directly.
type ActionKind string

const (
	ActionViewAllPosts         ActionKind = "view_all_posts"
	ActionViewOwnPosts         ActionKind = "view_own_posts"
	ActionCreatePost           ActionKind = "create_post"
	ActionEditPost             ActionKind = "edit_post"
	ActionDeletePost           ActionKind = "delete_post"
	ActionCreateComment        ActionKind = "create_comment"
	ActionViewAllProfiles      ActionKind = "view_all_profiles"
	ActionChangeRole           ActionKind = "change_role"
	ActionTriggerPasswordReset ActionKind = "trigger_password_reset"
	ActionEditOwnProfile       ActionKind = "edit_own_profile"
)

// Action pairs an ActionKind with the resource it targets, where one applies.
// Build actions through the constructors below so the target is never missing.
type Action struct {
	Kind          ActionKind
	Post          *Post
	TargetProfile *Profile
	NewRole       string
	TargetEmail   string
}

func ViewAllPosts() Action    { return Action{Kind: ActionViewAllPosts} }
func ViewOwnPosts() Action    { return Action{Kind: ActionViewOwnPosts} }
func CreatePost() Action      { return Action{Kind: ActionCreatePost} }
func CreateComment() Action   { return Action{Kind: ActionCreateComment} }
func ViewAllProfiles() Action { return Action{Kind: ActionViewAllProfiles} }
func EditOwnProfile() Action  { return Action{Kind: ActionEditOwnProfile} }

func EditPost(p *Post) Action   { return Action{Kind: ActionEditPost, Post: p} }
func DeletePost(p *Post) Action { return Action{Kind: ActionDeletePost, Post: p} }

func ChangeRole(target *Profile, newRole string) Action {
	return Action{Kind: ActionChangeRole, TargetProfile: target, NewRole: newRole}
}

func TriggerPasswordReset(targetEmail string) Action {
	return Action{Kind: ActionTriggerPasswordReset, TargetEmail: targetEmail}
}

// Decision is the policy outcome. Denied decisions carry a human-readable
// reason; Authorize itself never returns an error.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r string) Decision { return Decision{Reason: r} }

const (
	ReasonAuthRequired = "authentication required"
	ReasonInvalidRole  = "invalid role"
	ReasonNotPermitted = "not permitted"
)

// Authorize decides whether actor may perform action. Pure function, first
// matching rule wins; callers must check the decision before rendering or
// dispatching the action.
func Authorize(actor Actor, action Action) Decision {
	if actor.IsAnonymous() {
		return deny(ReasonAuthRequired)
	}

	switch action.Kind {
	case ActionEditPost:
		// Owner-only, even for staff: admins may delete another user's post
		// but never silently rewrite it.
		if action.Post != nil && actor.ID == action.Post.UserID {
			return allow()
		}
		return deny(ReasonNotPermitted)

	case ActionDeletePost:
		if action.Post != nil && actor.ID == action.Post.UserID {
			return allow()
		}
		if actor.Role.IsStaff() {
			return allow()
		}
		return deny(ReasonNotPermitted)

	case ActionViewAllPosts, ActionViewAllProfiles:
		if actor.Role.IsStaff() {
			return allow()
		}
		return deny(ReasonNotPermitted)

	case ActionChangeRole:
		if actor.Role != RoleSuperAdmin {
			return deny(ReasonNotPermitted)
		}
		// A super admin may not change their own role here, whatever the new
		// value is: self-demotion lockout prevention.
		if action.TargetProfile == nil || actor.ID == action.TargetProfile.ID {
			return deny(ReasonNotPermitted)
		}
		if !ValidRole(action.NewRole) {
			return deny(ReasonInvalidRole)
		}
		return allow()

	case ActionTriggerPasswordReset:
		if actor.Role != RoleSuperAdmin {
			return deny(ReasonNotPermitted)
		}
		if action.TargetEmail == "" || action.TargetEmail == actor.Email {
			return deny(ReasonNotPermitted)
		}
		return allow()

	case ActionCreatePost, ActionCreateComment, ActionEditOwnProfile, ActionViewOwnPosts:
		return allow()
	}

	return deny(ReasonNotPermitted)
}
