package esa

import (
	"time"

	"github.com/mattyatea/esa-client/pkg/types"
)

// Pagination is the envelope shared by list responses. The API reports
// null for prev_page and next_page at the edges of the result set.
type Pagination struct {
	PrevPage   types.NullableInt `json:"prev_page"`
	NextPage   types.NullableInt `json:"next_page"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	MaxPerPage int               `json:"max_per_page"`
}

// Team is a wiki namespace. Team names double as the subdomain all
// team-scoped resource paths are built under.
type Team struct {
	Name        string `json:"name"`
	Privacy     string `json:"privacy"` // "closed", "open" or "public"
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
}

// TeamsResponse is the paginated result of listing teams.
type TeamsResponse struct {
	Teams []Team `json:"teams"`
	Pagination
}

// TeamStats summarizes activity within a team.
type TeamStats struct {
	Members            int `json:"members"`
	Posts              int `json:"posts"`
	PostsWIP           int `json:"posts_wip"`
	PostsShipped       int `json:"posts_shipped"`
	Comments           int `json:"comments"`
	Stars              int `json:"stars"`
	DailyActiveUsers   int `json:"daily_active_users"`
	WeeklyActiveUsers  int `json:"weekly_active_users"`
	MonthlyActiveUsers int `json:"monthly_active_users"`
}

// Member is a user's membership within a team.
type Member struct {
	Myself         bool       `json:"myself"`
	Name           string     `json:"name"`
	ScreenName     string     `json:"screen_name"`
	Icon           string     `json:"icon"`
	Role           string     `json:"role"` // "owner" or "member"
	PostsCount     int        `json:"posts_count"`
	JoinedAt       time.Time  `json:"joined_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	Email          string     `json:"email,omitempty"`
}

// MembersResponse is the paginated result of listing team members.
type MembersResponse struct {
	Members []Member `json:"members"`
	Pagination
}

// Author identifies the user attached to a post, comment or star.
type Author struct {
	Myself     bool   `json:"myself"`
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
	Icon       string `json:"icon"`
}

// Post is a wiki article. Category is null when the post lives at the
// root of the tree.
type Post struct {
	Number          int                  `json:"number"`
	Name            string               `json:"name"`
	FullName        string               `json:"full_name"`
	WIP             bool                 `json:"wip"`
	BodyMD          string               `json:"body_md"`
	BodyHTML        string               `json:"body_html"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	Message         string               `json:"message"`
	URL             string               `json:"url"`
	Tags            []string             `json:"tags"`
	Category        types.NullableString `json:"category"`
	RevisionNumber  int                  `json:"revision_number"`
	CreatedBy       Author               `json:"created_by"`
	UpdatedBy       Author               `json:"updated_by"`
	Kind            string               `json:"kind"` // "stock" or "flow"
	CommentsCount   int                  `json:"comments_count"`
	TasksCount      int                  `json:"tasks_count"`
	DoneTasksCount  int                  `json:"done_tasks_count"`
	StargazersCount int                  `json:"stargazers_count"`
	WatchersCount   int                  `json:"watchers_count"`
	Star            bool                 `json:"star"`
	Watch           bool                 `json:"watch"`
	Overlapped      bool                 `json:"overlapped,omitempty"`
}

// PostsResponse is the paginated result of listing posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
	Pagination
}

// Comment is a reply attached to a post.
type Comment struct {
	ID              int       `json:"id"`
	BodyMD          string    `json:"body_md"`
	BodyHTML        string    `json:"body_html"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PostNumber      int       `json:"post_number,omitempty"`
	URL             string    `json:"url"`
	CreatedBy       Author    `json:"created_by"`
	StargazersCount int       `json:"stargazers_count"`
	Star            bool      `json:"star"`
}

// CommentsResponse is the paginated result of listing comments.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
	Pagination
}

// Stargazer records one user's star on a post or comment. Body carries
// the optional note and is null when none was left.
type Stargazer struct {
	CreatedAt time.Time            `json:"created_at"`
	Body      types.NullableString `json:"body"`
	User      Author               `json:"user"`
}

// StargazersResponse is the paginated result of listing stargazers.
type StargazersResponse struct {
	Stargazers []Stargazer `json:"stargazers"`
	Pagination
}

// Watcher records one user watching a post.
type Watcher struct {
	CreatedAt time.Time `json:"created_at"`
	User      Author    `json:"user"`
}

// WatchersResponse is the paginated result of listing watchers.
type WatchersResponse struct {
	Watchers []Watcher `json:"watchers"`
	Pagination
}

// BatchMoveResult reports how many posts a category batch-move affected.
type BatchMoveResult struct {
	Count int    `json:"count"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Tag is a label attached to posts, with its usage count.
type Tag struct {
	Name       string `json:"name"`
	PostsCount int    `json:"posts_count"`
}

// TagsResponse is the paginated result of listing tags.
type TagsResponse struct {
	Tags []Tag `json:"tags"`
	Pagination
}

// InvitationURL is the team's shareable invitation link.
type InvitationURL struct {
	URL string `json:"url"`
}

// Invitation is a pending email invitation to join a team.
type Invitation struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	URL       string    `json:"url"`
}

// InvitationsResponse is the paginated result of listing pending
// invitations.
type InvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
	Pagination
}

// Emoji is a custom emoji registered in a team. Aliases includes the
// emoji's own code.
type Emoji struct {
	Code     string   `json:"code"`
	Aliases  []string `json:"aliases,omitempty"`
	Category string   `json:"category,omitempty"`
	URL      string   `json:"url"`
}

// EmojisResponse is the result of listing a team's emojis.
type EmojisResponse struct {
	Emojis []Emoji `json:"emojis"`
}

// User is the authenticated user's profile.
type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	ScreenName string    `json:"screen_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Icon       string    `json:"icon"`
	Email      string    `json:"email"`
	Teams      []Team    `json:"teams,omitempty"`
}
