package esa

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosts(t *testing.T) {
	t.Run("ListDecodesPagination", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/teams/acme/posts", r.URL.Path)
			w.Write([]byte(`{
				"posts": [{"number": 1, "name": "hi!", "category": null, "wip": false}],
				"prev_page": null,
				"next_page": 2,
				"total_count": 120,
				"page": 1,
				"per_page": 20,
				"max_per_page": 100
			}`))
		}))

		resp, err := c.Posts(context.Background(), "acme", nil)
		require.NoError(t, err)
		require.Len(t, resp.Posts, 1)
		assert.True(t, resp.Posts[0].Category.IsNil())
		assert.True(t, resp.PrevPage.IsNil())
		assert.Equal(t, 2, resp.NextPage.Int())
		assert.Equal(t, 120, resp.TotalCount)
	})

	t.Run("UpdateUsesPatch", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody []byte
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"number":5,"revision_number":3}`))
		}))

		post, err := c.UpdatePost(context.Background(), "acme", 5, &PostUpdateParams{
			Message: "typo fix",
			WIP:     Bool(true),
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, gotMethod)
		assert.Equal(t, "/v1/teams/acme/posts/5", gotPath)
		assert.JSONEq(t, `{"post":{"message":"typo fix","wip":true}}`, string(gotBody))
		assert.Equal(t, 3, post.RevisionNumber)
	})
}

func TestComments(t *testing.T) {
	t.Run("CreateWrapsPayload", func(t *testing.T) {
		var gotPath string
		var gotBody []byte
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":22767,"body_md":"LGTM!"}`))
		}))

		comment, err := c.CreateComment(context.Background(), "acme", 2, &CommentParams{BodyMD: "LGTM!"})
		require.NoError(t, err)
		assert.Equal(t, "/v1/teams/acme/posts/2/comments", gotPath)
		assert.JSONEq(t, `{"comment":{"body_md":"LGTM!"}}`, string(gotBody))
		assert.Equal(t, 22767, comment.ID)
	})
}

func TestStars(t *testing.T) {
	t.Run("StarWithNote", func(t *testing.T) {
		var gotBody []byte
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusNoContent)
		}))

		err := c.StarPost(context.Background(), "acme", 7, &StarParams{Body: "great writeup"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"body":"great writeup"}`, string(gotBody))
	})

	t.Run("StargazerNoteMayBeNull", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"stargazers":[
				{"created_at":"2024-05-01T12:00:00+09:00","body":null,"user":{"screen_name":"fujimura"}},
				{"created_at":"2024-05-02T12:00:00+09:00","body":"nice","user":{"screen_name":"ppworks"}}
			]}`))
		}))

		resp, err := c.PostStargazers(context.Background(), "acme", 7, nil)
		require.NoError(t, err)
		require.Len(t, resp.Stargazers, 2)
		assert.True(t, resp.Stargazers[0].Body.IsNil())
		assert.Equal(t, "nice", resp.Stargazers[1].Body.String())
	})
}

func TestMembers(t *testing.T) {
	t.Run("DeleteByScreenName", func(t *testing.T) {
		var gotMethod, gotPath string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, c.DeleteMember(context.Background(), "acme", "alice"))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/v1/teams/acme/members/alice", gotPath)
	})
}

func TestCategories(t *testing.T) {
	t.Run("BatchMove", func(t *testing.T) {
		var gotBody []byte
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"count":3,"from":"/old/","to":"/new/"}`))
		}))

		result, err := c.BatchMoveCategory(context.Background(), "acme", "/old/", "/new/")
		require.NoError(t, err)
		assert.JSONEq(t, `{"from":"/old/","to":"/new/"}`, string(gotBody))
		assert.Equal(t, 3, result.Count)
	})
}

func TestInvitations(t *testing.T) {
	t.Run("InviteByEmail", func(t *testing.T) {
		var gotBody []byte
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"invitations":[{"email":"alice@example.com","code":"mee93383edf699b525e01842d34078e28"}]}`))
		}))

		resp, err := c.Invite(context.Background(), "acme", []string{"alice@example.com"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"member":{"emails":["alice@example.com"]}}`, string(gotBody))
		require.Len(t, resp.Invitations, 1)
		assert.Equal(t, "alice@example.com", resp.Invitations[0].Email)
	})
}

func TestAuthenticatedUser(t *testing.T) {
	t.Run("IncludeTeams", func(t *testing.T) {
		var gotPath, gotQuery string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"id":1,"screen_name":"mattyatea","teams":[{"name":"acme"}]}`))
		}))

		user, err := c.AuthenticatedUser(context.Background(), &UserGetOptions{IncludeTeams: true})
		require.NoError(t, err)
		assert.Equal(t, "/v1/user", gotPath)
		assert.Equal(t, "include=teams", gotQuery)
		require.Len(t, user.Teams, 1)
		assert.Equal(t, "acme", user.Teams[0].Name)
	})
}
