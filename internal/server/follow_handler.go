package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/api"
)

func (s server) toggleFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /follows/{pageId} Follows ToggleFollow
	//
	// Toggle the caller's follow edge towards the page. Toggling twice
	// returns to the original state.
	//
	// ---
	// responses:
	//   '200':
	//     description: resulting state
	//     schema:
	//       "$ref": "#/definitions/ToggleFollowResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: page not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	pageID, err := uuid.Parse(chi.URLParam(r, "pageId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid pageId")
		return
	}

	followed, err := s.s.ToggleFollow(r.Context(), viewer(r), pageID)
	if err != nil {
		writeError(r.Context(), w, "toggle follow", err)
		return
	}

	api.WriteOK(w, http.StatusOK, ToggleFollowResponse{Followed: followed})
}

func (s server) listFollowers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /follows/{pageId} Follows ListFollowers
	//
	// List the page's followers with per-row followersCount and whether
	// the page follows each one back.
	//
	// ---
	// responses:
	//   '200':
	//     description: followers
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Follower"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	pageID, err := uuid.Parse(chi.URLParam(r, "pageId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid pageId")
		return
	}

	followers, err := s.s.ListFollowers(r.Context(), pageID)
	if err != nil {
		writeError(r.Context(), w, "list followers", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIFollowers(followers))
}

func (s server) listFollowing(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /follows/{followerId}/following Follows ListFollowing
	//
	// List pages the user follows, with profile summaries.
	//
	// ---
	// responses:
	//   '200':
	//     description: followed pages
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/FollowedPage"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	followerID, err := uuid.Parse(chi.URLParam(r, "followerId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid followerId")
		return
	}

	pages, err := s.s.ListFollowing(r.Context(), followerID)
	if err != nil {
		writeError(r.Context(), w, "list following", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIFollowedPages(pages))
}
