package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/api"
)

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /likes/toggle/{postId} Likes ToggleLike
	//
	// Toggle the caller's like on the post. Toggling twice returns to the
	// original state.
	//
	// ---
	// responses:
	//   '200':
	//     description: resulting state
	//     schema:
	//       "$ref": "#/definitions/ToggleLikeResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid postId")
		return
	}

	liked, err := s.s.ToggleLike(r.Context(), viewer(r), postID)
	if err != nil {
		writeError(r.Context(), w, "toggle like", err)
		return
	}

	api.WriteOK(w, http.StatusOK, ToggleLikeResponse{IsLiked: liked})
}

func (s server) listPostLikes(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /likes/{postId}/likes Likes ListPostLikes
	//
	// List likers' profile summaries. A post with zero likes yields 404,
	// not an empty list.
	//
	// ---
	// responses:
	//   '200':
	//     description: likers
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/LikerProfile"
	//   '404':
	//     description: no likes found
	//     schema:
	//       "$ref": "#/definitions/Error"

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid postId")
		return
	}

	likes, err := s.s.ListPostLikes(r.Context(), postID)
	if err != nil {
		writeError(r.Context(), w, "list likes", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPILikerProfiles(likes))
}
