package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/api"
	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
	"github.com/Naveenmanral1/Vconnect-backend/internal/media"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Return the global feed ordered by creation time, enriched with
	// likesCount, isLiked and the owner's current profile snapshot.
	// Anonymous callers get isLiked=false.
	//
	// ---
	// parameters:
	// - name: sort
	//   description: -createdAt (default, newest first) or createdAt
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: enriched posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/FeedPost"

	order := storage.DescendingOrder
	if sort := r.URL.Query().Get("sort"); sort != "" && sort != "-createdAt" {
		order = storage.AscendingOrder
	}

	posts, err := s.s.ListPosts(r.Context(), auth.Viewer(r.Context()), order)
	if err != nil {
		writeError(r.Context(), w, "list posts", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIFeedPosts(posts))
}

func (s server) listFollowedPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/following-posts Posts ListFollowedPosts
	//
	// Return posts authored by pages the caller follows. An empty
	// following set yields an empty list.
	//
	// ---
	// responses:
	//   '200':
	//     description: enriched posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/FeedPost"

	posts, err := s.s.ListFollowedPosts(r.Context(), viewer(r))
	if err != nil {
		writeError(r.Context(), w, "list followed posts", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIFeedPosts(posts))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{postId} Posts GetPost
	//
	// Get a post with likesCount and isLiked computed for the caller.
	//
	// ---
	// responses:
	//   '200':
	//     description: post
	//     schema:
	//       "$ref": "#/definitions/PostView"
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

	post, err := s.s.GetPost(r.Context(), postID, auth.Viewer(r.Context()))
	if err != nil {
		writeError(r.Context(), w, "get post", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPostView(post))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create a post. Multipart form: optional title, required description
	// field and image file.
	//
	// ---
	// responses:
	//   '201':
	//     description: created post
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	if description == "" {
		api.WriteError(w, http.StatusBadRequest, "description is required")
		return
	}

	image, ok := s.saveFormFile(w, r, "image", true)
	if !ok {
		return
	}

	post, err := s.s.CreatePost(r.Context(), &entities.Post{
		Owner:       viewer(r),
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: description,
		Image:       image,
	})
	if err != nil {
		media.DeleteQuietly(r.Context(), s.m, image)
		writeError(r.Context(), w, "create post", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /posts/{postId} Posts UpdatePost
	//
	// Partially update an owned post; a new image replaces the old asset.
	//
	// ---
	// responses:
	//   '200':
	//     description: updated post
	//   '403':
	//     description: caller is not the owner
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

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	params := storage.UpdatePostParams{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
	}

	image, ok := s.saveFormFile(w, r, "image", false)
	if !ok {
		return
	}
	if image != "" {
		params.Image = &image
	}

	if params == (storage.UpdatePostParams{}) {
		api.WriteError(w, http.StatusBadRequest, "at least one of title, description or image is required")
		return
	}

	updated, old, err := s.s.UpdatePost(r.Context(), postID, viewer(r), &params)
	if err != nil {
		media.DeleteQuietly(r.Context(), s.m, image)
		writeError(r.Context(), w, "update post", err)
		return
	}

	if params.Image != nil {
		media.DeleteQuietly(r.Context(), s.m, old.Image)
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(updated))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{postId} Posts DeletePost
	//
	// Delete an owned post. Likes cascade in the store; the image asset is
	// removed best-effort.
	//
	// ---
	// responses:
	//   '200':
	//     description: deleted
	//   '403':
	//     description: caller is not the owner
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

	post, err := s.s.DeletePost(r.Context(), postID, viewer(r))
	if err != nil {
		writeError(r.Context(), w, "delete post", err)
		return
	}

	media.DeleteQuietly(r.Context(), s.m, post.Image)

	api.WriteOK(w, http.StatusOK, struct{}{})
}
