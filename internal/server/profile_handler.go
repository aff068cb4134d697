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

const multipartMaxMemory = 8 << 20

func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /profiles Profiles CreateProfile
	//
	// Create the caller's profile. Multipart form: firstName, lastName,
	// city, gender, dateOfBirth, bio fields plus avatar and optional
	// cover files. At most one profile per user.
	//
	// ---
	// responses:
	//   '201':
	//     description: created profile
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: profile already exists
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	p := entities.Profile{
		Owner:       viewer(r),
		FirstName:   strings.TrimSpace(r.FormValue("firstName")),
		LastName:    strings.TrimSpace(r.FormValue("lastName")),
		City:        strings.TrimSpace(r.FormValue("city")),
		Gender:      entities.Gender(strings.TrimSpace(r.FormValue("gender"))),
		DateOfBirth: strings.TrimSpace(r.FormValue("dateOfBirth")),
		Bio:         strings.TrimSpace(r.FormValue("bio")),
	}

	if p.FirstName == "" || p.LastName == "" || p.City == "" || p.DateOfBirth == "" || p.Bio == "" {
		api.WriteError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	if !p.Gender.IsValid() {
		api.WriteError(w, http.StatusBadRequest, "gender must be Male or Female")
		return
	}

	avatar, ok := s.saveFormFile(w, r, "avatar", true)
	if !ok {
		return
	}
	p.Avatar = avatar

	cover, ok := s.saveFormFile(w, r, "cover", false)
	if !ok {
		media.DeleteQuietly(r.Context(), s.m, avatar)
		return
	}
	p.Cover = cover

	created, err := s.s.CreateProfile(r.Context(), &p)
	if err != nil {
		media.DeleteQuietly(r.Context(), s.m, avatar)
		media.DeleteQuietly(r.Context(), s.m, cover)
		writeError(r.Context(), w, "create profile", err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIProfile(created))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /profiles/{profileId} Profiles UpdateProfile
	//
	// Partially update an owned profile; optional avatar/cover replace the
	// old assets.
	//
	// ---
	// responses:
	//   '200':
	//     description: updated profile
	//   '403':
	//     description: caller is not the owner
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid profileId")
		return
	}

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	params := storage.UpdateProfileParams{
		FirstName:   formValue(r, "firstName"),
		LastName:    formValue(r, "lastName"),
		City:        formValue(r, "city"),
		DateOfBirth: formValue(r, "dateOfBirth"),
		Bio:         formValue(r, "bio"),
	}

	if g := formValue(r, "gender"); g != nil {
		gender := entities.Gender(*g)
		if !gender.IsValid() {
			api.WriteError(w, http.StatusBadRequest, "gender must be Male or Female")
			return
		}
		params.Gender = &gender
	}

	avatar, ok := s.saveFormFile(w, r, "avatar", false)
	if !ok {
		return
	}
	if avatar != "" {
		params.Avatar = &avatar
	}

	cover, ok := s.saveFormFile(w, r, "cover", false)
	if !ok {
		media.DeleteQuietly(r.Context(), s.m, avatar)
		return
	}
	if cover != "" {
		params.Cover = &cover
	}

	if params == (storage.UpdateProfileParams{}) {
		api.WriteError(w, http.StatusBadRequest, "at least one field is required")
		return
	}

	updated, old, err := s.s.UpdateProfile(r.Context(), profileID, viewer(r), &params)
	if err != nil {
		media.DeleteQuietly(r.Context(), s.m, avatar)
		media.DeleteQuietly(r.Context(), s.m, cover)
		writeError(r.Context(), w, "update profile", err)
		return
	}

	if params.Avatar != nil {
		media.DeleteQuietly(r.Context(), s.m, old.Avatar)
	}
	if params.Cover != nil {
		media.DeleteQuietly(r.Context(), s.m, old.Cover)
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(updated))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{userId} Profiles GetProfile
	//
	// Get a user's profile with followersCount, followingCount and
	// isFollowed computed for the caller.
	//
	// ---
	// responses:
	//   '200':
	//     description: profile card
	//     schema:
	//       "$ref": "#/definitions/ProfileCard"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	card, err := s.s.GetProfileCard(r.Context(), userID, auth.Viewer(r.Context()))
	if err != nil {
		writeError(r.Context(), w, "get profile", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfileCard(card))
}

// saveFormFile stages a multipart file through the media store and returns
// its URL. A missing file is an error only when required; the second return
// is false when a response has already been written.
func (s server) saveFormFile(w http.ResponseWriter, r *http.Request, field string, required bool) (string, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if required {
			api.WriteError(w, http.StatusBadRequest, field+" file is required")
			return "", false
		}
		return "", true
	}
	defer file.Close()

	url, err := s.m.Save(r.Context(), header.Filename, file)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to save %s: %s", field, err.Error())
		return "", false
	}

	return url, true
}

func formValue(r *http.Request, field string) *string {
	if v := strings.TrimSpace(r.FormValue(field)); v != "" {
		return &v
	}

	return nil
}
