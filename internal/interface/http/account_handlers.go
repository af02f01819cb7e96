package http

import "net/http"

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type updateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.accountSvc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": result.Token,
		"user":  map[string]string{"uid": result.Identity.UID, "email": result.Identity.Email},
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.accountSvc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user":  map[string]string{"uid": result.Identity.UID, "email": result.Identity.Email},
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.accountSvc.SignOut()
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	profile, err := a.accountSvc.GetProfile(r.Context(), identity.UID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapProfile(profile))
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	var req updateProfileRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	err := a.accountSvc.UpdateProfile(r.Context(), identity.UID, req.DisplayName, req.Address, req.PhoneNumber)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	if err := a.accountSvc.DeleteAccount(r.Context(), identity.UID); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
