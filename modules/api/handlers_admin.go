package api

import (
	"net/http"
	"strconv"

	"github.com/launchbase/backend/core"
	"github.com/launchbase/backend/svc/account"
)

func (m *Module) handleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)

	res, err := m.accounts.ListUsers(r.Context(), account.ListParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	})
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":    true,
		"users":      res.Users,
		"pagination": res.Pagination,
	})
}

func (m *Module) handleUpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var params struct {
		UserID   string `json:"userId"`
		Inactive bool   `json:"inactive"`
	}
	if err := bindJSON(r, &params); err != nil {
		m.respondError(w, r, err)
		return
	}
	if params.UserID == "" {
		m.respondError(w, r, core.BadRequest("userId is required."))
		return
	}

	acc, err := m.accounts.UpdateUserStatus(r.Context(), params.UserID, params.Inactive)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"userId":   acc.ID.Hex(),
		"inactive": acc.Inactive,
	})
}

func (m *Module) handleUpdateUserSubscription(w http.ResponseWriter, r *http.Request) {
	var params struct {
		UserID string `json:"userId"`
		Action string `json:"action"`
	}
	if err := bindJSON(r, &params); err != nil {
		m.respondError(w, r, err)
		return
	}
	if params.UserID == "" {
		m.respondError(w, r, core.BadRequest("userId is required."))
		return
	}

	sub, err := m.accounts.UpdateUserSubscription(r.Context(), params.UserID, params.Action)
	if err != nil {
		m.respondError(w, r, err)
		return
	}

	m.respondJSON(w, r, http.StatusOK, map[string]any{
		"success":            true,
		"subscriptionStatus": sub.Status,
		"cancelAtPeriodEnd":  sub.CancelAtPeriodEnd,
	})
}
