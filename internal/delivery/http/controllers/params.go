package controllers

import (
	"net/http"
	"strconv"

	"tripbooking/internal/delivery/http/helpers"
)

// pathID reads the named path value as a positive integer id. On a missing or
// malformed value it writes a 400 JSON error and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
