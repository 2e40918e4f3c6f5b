package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"placecell/internal/common"
)

func decodeJSON(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return common.NewError(common.CodeValidation, "invalid JSON body", err)
	}
	return nil
}

// idFromPath extracts the path segment at the given index as a UUID, so
// "/api/applications/<id>" resolves with index 2.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(parts) || parts[index] == "" {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "id is required"})
	}
	parsed, err := common.ParseUUID(parts[index])
	if err != nil {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "invalid uuid"})
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
