package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/VenueBooker/internal/domain"
)

const (
	codeUniqueViolation        = "23505"
	codeForeignKeyViolation    = "23503"
	codeInsufficientPrivilege  = "42501"
	policyViolationMessagePart = "row-level security"
)

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// isPolicyViolation matches rejections coming from row-level security or grants.
func isPolicyViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == codeInsufficientPrivilege {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), policyViolationMessagePart)
}

// policyErr replaces policy rejections with domain.ErrPermissionDenied and leaves other errors as is.
func policyErr(err error) error {
	if isPolicyViolation(err) {
		return domain.ErrPermissionDenied
	}
	return err
}

// nullableID turns an empty id into SQL NULL.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
