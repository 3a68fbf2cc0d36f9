package auth

import (
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// TokenFromHeader extracts the token from an Authorization header value.
//
// An empty value yields common.ErrTokenMissing. Anything other than exactly
// two space-separated parts with the first being "Bearer" yields
// common.ErrTokenBadFormat.
func TokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", common.ErrTokenMissing
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != common.BearerScheme {
		return "", common.ErrTokenBadFormat
	}

	return parts[1], nil
}
