// Package token encodes and decodes the invitation tokens a tenant hands out.
// The wire format is fixed: "access_<tenantID>" with the tenant's actor id
// rendered as a decimal integer, embedded in a deep link such as
// https://t.me/<bot>?start=access_42.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const accessPrefix = "access_"

var ErrMalformed = errors.New("malformed invitation token")

// BuildAccess renders the invitation token for a tenant.
func BuildAccess(tenantID int64) string {
	return accessPrefix + strconv.FormatInt(tenantID, 10)
}

// BuildDeepLink renders the full invitation deep link.
func BuildDeepLink(linkBase, botName string, tenantID int64) string {
	return fmt.Sprintf("%s/%s?start=%s", strings.TrimRight(linkBase, "/"), botName, BuildAccess(tenantID))
}

// ParseAccess extracts the tenant id from an invitation token.
func ParseAccess(tok string) (int64, error) {
	rest, ok := strings.CutPrefix(tok, accessPrefix)
	if !ok || rest == "" {
		return 0, ErrMalformed
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return id, nil
}

// IsAccess reports whether a start payload looks like an invitation token at
// all; callers use this to tell "no token" apart from "broken token".
func IsAccess(tok string) bool {
	return strings.HasPrefix(tok, accessPrefix)
}
