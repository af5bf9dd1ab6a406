package customer

import (
	"strings"

	pkgerrors "storefront-gateway/pkg/errors"
)

// The Storefront API reports a dead or malformed access token as a plain
// GraphQL error, not as a customerUserErrors entry. The upstream messages are
// not part of any published contract, so the match is deliberately loose:
// lowercase substring checks against the phrasings observed in practice.
var staleTokenPhrases = []string{
	"invalid token",
	"customer not found",
	"expired",
}

// reclassifyTokenError maps upstream failures that indicate a dead session to
// an unauthorized error. Anything else passes through unchanged.
func reclassifyTokenError(err error) error {
	if err == nil {
		return nil
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUpstream {
		return err
	}
	message := strings.ToLower(typed.Message())
	for _, phrase := range staleTokenPhrases {
		if strings.Contains(message, phrase) {
			return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "session ended, please log in again")
		}
	}
	return err
}
