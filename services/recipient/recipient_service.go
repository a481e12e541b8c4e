package recipient

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
)

// CBUs are fixed-length numeric account identifiers.
const accountNumberLength = 22

type Service struct {
	directory Directory
	logger    *logging.Logger
}

func NewService(directory Directory, logger *logging.Logger) *Service {
	return &Service{
		directory: directory,
		logger:    logger,
	}
}

// Classify decides whether an identifier looks like a CBU or an alias.
// Anything else is a format error the caller must re-prompt for.
func Classify(identifier string) (AccountType, error) {
	identifier = strings.TrimSpace(identifier)

	numeric := identifier != "" && isNumeric(identifier)
	if numeric && len(identifier) == accountNumberLength {
		return AccountTypeAccount, nil
	}
	if !numeric && strings.Contains(identifier, ".") {
		return AccountTypeAlias, nil
	}

	return "", ErrInvalidFormat
}

// Resolve classifies the identifier and matches it against the directory.
// Pure lookup: no state changes, failures are terminal for the attempt.
func (s *Service) Resolve(ctx context.Context, identifier string) (*Recipient, error) {
	identifier = strings.TrimSpace(identifier)
	s.logger.Info(fmt.Sprintf("Resolving recipient identifier -> %v", identifier))

	accountType, err := Classify(identifier)
	if err != nil {
		return nil, err
	}

	match, found, err := s.directory.Lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !found {
		if accountType == AccountTypeAccount {
			return nil, ErrAccountNotFound
		}
		return nil, ErrAliasNotFound
	}

	return match, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
