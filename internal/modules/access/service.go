// README: Access-code validation with a cached code list.
package access

import (
	"context"
	"strings"
	"sync"
	"time"
)

// codeListTTL bounds how long the issued-code list is served before the
// store is read again.
const codeListTTL = time.Hour

// CodeLister lists the issued access codes from persistent storage.
type CodeLister interface {
	ListCodes(ctx context.Context) ([]string, error)
}

// Service answers whether a presented access code is valid, keeping the
// code list in memory so the hot auth path does not hit the database.
type Service struct {
	store CodeLister
	now   func() time.Time

	mu      sync.Mutex
	codes   []string
	expires time.Time
}

func NewService(store CodeLister) *Service {
	return &Service{store: store, now: time.Now}
}

// IsValid reports whether code matches an issued access code,
// case-insensitively. An empty code is never valid.
func (s *Service) IsValid(ctx context.Context, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	codes, err := s.codeList(ctx)
	if err != nil {
		return false, err
	}
	for _, issued := range codes {
		if strings.EqualFold(issued, code) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) codeList(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codes != nil && s.now().Before(s.expires) {
		return s.codes, nil
	}
	codes, err := s.store.ListCodes(ctx)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	s.codes = codes
	s.expires = s.now().Add(codeListTTL)
	return s.codes, nil
}
