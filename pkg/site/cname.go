package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDomainNotSet is returned when no domain is configured for the CNAME file
var ErrDomainNotSet = errors.New("domain not set")

// WriteCNAME writes domain to dir/CNAME, creating dir when needed.
// It returns the path written.
func WriteCNAME(dir, domain string) (string, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return "", ErrDomainNotSet
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "CNAME")
	if err := os.WriteFile(path, []byte(domain), 0o644); err != nil {
		return "", fmt.Errorf("write CNAME: %w", err)
	}
	return path, nil
}
