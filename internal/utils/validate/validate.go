package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
)

const MaxURLsPerJob = 25

// ValidateURL accepts absolute http/https URLs only.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", errs.ErrInvalidURL, raw)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %q", errs.ErrInvalidURL, raw)
	}
	return nil
}

func ValidatePreset(preset string) error {
	if _, ok := models.Presets[preset]; !ok {
		return fmt.Errorf("%w: %q", errs.ErrInvalidPreset, preset)
	}
	return nil
}

// NormalizeURLs flattens the submitted values (each value may hold several
// newline-separated URLs), trims whitespace and drops empty lines. It fails
// on an empty result, an oversized batch, or any malformed URL.
func NormalizeURLs(values []string) ([]string, error) {
	urls := make([]string, 0, len(values))
	for _, value := range values {
		for _, line := range strings.Split(value, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			urls = append(urls, line)
		}
	}

	if len(urls) == 0 {
		return nil, errs.ErrEmptySubmission
	}
	if len(urls) > MaxURLsPerJob {
		return nil, fmt.Errorf("%w: at most %d urls per job", errs.ErrInvalidURL, MaxURLsPerJob)
	}
	for _, u := range urls {
		if err := ValidateURL(u); err != nil {
			return nil, err
		}
	}

	return urls, nil
}
