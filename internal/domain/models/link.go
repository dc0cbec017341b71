package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	SlugMinLength        = 3
	SlugMaxLength        = 50
	DescriptionMaxLength = 500
)

// Допустимы только буквы, цифры, дефис и подчеркивание
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func ValidateSlug(slug string) error {
	if len(slug) < SlugMinLength {
		return fmt.Errorf("%w: slug must be at least %d characters", ErrInvalidData, SlugMinLength)
	}
	if len(slug) > SlugMaxLength {
		return fmt.Errorf("%w: slug must be at most %d characters", ErrInvalidData, SlugMaxLength)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: slug can only contain letters, digits, hyphens and underscores", ErrInvalidData)
	}
	return nil
}

// ValidateOriginalURL проверяет что URL абсолютный и не указывает обратно на
// сам сокращатель (защита от петли редиректов).
func ValidateOriginalURL(raw string, shortlinkHosts []string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: originalUrl must be an absolute http(s) URL", ErrInvalidData)
	}

	host := strings.ToLower(u.Hostname())
	for _, blocked := range shortlinkHosts {
		blocked = strings.ToLower(strings.TrimSpace(blocked))
		if blocked == "" {
			continue
		}
		if host == blocked || strings.HasSuffix(host, "."+blocked) {
			return fmt.Errorf("%w: originalUrl points back at the shortener", ErrInvalidData)
		}
	}
	return nil
}

func ValidateDescription(description string) error {
	if len(description) > DescriptionMaxLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidData, DescriptionMaxLength)
	}
	return nil
}

// Validate проверяет инварианты записи целиком перед записью в хранилище.
func (l LinkRecord) Validate(shortlinkHosts []string) error {
	if err := ValidateSlug(l.Slug); err != nil {
		return err
	}
	if err := ValidateOriginalURL(l.OriginalURL, shortlinkHosts); err != nil {
		return err
	}
	if err := ValidateDescription(l.Description); err != nil {
		return err
	}
	if l.IsPersonalized && l.OwnerID == "" {
		return fmt.Errorf("%w: personalized link requires an owner", ErrInvalidData)
	}
	if !l.IsPersonalized && l.OwnerID != "" {
		return fmt.Errorf("%w: public link cannot have an owner", ErrInvalidData)
	}
	if l.Clicks < 0 {
		return fmt.Errorf("%w: clicks cannot be negative", ErrInvalidData)
	}
	return nil
}
