package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

// Lengths are counted in characters, not bytes.
func checkLength(field, value string, max int) error {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return &common.ValidationError{Field: field, Reason: "must not be empty"}
	case n > max:
		return &common.ValidationError{Field: field, Reason: fmt.Sprintf("exceeds %d characters", max)}
	}
	return nil
}

func checkDuration(d int64) error {
	if d <= 0 || d >= common.MaxDuration {
		return &common.ValidationError{
			Field:  "duration",
			Reason: fmt.Sprintf("must be between 1 and %d seconds", common.MaxDuration-1),
		}
	}
	return nil
}

func checkTags(tags []string) error {
	if len(tags) == 0 || len(tags) > common.MaxTags {
		return &common.ValidationError{
			Field:  "tags",
			Reason: fmt.Sprintf("must hold between 1 and %d items", common.MaxTags),
		}
	}
	for i, t := range tags {
		if err := checkLength(fmt.Sprintf("tags[%d]", i), t, common.MaxTagLength); err != nil {
			return err
		}
	}
	return nil
}

// validateDraft returns the first bound a new entry breaks, or nil.
func validateDraft(d models.Draft) error {
	if err := checkLength("title", d.Title, common.MaxTitleLength); err != nil {
		return err
	}
	if err := checkLength("artist", d.Artist, common.MaxArtistLength); err != nil {
		return err
	}
	if err := checkDuration(d.Duration); err != nil {
		return err
	}
	if err := checkLength("genre", d.Genre, common.MaxGenreLength); err != nil {
		return err
	}
	return checkTags(d.Tags)
}

func validateDetails(d models.Details) error {
	if err := checkLength("title", d.Title, common.MaxTitleLength); err != nil {
		return err
	}
	if err := checkDuration(d.Duration); err != nil {
		return err
	}
	if err := checkLength("genre", d.Genre, common.MaxGenreLength); err != nil {
		return err
	}
	return checkTags(d.Tags)
}
