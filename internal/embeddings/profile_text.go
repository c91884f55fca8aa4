package embeddings

import (
	"fmt"
	"strings"

	"pressmatch/internal/models/db_models"
)

// The source-text templates are fixed: changing them changes every
// stored vector's meaning, so profile updates regenerate from the same
// composition every time.

func BuildJournalistText(j *db_models.JournalistProfile) string {
	parts := []string{
		fmt.Sprintf("%s is a journalist at %s.", j.FullName, j.OutletName),
		fmt.Sprintf("Beat: %s", j.BeatDescription),
	}
	if j.Bio != "" {
		parts = append(parts, fmt.Sprintf("Bio: %s", j.Bio))
	}
	return strings.Join(parts, " ")
}

func BuildCompanyText(c *db_models.CompanyProfile) string {
	parts := []string{
		fmt.Sprintf("%s is a company in the %s industry.", c.CompanyName, c.Industry),
	}
	if c.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", c.Description))
	}
	return strings.Join(parts, " ")
}
