package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/selection"
)

func disableColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestScoreBadge_Tiers(t *testing.T) {
	disableColor(t)

	require.Contains(t, scoreBadge(8.0), "Strong alignment")
	require.Contains(t, scoreBadge(9.5), "Strong alignment")
	require.NotContains(t, scoreBadge(7.9), "Strong alignment")
	require.Contains(t, scoreBadge(7.9), "7.9/10 Good match")
	require.Contains(t, scoreBadge(7.0), "Good match")
	require.NotContains(t, scoreBadge(6.9), "Good match")
	require.Contains(t, scoreBadge(6.9), "6.9/10")
}

func TestMatchRow_IncludesScoreAndTitle(t *testing.T) {
	disableColor(t)

	m := models.Match{
		ID:         4,
		MatchScore: 8.2,
		Opportunity: models.Opportunity{
			Title:        "Robotics Intern",
			Organization: "Acme",
		},
	}
	row := matchRow(m)
	require.Contains(t, row, "[4]")
	require.Contains(t, row, "Strong alignment")
	require.Contains(t, row, "Robotics Intern")
	require.Contains(t, row, "Acme")
}

func TestOpportunityRow_RemoteTag(t *testing.T) {
	disableColor(t)

	o := models.Opportunity{ID: 1, Title: "Analyst", Organization: "Org", IsRemote: true}
	require.Contains(t, opportunityRow(o), "remote")

	o.IsRemote = false
	o.Location = &models.Location{ID: 2, Name: "Addis Ababa"}
	require.Contains(t, opportunityRow(o), "Addis Ababa")
}

func TestJobStatusText(t *testing.T) {
	disableColor(t)

	require.Equal(t, "FAILED", jobStatusText(models.JobFailed))
	require.Equal(t, "COMPLETED", jobStatusText(models.JobCompleted))
	require.Equal(t, "EXTRACTING", jobStatusText(models.JobExtracting))
}

func TestTreeLines_MarksSelection(t *testing.T) {
	disableColor(t)

	tree := selection.NewTree()
	tree.Add(1, "Job", 0)
	tree.Add(2, "Engineering", 1)
	sel := selection.NewSet(2)

	lines := treeLines(tree, sel)
	require.Equal(t, []string{
		"[ ] Job",
		"  [x] Engineering",
	}, lines)
}

func TestCoverLetterDetail_FailedShowsError(t *testing.T) {
	disableColor(t)

	l := models.CoverLetter{
		ID:           1,
		Status:       models.JobFailed,
		ErrorMessage: "quota exceeded",
		Opportunity:  models.Opportunity{Title: "Analyst"},
	}
	out := coverLetterDetail(l)
	require.Contains(t, out, "quota exceeded")
	require.NotContains(t, out, "Dear")
}

func TestCoverLetterDetail_PrefersEditedContent(t *testing.T) {
	disableColor(t)

	l := models.CoverLetter{
		ID:               2,
		Status:           models.JobEdited,
		GeneratedContent: "generated text",
		EditedContent:    "edited text",
		Opportunity:      models.Opportunity{Title: "Analyst"},
	}
	require.Contains(t, coverLetterDetail(l), "edited text")
	require.NotContains(t, coverLetterDetail(l), "generated text")
}
