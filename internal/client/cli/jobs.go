package cli

import (
	"context"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
)

// Letters lists the user's cover letters.
func (a *App) Letters(ctx context.Context) error {
	letters, err := a.jobs.CoverLetters(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if len(letters) == 0 {
		printlnFn("No cover letters yet. Generate one with 'letter <opportunity id>'.")
		return nil
	}
	for _, l := range letters {
		printlnFn("[", l.ID, "]", "v", l.Version, jobStatusText(l.Status), l.Opportunity.Title)
	}
	return nil
}

// Letter generates a cover letter for the opportunity, waits for it, and
// offers regeneration and manual editing.
func (a *App) Letter(ctx context.Context, arg string) error {
	id, err := parseID(arg, "letter <opportunity id>")
	if err != nil {
		return err
	}

	printlnFn("Generating, this can take a moment...")
	letter, err := a.jobs.WriteCoverLetter(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(coverLetterDetail(letter))

	for {
		var choice string
		prompt := &survey.Select{
			Message: "Next:",
			Options: []string{"Keep it", "Regenerate", "Edit manually", "Finalize"},
		}
		if err := askOne(prompt, &choice); err != nil {
			return err
		}

		switch choice {
		case "Keep it":
			return nil
		case "Regenerate":
			printlnFn("Regenerating...")
			letter, err = a.jobs.RewriteCoverLetter(ctx, letter.ID)
			if err != nil {
				a.reportError(ctx, err)
				return err
			}
			printlnFn(coverLetterDetail(letter))
		case "Edit manually":
			content, err := GetMultiline(a.reader, "New letter text:", os.Stdout)
			if err != nil {
				return err
			}
			letter, err = a.jobs.EditCoverLetter(ctx, letter.ID, content)
			if err != nil {
				a.reportError(ctx, err)
				return err
			}
			printlnFn(color.GreenString("Saved edit, version %d.", letter.Version))
		case "Finalize":
			letter, err = a.jobs.FinalizeCoverLetter(ctx, letter.ID)
			if err != nil {
				a.reportError(ctx, err)
				return err
			}
			printlnFn(color.GreenString("Letter finalized."))
			return nil
		}
	}
}

// Gaps lists past skill-gap analyses.
func (a *App) Gaps(ctx context.Context) error {
	analyses, err := a.jobs.GapAnalyses(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if len(analyses) == 0 {
		printlnFn("No analyses yet. Run one with 'gap <opportunity id>'.")
		return nil
	}
	for _, g := range analyses {
		printlnFn("[", g.ID, "]", jobStatusText(g.Status), g.Opportunity.Title)
	}
	return nil
}

// Gap analyzes the user's fit for an opportunity and prints the result.
func (a *App) Gap(ctx context.Context, arg string) error {
	id, err := parseID(arg, "gap <opportunity id>")
	if err != nil {
		return err
	}

	printlnFn("Analyzing, this can take a moment...")
	analysis, err := a.jobs.AnalyzeGap(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(analysisDetail(analysis))
	return nil
}
