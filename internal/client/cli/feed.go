package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// askOne is a test seam for survey prompts.
var askOne = survey.AskOne

// Feed loads the first page of the opportunity feed with the active filter
// and prints what's accumulated so far.
func (a *App) Feed(ctx context.Context) error {
	if len(a.feed.Opportunities()) == 0 {
		if _, err := a.feed.LoadMore(ctx); err != nil {
			a.reportError(ctx, err)
			return err
		}
	}
	a.printFeed(a.feed.Opportunities())
	return nil
}

// More fetches the next feed page.
func (a *App) More(ctx context.Context) error {
	ran, err := a.feed.LoadMore(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if !ran && !a.feed.HasMore() {
		printlnFn("No more results.")
		return nil
	}
	a.printFeed(a.feed.Opportunities())
	return nil
}

// Search narrows the loaded feed locally, without another request.
func (a *App) Search(ctx context.Context, query string) error {
	found := a.feed.Search(query)
	if len(found) == 0 {
		printlnFn("Nothing in the loaded feed matches", strconv.Quote(query))
		return nil
	}
	a.printFeed(found)
	return nil
}

// Filter interactively rebuilds the server-side filter and reloads the
// feed. Changing the filter always restarts at page one.
func (a *App) Filter(ctx context.Context) error {
	filter, err := a.promptFilter()
	if err != nil {
		return err
	}
	a.feed.SetFilter(filter)
	if _, err := a.feed.LoadMore(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	a.printFeed(a.feed.Opportunities())
	return nil
}

// ShowOpportunity prints one posting in full.
func (a *App) ShowOpportunity(ctx context.Context, arg string) error {
	id, err := parseID(arg, "show <id>")
	if err != nil {
		return err
	}
	o, err := a.feed.Get(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(opportunityDetail(o))
	return nil
}

func (a *App) printFeed(items []models.Opportunity) {
	for _, o := range items {
		printlnFn(opportunityRow(o))
	}
	total := a.feed.Total()
	if total > 0 {
		summary := fmt.Sprintf("%d of %d loaded", len(a.feed.Opportunities()), total)
		if a.feed.HasMore() {
			summary += ", type 'more' for the next page"
		}
		printlnFn(color.New(color.FgHiBlack).Sprint(summary))
	} else if len(items) == 0 {
		printlnFn("No opportunities match the current filter.")
	}
}

func (a *App) promptFilter() (api.OpportunityFilter, error) {
	var filter api.OpportunityFilter

	query, err := getSimpleText(a.reader, "Keyword filter (empty for none)", os.Stdout)
	if err != nil {
		return filter, err
	}
	filter.Query = query

	var workMode string
	prompt := &survey.Select{
		Message: "Work mode:",
		Options: []string{"any", string(models.WorkModeRemote), string(models.WorkModeOnsite), string(models.WorkModeHybrid)},
		Default: "any",
	}
	if err := askOne(prompt, &workMode); err != nil {
		return filter, err
	}
	if workMode != "any" {
		filter.WorkMode = models.WorkMode(workMode)
	}

	var level string
	prompt = &survey.Select{
		Message: "Experience level:",
		Options: []string{"any",
			string(models.ExperienceStudent), string(models.ExperienceGraduate),
			string(models.ExperienceJunior), string(models.ExperienceMid), string(models.ExperienceSenior)},
		Default: "any",
	}
	if err := askOne(prompt, &level); err != nil {
		return filter, err
	}
	if level != "any" {
		filter.ExperienceLevel = models.ExperienceLevel(level)
	}

	remoteOnly := false
	if err := askOne(&survey.Confirm{Message: "Remote only?"}, &remoteOnly); err != nil {
		return filter, err
	}
	if remoteOnly {
		filter.Remote = &remoteOnly
	}

	return filter, nil
}

func parseID(arg, usage string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		printlnFn("Usage:", usage)
		return 0, fmt.Errorf("bad id %q", arg)
	}
	return id, nil
}
