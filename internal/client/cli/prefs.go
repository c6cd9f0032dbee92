package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/client/services"
	"github.com/findra-app/findra-cli/internal/selection"
)

// Prefs opens the interactive preference editor. Edits stay local until the
// user picks "Save"; leaving without saving discards them, and every entry
// re-reads the server state.
func (a *App) Prefs(ctx context.Context) error {
	editor, err := a.prefs.Load(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	a.editor = editor

	for {
		var choice string
		prompt := &survey.Select{
			Message: "Edit preferences:",
			Options: []string{
				"Interests (type > domain > specialization)",
				"Muted opportunity types",
				"Locations",
				"Notification channels",
				"Job criteria",
				"Review draft",
				"Save",
				"Exit without saving",
			},
		}
		if err := askOne(prompt, &choice); err != nil {
			return err
		}

		switch choice {
		case "Interests (type > domain > specialization)":
			err = a.editTreeSelection(editor.Taxonomy, editor.Preferred)
		case "Muted opportunity types":
			err = a.editMuted(editor)
		case "Locations":
			err = a.editTreeSelection(editor.Locations, editor.LocationSel)
		case "Notification channels":
			err = a.editNotifications(editor)
		case "Job criteria":
			err = a.editJobCriteria(editor)
		case "Review draft":
			a.printDraft(editor)
		case "Save":
			fresh, err := a.prefs.Save(ctx, editor)
			if err != nil {
				a.reportError(ctx, err)
				return err
			}
			a.editor = fresh
			printlnFn(color.GreenString("Preferences saved."))
			return nil
		case "Exit without saving":
			a.editor = nil
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// editTreeSelection shows the forest as an indented multi-select and
// rebuilds the selection from what was checked. Re-deriving through
// Tree.Select keeps the ancestor chain of every checked node selected.
func (a *App) editTreeSelection(tree *selection.Tree, sel selection.Set) error {
	var (
		options []string
		nodes   []int64
		checked []int
	)
	var walk func(ids []int64, depth int)
	walk = func(ids []int64, depth int) {
		for _, id := range ids {
			if sel.Contains(id) {
				checked = append(checked, len(options))
			}
			options = append(options, strings.Repeat("  ", depth)+tree.Name(id))
			nodes = append(nodes, id)
			walk(tree.ChildrenOf(id), depth+1)
		}
	}
	walk(tree.Roots(), 0)

	if len(options) == 0 {
		printlnFn("Nothing to choose from.")
		return nil
	}

	var answer []survey.OptionAnswer
	prompt := &survey.MultiSelect{
		Message:  "Select (space toggles, enter confirms):",
		Options:  options,
		Default:  checked,
		PageSize: 15,
	}
	if err := askOne(prompt, &answer); err != nil {
		return err
	}

	sel.Clear()
	for _, opt := range answer {
		tree.Select(sel, nodes[opt.Index])
	}
	return nil
}

// editMuted is a flat toggle over the opportunity types; muting does not
// cascade.
func (a *App) editMuted(editor *services.PrefsEditor) error {
	var (
		options []string
		nodes   []int64
		checked []int
	)
	for _, root := range editor.Taxonomy.Roots() {
		if editor.Muted.Contains(root) {
			checked = append(checked, len(options))
		}
		options = append(options, editor.Taxonomy.Name(root))
		nodes = append(nodes, root)
	}

	var answer []survey.OptionAnswer
	prompt := &survey.MultiSelect{
		Message: "Never match these opportunity types:",
		Options: options,
		Default: checked,
	}
	if err := askOne(prompt, &answer); err != nil {
		return err
	}

	editor.Muted.Clear()
	for _, opt := range answer {
		editor.Muted.Add(nodes[opt.Index])
	}
	return nil
}

func (a *App) editNotifications(editor *services.PrefsEditor) error {
	c := &editor.Config

	if err := askOne(&survey.Confirm{Message: "Notify via Telegram?", Default: c.NotifyViaTelegram}, &c.NotifyViaTelegram); err != nil {
		return err
	}
	if err := askOne(&survey.Confirm{Message: "Notify via email?", Default: c.NotifyViaEmail}, &c.NotifyViaEmail); err != nil {
		return err
	}
	if err := askOne(&survey.Confirm{Message: "Notify via web push?", Default: c.NotifyViaWebPush}, &c.NotifyViaWebPush); err != nil {
		return err
	}

	var frequency string
	prompt := &survey.Select{
		Message: "Notification frequency:",
		Options: []string{string(models.FrequencyInstant), string(models.FrequencyDaily), string(models.FrequencyWeekly)},
		Default: string(c.NotificationFrequency),
	}
	if err := askOne(prompt, &frequency); err != nil {
		return err
	}
	c.NotificationFrequency = models.NotificationFrequency(frequency)

	var threshold string
	if err := askOne(&survey.Input{
		Message: "Minimum match score to notify about (0-10):",
		Default: strconv.FormatFloat(c.ThresholdScore, 'f', 1, 64),
	}, &threshold); err != nil {
		return err
	}
	if v, err := strconv.ParseFloat(threshold, 64); err == nil && v >= 0 && v <= 10 {
		c.ThresholdScore = v
	} else {
		printlnFn(color.YellowString("Keeping previous threshold %.1f", c.ThresholdScore))
	}

	var maxAlerts string
	if err := askOne(&survey.Input{
		Message: "Max alerts per day (empty for no cap):",
		Default: optionalIntText(c.MaxAlertsPerDay),
	}, &maxAlerts); err != nil {
		return err
	}
	c.MaxAlertsPerDay = parseOptionalInt(maxAlerts)

	var quietStart string
	if err := askOne(&survey.Input{
		Message: "Quiet hours start, HH:MM (empty for none):",
		Default: optionalText(c.QuietHoursStart),
	}, &quietStart); err != nil {
		return err
	}
	c.QuietHoursStart = optionalString(quietStart)

	var quietEnd string
	if err := askOne(&survey.Input{
		Message: "Quiet hours end, HH:MM (empty for none):",
		Default: optionalText(c.QuietHoursEnd),
	}, &quietEnd); err != nil {
		return err
	}
	c.QuietHoursEnd = optionalString(quietEnd)
	return nil
}

func (a *App) editJobCriteria(editor *services.PrefsEditor) error {
	c := &editor.Config

	var workMode string
	if err := askOne(&survey.Select{
		Message: "Preferred work mode:",
		Options: []string{string(models.WorkModeAny), string(models.WorkModeRemote), string(models.WorkModeOnsite), string(models.WorkModeHybrid)},
		Default: string(c.WorkMode),
	}, &workMode); err != nil {
		return err
	}
	c.WorkMode = models.WorkMode(workMode)

	var employment string
	if err := askOne(&survey.Select{
		Message: "Employment type:",
		Options: []string{string(models.EmploymentAny), string(models.EmploymentFullTime), string(models.EmploymentPartTime),
			string(models.EmploymentContract), string(models.EmploymentInternship)},
		Default: string(c.EmploymentType),
	}, &employment); err != nil {
		return err
	}
	c.EmploymentType = models.EmploymentType(employment)

	var level string
	if err := askOne(&survey.Select{
		Message: "Experience level:",
		Options: []string{string(models.ExperienceAny), string(models.ExperienceStudent), string(models.ExperienceGraduate),
			string(models.ExperienceJunior), string(models.ExperienceMid), string(models.ExperienceSenior)},
		Default: string(c.ExperienceLevel),
	}, &level); err != nil {
		return err
	}
	c.ExperienceLevel = models.ExperienceLevel(level)

	var minComp string
	if err := askOne(&survey.Input{Message: "Minimum compensation (empty for none):"}, &minComp); err != nil {
		return err
	}
	c.MinCompensation = parseOptionalInt(minComp)

	var maxComp string
	if err := askOne(&survey.Input{Message: "Maximum compensation (empty for none):"}, &maxComp); err != nil {
		return err
	}
	c.MaxCompensation = parseOptionalInt(maxComp)
	return nil
}

func parseOptionalInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func optionalIntText(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optionalText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (a *App) printDraft(editor *services.PrefsEditor) {
	printlnFn(color.New(color.Bold).Sprint("Interests"))
	for _, line := range treeLines(editor.Taxonomy, editor.Preferred) {
		printlnFn(line)
	}
	printlnFn(color.New(color.Bold).Sprint("Locations"))
	for _, line := range treeLines(editor.Locations, editor.LocationSel) {
		printlnFn(line)
	}
	c := editor.Config
	printlnFn(color.New(color.Bold).Sprint("Notifications"))
	printlnFn("  threshold:", strconv.FormatFloat(c.ThresholdScore, 'f', 1, 64),
		"frequency:", string(c.NotificationFrequency),
		"telegram:", c.NotifyViaTelegram, "email:", c.NotifyViaEmail, "push:", c.NotifyViaWebPush)
}
