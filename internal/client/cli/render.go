package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/selection"
)

// scoreBadge renders a match score with its tier callout.
func scoreBadge(score float64) string {
	switch {
	case score >= models.StrongMatchScore:
		return color.New(color.Bold, color.FgGreen).Sprintf("%.1f/10 Strong alignment", score)
	case score >= models.GoodMatchScore:
		return color.YellowString("%.1f/10 Good match", score)
	default:
		return fmt.Sprintf("%.1f/10", score)
	}
}

// jobStatusText colors a job status: green when finished, red when failed,
// yellow while still running.
func jobStatusText(s models.JobStatus) string {
	switch {
	case s == models.JobFailed:
		return color.RedString(string(s))
	case s.Terminal():
		return color.GreenString(string(s))
	default:
		return color.YellowString(string(s))
	}
}

func opportunityRow(o models.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", o.ID, color.New(color.Bold).Sprint(o.Title))
	if o.Organization != "" {
		fmt.Fprintf(&b, " at %s", o.Organization)
	}
	var tags []string
	if o.OpType != nil {
		tags = append(tags, o.OpType.Name)
	}
	if o.IsRemote {
		tags = append(tags, "remote")
	} else if o.Location != nil {
		tags = append(tags, o.Location.Name)
	}
	if o.Deadline != nil {
		tags = append(tags, "deadline "+o.Deadline.Format("2006-01-02"))
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, " %s", color.New(color.FgHiBlack).Sprintf("(%s)", strings.Join(tags, ", ")))
	}
	return b.String()
}

func opportunityDetail(o models.Opportunity) string {
	var b strings.Builder
	fmt.Fprintln(&b, color.New(color.Bold, color.FgCyan).Sprint(o.Title))
	if o.Organization != "" {
		fmt.Fprintf(&b, "Organization:  %s\n", o.Organization)
	}
	if o.OpType != nil {
		fmt.Fprintf(&b, "Type:          %s\n", o.OpType.Name)
	}
	if o.Domain != nil {
		fmt.Fprintf(&b, "Domain:        %s\n", o.Domain.Name)
	}
	if o.Specialization != nil {
		fmt.Fprintf(&b, "Focus:         %s\n", o.Specialization.Name)
	}
	if o.Location != nil {
		fmt.Fprintf(&b, "Location:      %s\n", o.Location.Name)
	}
	fmt.Fprintf(&b, "Work mode:     %s\n", o.WorkMode)
	fmt.Fprintf(&b, "Employment:    %s\n", o.EmploymentType)
	fmt.Fprintf(&b, "Experience:    %s\n", o.ExperienceLevel)
	if o.MinCompensation != nil || o.MaxCompensation != nil {
		fmt.Fprintf(&b, "Compensation:  %s\n", compensationRange(o.MinCompensation, o.MaxCompensation))
	}
	if o.Deadline != nil {
		fmt.Fprintf(&b, "Deadline:      %s\n", o.Deadline.Format("2006-01-02"))
	}
	if o.SourceURL != "" {
		fmt.Fprintf(&b, "Source:        %s\n", o.SourceURL)
	}
	if o.DescriptionEN != "" {
		fmt.Fprintf(&b, "\n%s\n", o.DescriptionEN)
	}
	return strings.TrimRight(b.String(), "\n")
}

func compensationRange(min, max *int64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%d - %d", *min, *max)
	case min != nil:
		return fmt.Sprintf("from %d", *min)
	case max != nil:
		return fmt.Sprintf("up to %d", *max)
	}
	return ""
}

func matchRow(m models.Match) string {
	return fmt.Sprintf("[%d] %s  %s  %s", m.ID, scoreBadge(m.MatchScore), m.Opportunity.Title, m.Opportunity.Organization)
}

func matchDetail(m models.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score:  %s\n", scoreBadge(m.MatchScore))
	fmt.Fprintf(&b, "Status: %s\n", m.Status)
	if m.Justification != "" {
		fmt.Fprintf(&b, "Why:    %s\n", m.Justification)
	}
	fmt.Fprintln(&b)
	b.WriteString(opportunityDetail(m.Opportunity))
	return b.String()
}

func profileDetail(p models.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:      %s\n", p.FullName)
	if p.CVFile != "" {
		fmt.Fprintf(&b, "CV:        %s\n", p.CVFile)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills:    %s\n", strings.Join(p.Skills, ", "))
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func notificationRow(n models.Notification) string {
	marker := " "
	if n.Unread() {
		marker = color.New(color.Bold, color.FgYellow).Sprint("*")
	}
	subject := n.Subject
	if subject == "" && n.Match != nil {
		subject = n.Match.Opportunity.Title
	}
	return fmt.Sprintf("%s [%d] %s %s", marker, n.ID, n.CreatedAt.Format("2006-01-02"), subject)
}

func coverLetterDetail(l models.CoverLetter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Letter #%d v%d for %q  %s\n", l.ID, l.Version, l.Opportunity.Title, jobStatusText(l.Status))
	if l.Status == models.JobFailed && l.ErrorMessage != "" {
		fmt.Fprintf(&b, "Failed: %s\n", l.ErrorMessage)
		return strings.TrimRight(b.String(), "\n")
	}
	fmt.Fprintf(&b, "\n%s\n", l.FinalContent())
	return strings.TrimRight(b.String(), "\n")
}

func analysisDetail(g models.SkillGapAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis #%d for %q  %s\n", g.ID, g.Opportunity.Title, jobStatusText(g.Status))
	if g.Status == models.JobFailed && g.ErrorMessage != "" {
		fmt.Fprintf(&b, "Failed: %s\n", g.ErrorMessage)
		return strings.TrimRight(b.String(), "\n")
	}
	if len(g.MissingSkills) > 0 {
		fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(g.MissingSkills, ", "))
	}
	for _, gap := range g.SkillGaps {
		fmt.Fprintf(&b, "  %s: %s -> %s\n", gap.Skill, gap.Current, gap.Required)
	}
	if len(g.RecommendedActions) > 0 {
		fmt.Fprintln(&b, "Recommended:")
		for _, action := range g.RecommendedActions {
			fmt.Fprintf(&b, "  - %s\n", action)
		}
	}
	if g.EstimatedTimeMonths != nil {
		fmt.Fprintf(&b, "Estimated effort: %d months\n", *g.EstimatedTimeMonths)
	}
	return strings.TrimRight(b.String(), "\n")
}

// treeLines renders a selection forest with box-drawing indentation,
// marking selected nodes.
func treeLines(t *selection.Tree, sel selection.Set) []string {
	var lines []string
	var walk func(ids []int64, depth int)
	walk = func(ids []int64, depth int) {
		for _, id := range ids {
			mark := "[ ]"
			if sel.Contains(id) {
				mark = color.GreenString("[x]")
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", strings.Repeat("  ", depth), mark, t.Name(id)))
			walk(t.ChildrenOf(id), depth+1)
		}
	}
	walk(t.Roots(), 0)
	return lines
}
