package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// Profile prints the current profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(profileDetail(p))
	return nil
}

// EditProfile prompts for the editable fields; empty input leaves a field
// unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	var update api.ProfileUpdate

	name, err := getSimpleText(a.reader, "Full name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		update.FullName = &name
	}

	skills, err := GetCommaList(a.reader, "Skills, comma separated (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	update.Skills = skills

	interests, err := GetCommaList(a.reader, "Interests, comma separated (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	update.Interests = interests

	cvPath, err := getSimpleText(a.reader, "Attach CV file (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var p models.UserProfile
	if cvPath == "" {
		p, err = a.profile.Update(ctx, update)
	} else {
		var data []byte
		if data, err = os.ReadFile(cvPath); err != nil {
			printlnFn(color.RedString("Cannot read %s: %s", cvPath, err))
			return err
		}
		p, err = a.profile.UpdateWithCV(ctx, update, filepath.Base(cvPath), data)
	}
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(color.GreenString("Profile updated."))
	printlnFn(profileDetail(p))
	return nil
}

// UploadCV sends the file through the extraction pipeline, waits for the
// extracted fields and offers to apply them to the profile.
func (a *App) UploadCV(ctx context.Context, path string) error {
	if path == "" {
		printlnFn("Usage: cv <path to .pdf or .docx>")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn(color.RedString("Cannot read %s: %s", path, err))
		return err
	}

	printlnFn("Uploading and extracting, this can take a moment...")
	sess, err := a.jobs.ExtractCV(ctx, filepath.Base(path), data)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if sess.Status.Terminal() && sess.ErrorMessage != "" {
		printlnFn(color.RedString("Extraction failed: %s", sess.ErrorMessage))
		return nil
	}

	printlnFn(color.GreenString("Extracted from %s:", sess.FileName))
	if sess.ExtractedFullName != "" {
		printlnFn("  name:", sess.ExtractedFullName)
	}
	if len(sess.Skills) > 0 {
		printlnFn("  skills:", len(sess.Skills))
	}
	if len(sess.Experience) > 0 {
		printlnFn("  experience entries:", len(sess.Experience))
	}

	apply := false
	if err := askOne(&survey.Confirm{Message: "Apply these fields to your profile?", Default: true}, &apply); err != nil {
		return err
	}
	if !apply {
		printlnFn("Kept as session", sess.ID, "- apply later with 'apply", sess.ID, "'")
		return nil
	}
	return a.ApplyCV(ctx, "")
}

// ApplyCV copies a finished extraction session onto the profile. An empty
// arg applies the most recent session.
func (a *App) ApplyCV(ctx context.Context, arg string) error {
	var id int64
	if arg == "" {
		sessions, err := a.jobs.CVSessions(ctx)
		if err != nil {
			a.reportError(ctx, err)
			return err
		}
		if len(sessions) == 0 {
			printlnFn("No extraction sessions. Upload a CV first with 'cv <path>'.")
			return nil
		}
		id = sessions[0].ID
	} else {
		var err error
		if id, err = parseID(arg, "apply <session id>"); err != nil {
			return err
		}
	}

	p, err := a.jobs.ApplyExtraction(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(color.GreenString("Profile updated from CV."))
	printlnFn(profileDetail(p))
	return nil
}
