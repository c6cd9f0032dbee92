package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/common"
	"github.com/findra-app/findra-cli/internal/poll"
)

// JobsAPI is the slice of the API client the asynchronous job flows use.
type JobsAPI interface {
	UploadCV(ctx context.Context, fileName string, file []byte) (models.CVExtractionSession, error)
	ListCVSessions(ctx context.Context) (api.Page[models.CVExtractionSession], error)
	GetCVSession(ctx context.Context, id int64) (models.CVExtractionSession, error)
	GetCVSessionStatus(ctx context.Context, id int64) (models.JobStatus, error)
	ApplyCVExtraction(ctx context.Context, id int64) (models.UserProfile, error)

	GenerateCoverLetter(ctx context.Context, opportunityID int64) (models.CoverLetter, error)
	RegenerateCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error)
	GetCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error)
	UpdateCoverLetter(ctx context.Context, id int64, editedContent string) (models.CoverLetter, error)
	FinalizeCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error)
	ListCoverLetters(ctx context.Context) (api.Page[models.CoverLetter], error)

	AnalyzeSkillGap(ctx context.Context, opportunityID int64) (models.SkillGapAnalysis, error)
	GetSkillGapAnalysis(ctx context.Context, id int64) (models.SkillGapAnalysis, error)
	ListSkillGapAnalyses(ctx context.Context) (api.Page[models.SkillGapAnalysis], error)
}

// CV upload limits enforced before any bytes travel. The backend enforces
// the same rules; failing early just saves the round trip.
const MaxCVSize = 10 * 1024 * 1024

// JobsService runs the three asynchronous AI flows: CV extraction, cover
// letter generation and skill-gap analysis. Each flow kicks off a backend
// job and blocks on poll.Until until the job reaches a terminal status, so
// callers get the finished record (including FAILED with its error message)
// or a transport error, never an intermediate state.
type JobsService struct {
	api      JobsAPI
	interval time.Duration
}

// NewJobsService constructs a JobsService polling at the given interval;
// zero means poll.DefaultInterval.
func NewJobsService(api JobsAPI, interval time.Duration) *JobsService {
	return &JobsService{api: api, interval: interval}
}

// ValidateCV checks the upload constraints: .pdf or .docx, at most 10MB.
func ValidateCV(fileName string, size int64) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".docx":
	default:
		return fmt.Errorf("%w: only .pdf and .docx files are accepted", common.ErrValidation)
	}
	if size > MaxCVSize {
		return fmt.Errorf("%w: file size must be less than 10MB", common.ErrValidation)
	}
	return nil
}

// ExtractCV uploads the file and waits for extraction to finish, returning
// the session with the extracted fields (or FAILED with ErrorMessage).
func (s *JobsService) ExtractCV(ctx context.Context, fileName string, file []byte) (models.CVExtractionSession, error) {
	if err := ValidateCV(fileName, int64(len(file))); err != nil {
		return models.CVExtractionSession{}, err
	}
	created, err := s.api.UploadCV(ctx, fileName, file)
	if err != nil {
		return models.CVExtractionSession{}, err
	}
	return poll.Until(ctx, s.interval, created.Status,
		models.JobStatus.Terminal,
		func(ctx context.Context) (models.JobStatus, error) {
			return s.api.GetCVSessionStatus(ctx, created.ID)
		},
		func(ctx context.Context) (models.CVExtractionSession, error) {
			return s.api.GetCVSession(ctx, created.ID)
		},
	)
}

// ApplyExtraction copies a finished session's extracted fields onto the
// profile and returns the updated profile.
func (s *JobsService) ApplyExtraction(ctx context.Context, sessionID int64) (models.UserProfile, error) {
	return s.api.ApplyCVExtraction(ctx, sessionID)
}

// CVSessions lists past extraction sessions, newest first.
func (s *JobsService) CVSessions(ctx context.Context) ([]models.CVExtractionSession, error) {
	page, err := s.api.ListCVSessions(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// awaitCoverLetter polls the letter until generation settles.
func (s *JobsService) awaitCoverLetter(ctx context.Context, created models.CoverLetter) (models.CoverLetter, error) {
	fetch := func(ctx context.Context) (models.CoverLetter, error) {
		return s.api.GetCoverLetter(ctx, created.ID)
	}
	return poll.Until(ctx, s.interval, created.Status,
		models.JobStatus.Terminal,
		func(ctx context.Context) (models.JobStatus, error) {
			letter, err := fetch(ctx)
			return letter.Status, err
		},
		fetch,
	)
}

// WriteCoverLetter generates a letter for the opportunity and waits for it.
func (s *JobsService) WriteCoverLetter(ctx context.Context, opportunityID int64) (models.CoverLetter, error) {
	created, err := s.api.GenerateCoverLetter(ctx, opportunityID)
	if err != nil {
		return models.CoverLetter{}, err
	}
	return s.awaitCoverLetter(ctx, created)
}

// RewriteCoverLetter regenerates an existing letter (bumping its version)
// and waits for the fresh content.
func (s *JobsService) RewriteCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	created, err := s.api.RegenerateCoverLetter(ctx, id)
	if err != nil {
		return models.CoverLetter{}, err
	}
	return s.awaitCoverLetter(ctx, created)
}

// EditCoverLetter saves user-edited content.
func (s *JobsService) EditCoverLetter(ctx context.Context, id int64, content string) (models.CoverLetter, error) {
	return s.api.UpdateCoverLetter(ctx, id, content)
}

// FinalizeCoverLetter marks the letter as done. A finalized letter still
// counts against the daily generation limit but accepts no further edits.
func (s *JobsService) FinalizeCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	return s.api.FinalizeCoverLetter(ctx, id)
}

// CoverLetters lists the user's letters, newest first.
func (s *JobsService) CoverLetters(ctx context.Context) ([]models.CoverLetter, error) {
	page, err := s.api.ListCoverLetters(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// AnalyzeGap runs a skill-gap analysis against the opportunity and waits
// for the result.
func (s *JobsService) AnalyzeGap(ctx context.Context, opportunityID int64) (models.SkillGapAnalysis, error) {
	created, err := s.api.AnalyzeSkillGap(ctx, opportunityID)
	if err != nil {
		return models.SkillGapAnalysis{}, err
	}
	fetch := func(ctx context.Context) (models.SkillGapAnalysis, error) {
		return s.api.GetSkillGapAnalysis(ctx, created.ID)
	}
	return poll.Until(ctx, s.interval, created.Status,
		models.JobStatus.Terminal,
		func(ctx context.Context) (models.JobStatus, error) {
			analysis, err := fetch(ctx)
			return analysis.Status, err
		},
		fetch,
	)
}

// GapAnalyses lists past analyses, newest first.
func (s *JobsService) GapAnalyses(ctx context.Context) ([]models.SkillGapAnalysis, error) {
	page, err := s.api.ListSkillGapAnalyses(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
