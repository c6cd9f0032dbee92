package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
	"github.com/findra-app/findra-cli/internal/common"
)

type fakeJobsAPI struct {
	JobsAPI

	uploaded    models.CVExtractionSession
	statuses    []models.JobStatus
	statusCalls int
	session     models.CVExtractionSession

	letter      models.CoverLetter
	letterGets  int
	letterAfter models.CoverLetter

	analysis      models.SkillGapAnalysis
	analysisGets  int
	analysisAfter models.SkillGapAnalysis
}

func (f *fakeJobsAPI) UploadCV(ctx context.Context, fileName string, file []byte) (models.CVExtractionSession, error) {
	return f.uploaded, nil
}

func (f *fakeJobsAPI) GetCVSessionStatus(ctx context.Context, id int64) (models.JobStatus, error) {
	status := f.statuses[f.statusCalls]
	if f.statusCalls < len(f.statuses)-1 {
		f.statusCalls++
	}
	return status, nil
}

func (f *fakeJobsAPI) GetCVSession(ctx context.Context, id int64) (models.CVExtractionSession, error) {
	return f.session, nil
}

func (f *fakeJobsAPI) GenerateCoverLetter(ctx context.Context, opportunityID int64) (models.CoverLetter, error) {
	return f.letter, nil
}

func (f *fakeJobsAPI) GetCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	f.letterGets++
	return f.letterAfter, nil
}

func (f *fakeJobsAPI) FinalizeCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	f.letter.Status = models.JobFinalized
	return f.letter, nil
}

func (f *fakeJobsAPI) AnalyzeSkillGap(ctx context.Context, opportunityID int64) (models.SkillGapAnalysis, error) {
	return f.analysis, nil
}

func (f *fakeJobsAPI) GetSkillGapAnalysis(ctx context.Context, id int64) (models.SkillGapAnalysis, error) {
	f.analysisGets++
	return f.analysisAfter, nil
}

func TestValidateCV(t *testing.T) {
	require.NoError(t, ValidateCV("cv.pdf", 100))
	require.NoError(t, ValidateCV("CV.DOCX", 100))

	err := ValidateCV("cv.txt", 100)
	require.ErrorIs(t, err, common.ErrValidation)

	err = ValidateCV("cv.pdf", MaxCVSize+1)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestExtractCV_PollsUntilTerminal(t *testing.T) {
	fake := &fakeJobsAPI{
		uploaded: models.CVExtractionSession{ID: 11, Status: models.JobUploaded},
		statuses: []models.JobStatus{models.JobExtracting, models.JobCompleted},
		session:  models.CVExtractionSession{ID: 11, Status: models.JobCompleted, ExtractedFullName: "Alem T."},
	}
	s := NewJobsService(fake, time.Millisecond)

	got, err := s.ExtractCV(context.Background(), "cv.pdf", bytes.Repeat([]byte{1}, 10))
	require.NoError(t, err)
	require.Equal(t, models.JobCompleted, got.Status)
	require.Equal(t, "Alem T.", got.ExtractedFullName)
	require.Equal(t, 1, fake.statusCalls, "polling must stop on the first terminal status")
}

func TestExtractCV_RejectsInvalidFileWithoutUpload(t *testing.T) {
	fake := &fakeJobsAPI{}
	s := NewJobsService(fake, time.Millisecond)

	_, err := s.ExtractCV(context.Background(), "cv.exe", []byte{1})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestExtractCV_FailedJobIsAResultNotAnError(t *testing.T) {
	fake := &fakeJobsAPI{
		uploaded: models.CVExtractionSession{ID: 12, Status: models.JobExtracting},
		statuses: []models.JobStatus{models.JobFailed},
		session:  models.CVExtractionSession{ID: 12, Status: models.JobFailed, ErrorMessage: "unreadable file"},
	}
	s := NewJobsService(fake, time.Millisecond)

	got, err := s.ExtractCV(context.Background(), "cv.pdf", []byte{1})
	require.NoError(t, err)
	require.Equal(t, models.JobFailed, got.Status)
	require.Equal(t, "unreadable file", got.ErrorMessage)
}

func TestWriteCoverLetter_WaitsForGeneration(t *testing.T) {
	fake := &fakeJobsAPI{
		letter:      models.CoverLetter{ID: 5, Status: models.JobGenerating},
		letterAfter: models.CoverLetter{ID: 5, Status: models.JobGenerated, GeneratedContent: "Dear team"},
	}
	s := NewJobsService(fake, time.Millisecond)

	got, err := s.WriteCoverLetter(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Dear team", got.FinalContent())
	require.GreaterOrEqual(t, fake.letterGets, 2, "one status poll plus the final fetch")
}

func TestWriteCoverLetter_AlreadyTerminalSkipsPolling(t *testing.T) {
	fake := &fakeJobsAPI{
		letter:      models.CoverLetter{ID: 6, Status: models.JobGenerated},
		letterAfter: models.CoverLetter{ID: 6, Status: models.JobGenerated, GeneratedContent: "done"},
	}
	s := NewJobsService(fake, time.Hour)

	got, err := s.WriteCoverLetter(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "done", got.GeneratedContent)
	require.Equal(t, 1, fake.letterGets, "only the final fetch may run")
}

func TestAnalyzeGap_ReturnsFinishedAnalysis(t *testing.T) {
	fake := &fakeJobsAPI{
		analysis: models.SkillGapAnalysis{ID: 9, Status: models.JobGenerating},
		analysisAfter: models.SkillGapAnalysis{
			ID:            9,
			Status:        models.JobCompleted,
			MissingSkills: []string{"kubernetes"},
		},
	}
	s := NewJobsService(fake, time.Millisecond)

	got, err := s.AnalyzeGap(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, models.JobCompleted, got.Status)
	require.Equal(t, []string{"kubernetes"}, got.MissingSkills)
}

func TestFinalizeCoverLetter_MarksStatus(t *testing.T) {
	fake := &fakeJobsAPI{letter: models.CoverLetter{ID: 9, Status: models.JobEdited}}
	s := NewJobsService(fake, time.Millisecond)

	letter, err := s.FinalizeCoverLetter(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, models.JobFinalized, letter.Status)
}

func TestCoverLetters_UnwrapsPage(t *testing.T) {
	fake := &fakeJobsAPIWithLists{letters: api.Page[models.CoverLetter]{
		Count:   1,
		Results: []models.CoverLetter{{ID: 1}},
	}}
	s := NewJobsService(fake, time.Millisecond)

	letters, err := s.CoverLetters(context.Background())
	require.NoError(t, err)
	require.Len(t, letters, 1)
}

type fakeJobsAPIWithLists struct {
	JobsAPI
	letters api.Page[models.CoverLetter]
}

func (f *fakeJobsAPIWithLists) ListCoverLetters(ctx context.Context) (api.Page[models.CoverLetter], error) {
	return f.letters, nil
}
