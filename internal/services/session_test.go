package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/domain"
	portsmocks "fieldnotes/internal/ports/mocks"
)

func strPtr(s string) *string { return &s }

func TestUpdateSessionContent_WritesThenRefetches(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	content := domain.NewSessionContent("A", "")
	stored := &domain.Session{ID: "s1", Notes: strPtr("A"), Transcript: strPtr("")}

	repo.EXPECT().UpdateContent(mock.Anything, "s1", content).Return(nil).Once()
	repo.EXPECT().Get(mock.Anything, "s1").Return(stored, nil).Once()

	service := NewSessionService(repo, nil)
	got, err := service.UpdateSessionContent(context.Background(), "s1", content)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestUpdateSessionContent_EmptyUpdateOnlyReads(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{ID: "s1"}, nil).Once()

	service := NewSessionService(repo, nil)
	_, err := service.UpdateSessionContent(context.Background(), "s1", domain.SessionContent{})

	require.NoError(t, err)
}

func TestUpdateSessionContent_NotFound(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().UpdateContent(mock.Anything, "missing", mock.Anything).Return(domain.ErrSessionNotFound).Once()

	service := NewSessionService(repo, nil)
	_, err := service.UpdateSessionContent(context.Background(), "missing", domain.NewSessionContent("a", "b"))

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCreateInsight_AssignsIdentityAndTrimsExcerpt(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().AddInsight(mock.Anything, mock.MatchedBy(func(in domain.Insight) bool {
		return in.ID != "" && in.Excerpt == "too slow" && !in.CreatedAt.IsZero()
	})).Return(nil).Once()

	service := NewSessionService(repo, nil)
	got, err := service.CreateInsight(context.Background(), domain.Insight{
		Detail:    domain.Quote{Speaker: "Dana"},
		Excerpt:   "  too slow \n",
		SessionID: "s1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InsightQuote, got.Kind())
	assert.NotEmpty(t, got.ID)
}

func TestCreateInsight_RejectsBlankExcerpt(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)

	service := NewSessionService(repo, nil)
	_, err := service.CreateInsight(context.Background(), domain.Insight{
		Detail:    domain.Quote{},
		Excerpt:   "   ",
		SessionID: "s1",
	})

	assert.True(t, domain.IsValidationError(err))
}

func TestCreateSession_UnknownProject(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "p1").Return(nil, domain.ErrProjectNotFound).Once()

	service := NewSessionService(repo, nil)
	_, err := service.CreateSession(context.Background(), CreateSessionParams{
		ProjectID: "p1",
		Type:      domain.SessionInterview,
	})

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCreateSession_PersonaMustBelongToProject(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "p1").Return(&domain.Project{ID: "p1"}, nil).Once()
	repo.EXPECT().ListPersonas(mock.Anything, "p1").Return([]domain.Persona{{ID: "pe1"}}, nil).Once()

	service := NewSessionService(repo, nil)
	_, err := service.CreateSession(context.Background(), CreateSessionParams{
		PersonaID: "pe2",
		ProjectID: "p1",
		Type:      domain.SessionInterview,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSession_StoresOptionalFieldsAsNil(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "p1").Return(&domain.Project{ID: "p1"}, nil).Once()
	repo.EXPECT().Add(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.ParticipantName == nil && s.PersonaID == nil && s.RecordingURL == nil &&
			!s.Date.IsZero() && s.Notes == nil && s.Transcript == nil
	})).Return(nil).Once()
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(&domain.Session{ID: "new"}, nil).Once()

	service := NewSessionService(repo, nil)
	got, err := service.CreateSession(context.Background(), CreateSessionParams{
		ProjectID: "p1",
		Type:      domain.SessionDiary,
	})

	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestCreateSession_InvalidType(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)

	service := NewSessionService(repo, nil)
	_, err := service.CreateSession(context.Background(), CreateSessionParams{ProjectID: "p1", Type: "focus_group"})

	assert.ErrorIs(t, err, domain.ErrInvalidSessionType)
}

func TestRecordingLink(t *testing.T) {
	t.Run("no recording", func(t *testing.T) {
		repo := portsmocks.NewMockSessionRepository(t)
		repo.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{ID: "s1"}, nil)

		_, err := NewSessionService(repo, nil).RecordingLink(context.Background(), "s1")
		assert.ErrorIs(t, err, domain.ErrNoRecording)
	})

	t.Run("resolved through linker", func(t *testing.T) {
		repo := portsmocks.NewMockSessionRepository(t)
		linker := portsmocks.NewMockRecordingLinker(t)
		repo.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{ID: "s1", RecordingURL: strPtr("s3://b/k.mp4")}, nil)
		linker.EXPECT().Link(mock.Anything, "s3://b/k.mp4").Return("https://signed.example/k.mp4", nil)

		url, err := NewSessionService(repo, linker).RecordingLink(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "https://signed.example/k.mp4", url)
	})

	t.Run("linker error", func(t *testing.T) {
		repo := portsmocks.NewMockSessionRepository(t)
		linker := portsmocks.NewMockRecordingLinker(t)
		repo.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{ID: "s1", RecordingURL: strPtr("ftp://x")}, nil)
		linker.EXPECT().Link(mock.Anything, "ftp://x").Return("", errors.New("unsupported scheme"))

		_, err := NewSessionService(repo, linker).RecordingLink(context.Background(), "s1")
		assert.ErrorContains(t, err, "unsupported scheme")
	})
}
