package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soheiltpr/calfind/modules/document/entity"
	participantentity "github.com/soheiltpr/calfind/modules/participant/entity"
)

type stubParticipantRepo struct {
	participants []participantentity.Participant
}

func (r *stubParticipantRepo) Create(_ context.Context, p *participantentity.Participant) (*participantentity.Participant, error) {
	return p, nil
}

func (r *stubParticipantRepo) GetByID(_ context.Context, _ uuid.UUID) (*participantentity.Participant, error) {
	return nil, nil
}

func (r *stubParticipantRepo) GetByProjectAndName(_ context.Context, _ uuid.UUID, _ string) (*participantentity.Participant, error) {
	return nil, nil
}

func (r *stubParticipantRepo) GetByProjectID(_ context.Context, _ uuid.UUID) ([]participantentity.Participant, error) {
	return r.participants, nil
}

func (r *stubParticipantRepo) SetPasswordHash(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (r *stubParticipantRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func serviceWithParticipants(ids ...uuid.UUID) *DocumentService {
	repo := &stubParticipantRepo{}
	for _, id := range ids {
		repo.participants = append(repo.participants, participantentity.Participant{ID: id})
	}
	return &DocumentService{participants: repo}
}

func TestResolveStatusAnyDeclineWins(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	svc := serviceWithParticipants(a, b)

	status, appErr := svc.resolveStatus(context.Background(), uuid.New(), []entity.DocumentSignature{
		{ParticipantID: a, Action: entity.SignatureActionSigned},
		{ParticipantID: b, Action: entity.SignatureActionDeclined},
	})

	require.Nil(t, appErr)
	assert.Equal(t, entity.DocumentStatusDeclined, status)
}

func TestResolveStatusAllSigned(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	svc := serviceWithParticipants(a, b)

	status, appErr := svc.resolveStatus(context.Background(), uuid.New(), []entity.DocumentSignature{
		{ParticipantID: a, Action: entity.SignatureActionSigned},
		{ParticipantID: b, Action: entity.SignatureActionSigned},
	})

	require.Nil(t, appErr)
	assert.Equal(t, entity.DocumentStatusSigned, status)
}

func TestResolveStatusWaitsForEveryone(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	svc := serviceWithParticipants(a, b)

	status, appErr := svc.resolveStatus(context.Background(), uuid.New(), []entity.DocumentSignature{
		{ParticipantID: a, Action: entity.SignatureActionSigned},
	})

	require.Nil(t, appErr)
	assert.Equal(t, entity.DocumentStatusPending, status)
}

func TestResolveStatusNoParticipants(t *testing.T) {
	svc := serviceWithParticipants()

	status, appErr := svc.resolveStatus(context.Background(), uuid.New(), nil)

	require.Nil(t, appErr)
	assert.Equal(t, entity.DocumentStatusPending, status)
}

func TestAllowedContentType(t *testing.T) {
	assert.True(t, allowedContentType("application/pdf"))
	assert.True(t, allowedContentType("image/png"))
	assert.True(t, allowedContentType("image/jpeg"))
	assert.False(t, allowedContentType("text/plain"))
	assert.False(t, allowedContentType("application/zip"))
	assert.False(t, allowedContentType(""))
}
