package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/schedule"
)

type mockTx struct {
	mock.Mock
}

func (m *mockTx) Exists(kind models.Resource, id uint) (bool, error) {
	args := m.Called(kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTx) ActiveSessions(kind models.Resource, id uint) ([]schedule.Slot, error) {
	args := m.Called(kind, id)
	slots, _ := args.Get(0).([]schedule.Slot)
	return slots, args.Error(1)
}

func (m *mockTx) RoomClassSessions(roomID uint) ([]schedule.Slot, error) {
	args := m.Called(roomID)
	slots, _ := args.Get(0).([]schedule.Slot)
	return slots, args.Error(1)
}

func (m *mockTx) InsertPTSession(session *models.PTSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *mockTx) InsertClassSession(class *models.ClassSession) error {
	args := m.Called(class)
	return args.Error(0)
}

func (m *mockTx) FindPTSession(id uint) (*models.PTSession, error) {
	args := m.Called(id)
	session, _ := args.Get(0).(*models.PTSession)
	return session, args.Error(1)
}

func (m *mockTx) SetPTSessionStatus(id uint, status models.SessionStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// mockStore runs fn against tx and returns fn's error, or commitErr when fn
// succeeds
type mockStore struct {
	mock.Mock
	tx        *mockTx
	commitErr error
}

func (m *mockStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	m.Called(ctx)
	if err := fn(m.tx); err != nil {
		return err
	}
	return m.commitErr
}

func newMockStore() *mockStore {
	s := &mockStore{tx: &mockTx{}}
	s.On("WithinTx", mock.Anything).Return()
	return s
}
