//go:build unit

package readstore

import (
	"context"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlstore.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	traveler := builder.NewUserBuilder().BuildInfra()
	guide := builder.NewUserBuilder().AsGuide().WithEmail("guide@example.com").BuildInfra()
	corrupt := builder.NewUserBuilder().WithRole("superuser").BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlstore.Users
		mockError  error
		wantRole   user.Role
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - traveler",
			userID:     traveler.ID,
			mockReturn: traveler,
			wantRole:   user.RoleUser,
		},
		{
			name:       "success - guide",
			userID:     guide.ID,
			mockReturn: guide,
			wantRole:   user.RoleGuide,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlstore.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     traveler.ID,
			mockReturn: sqlstore.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
		{
			name:       "stored role is unknown",
			userID:     corrupt.ID,
			mockReturn: corrupt,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUser", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			u, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, u)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, u.ID())
				assert.Equal(t, tt.mockReturn.Email, u.Email().Value())
				assert.Equal(t, tt.wantRole, u.Role())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
