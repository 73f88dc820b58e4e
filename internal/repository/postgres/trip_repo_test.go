package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"tripbooking/internal/domain"
)

func TestTripRepository_List(t *testing.T) {
	ctx := context.Background()
	dateFrom := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	t.Run("joins trips with countries", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cols := []string{"id", "name", "description", "date_from", "date_to", "max_people", "country"}
		mock.ExpectQuery(`SELECT t.id, t.name, t.description, t.date_from, t.date_to, t.max_people, c.name AS country`).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, "Alpine Trek", "Two weeks in the Alps", dateFrom, dateTo, 20, "Austria").
				AddRow(1, "Alpine Trek", "Two weeks in the Alps", dateFrom, dateTo, 20, "Switzerland").
				AddRow(2, "City Break", nil, dateFrom, dateTo, 8, "Italy"))

		repo := NewTripRepository(db)
		trips, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, trips, 3)
		require.Equal(t, "Austria", trips[0].Country)
		require.Equal(t, "Switzerland", trips[1].Country)
		require.Nil(t, trips[2].Description)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty catalog yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cols := []string{"id", "name", "description", "date_from", "date_to", "max_people", "country"}
		mock.ExpectQuery(`SELECT t.id, t.name, t.description, t.date_from, t.date_to, t.max_people, c.name AS country`).
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewTripRepository(db)
		trips, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, trips)
		require.Empty(t, trips)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT t.id, t.name, t.description`).
			WillReturnError(sql.ErrConnDone)

		repo := NewTripRepository(db)
		trips, err := repo.List(ctx)
		require.Error(t, err)
		require.Nil(t, trips)
	})
}

func TestTripRepository_GetCapacity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		tripID  int
		mock    func(mock sqlmock.Sqlmock)
		want    int
		wantErr error
	}{
		{
			name:   "success",
			tripID: 1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT max_people\s+FROM trips\s+WHERE id = \$1`).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"max_people"}).AddRow(20))
			},
			want: 20,
		},
		{
			name:   "not found",
			tripID: 99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT max_people\s+FROM trips\s+WHERE id = \$1`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrTripNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTripRepository(db)
			got, err := repo.GetCapacity(ctx, tt.tripID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	dateFrom := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cols := []string{"id", "name", "description", "date_from", "date_to", "max_people"}
		mock.ExpectQuery(`SELECT id, name, description, date_from, date_to, max_people`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "Alpine Trek", nil, dateFrom, dateTo, 20))

		repo := NewTripRepository(db)
		trip, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "Alpine Trek", trip.Name)
		require.Equal(t, 20, trip.MaxPeople)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, description, date_from, date_to, max_people`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		repo := NewTripRepository(db)
		trip, err := repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrTripNotFound)
		require.Nil(t, trip)
	})
}

func TestTripRepository_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT 1\s+FROM trips\s+WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		repo := NewTripRepository(db)
		ok, err := repo.Exists(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT 1\s+FROM trips\s+WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		repo := NewTripRepository(db)
		ok, err := repo.Exists(ctx, 99)
		require.NoError(t, err)
		require.False(t, ok)
	})
}
