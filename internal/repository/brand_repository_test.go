package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBrandRepository_GetAll(t *testing.T) {
	t.Run("lists brands by name", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewBrandRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Burguer Kingdom").
			AddRow(2, "Pizza Palace")

		mock.ExpectQuery(`SELECT \* FROM "brands" ORDER BY name`).
			WillReturnRows(rows)

		brands, err := repo.GetAll()

		assert.NoError(t, err)
		assert.Len(t, brands, 2)
		assert.Equal(t, "Burguer Kingdom", brands[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBrandRepository_GetStores(t *testing.T) {
	t.Run("scopes stores to the brand", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewBrandRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "city", "state", "brand_id"}).
			AddRow(5, "Pizza Palace - Campinas 02", "Campinas", "SP", 2)

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE brand_id = \$1 ORDER BY name`).
			WithArgs(uint(2)).
			WillReturnRows(rows)

		stores, err := repo.GetStores(2)

		assert.NoError(t, err)
		assert.Len(t, stores, 1)
		assert.Equal(t, uint(2), stores[0].BrandID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBrandRepository_GetChannels(t *testing.T) {
	t.Run("scopes channels to the brand", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewBrandRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "brand_id"}).
			AddRow(3, "Balcão", 1).
			AddRow(1, "iFood", 1)

		mock.ExpectQuery(`SELECT \* FROM "channels" WHERE brand_id = \$1 ORDER BY name`).
			WithArgs(uint(1)).
			WillReturnRows(rows)

		channels, err := repo.GetChannels(1)

		assert.NoError(t, err)
		assert.Len(t, channels, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
